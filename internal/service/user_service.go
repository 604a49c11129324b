package service

import (
	"errors"

	"Hive_Community/internal/model"
	"Hive_Community/internal/pkg"
	"Hive_Community/internal/repository/mysql"
	"Hive_Community/internal/repository/redis"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// sessionStore is the slice of the Redis session repo the service needs.
type sessionStore interface {
	AddUserToken(userID uint64, token string) error
	DeleteUserToken(userID uint64) error
}

type UserService struct {
	repo     *mysql.UserRepository
	rUser    sessionStore
	emailSvc *EmailService
}

func NewUserService(emailSvc *EmailService) *UserService {
	return &UserService{
		repo:     &mysql.UserRepository{DB: mysql.DB},
		rUser:    &redis.UserRepository{},
		emailSvc: emailSvc,
	}
}

func (s *UserService) Register(username, password, email, code string) *pkg.AppError {
	ok, err := s.emailSvc.VerifyCode(EmailScopeRegister, email, code)
	if err != nil || !ok {
		return pkg.E(pkg.CodeInvalidParams, "verification failed")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return pkg.Wrap(pkg.CodeInternal, "hash failed", err)
	}

	user := &model.User{
		Username: username,
		Password: string(hash),
		Email:    email,
		Handle:   username,
	}

	if err := s.repo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return pkg.E(pkg.CodeConflict, "username or email already taken")
		}
		return pkg.Wrap(pkg.CodeInternal, "create user failed", err)
	}
	return nil
}

func (s *UserService) Login(username, password string) (*pkg.Pair, *pkg.AppError) {
	user, err := s.repo.FindByUsername(username)
	if err != nil {
		return nil, pkg.E(pkg.CodeUnauthorized, "user not found")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, pkg.E(pkg.CodeUnauthorized, "invalid password")
	}
	token, err := pkg.GeneratePair(user.ID)
	if err != nil {
		return nil, pkg.Wrap(pkg.CodeInternal, "token generation failed", err)
	}
	// 将token写入redis
	if err = s.rUser.AddUserToken(user.ID, token.AccessToken); err != nil {
		return nil, pkg.Wrap(pkg.CodeInternal, "session store failed", err)
	}
	return token, nil
}

func (s *UserService) Logout(usrID uint64) *pkg.AppError {
	if err := s.rUser.DeleteUserToken(usrID); err != nil {
		return pkg.Wrap(pkg.CodeInternal, "logout failed", err)
	}
	return nil
}

// Profile returns the principal's profile row. A missing row after a valid
// token yields the empty marker, not a failure.
func (s *UserService) Profile(usrID uint64) (*model.User, *pkg.AppError) {
	user, found, err := s.repo.FindByID(usrID)
	if err != nil || !found {
		return &model.User{}, nil
	}
	user.Password = ""
	return user, nil
}

func (s *UserService) UpdateProfile(usrID uint64, firstName, lastName, handle string) *pkg.AppError {
	if handle == "" {
		return pkg.E(pkg.CodeInvalidParams, "handle required")
	}
	if err := s.repo.UpdateProfile(usrID, firstName, lastName, handle); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return pkg.E(pkg.CodeConflict, "handle already taken")
		}
		return pkg.Wrap(pkg.CodeInternal, "update failed", err)
	}
	return nil
}

func (s *UserService) ResetPassword(email, code, newPassword string) *pkg.AppError {
	ok, err := s.emailSvc.VerifyCode(EmailScopeReset, email, code)
	if err != nil || !ok {
		return pkg.E(pkg.CodeInvalidParams, "verification failed")
	}

	user, err := s.repo.FindByEmail(email)
	if err != nil {
		return pkg.E(pkg.CodeNotFound, "user not found")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return pkg.Wrap(pkg.CodeInternal, "hash failed", err)
	}

	if err = s.repo.UpdatePassword(user, string(hash)); err != nil {
		return pkg.Wrap(pkg.CodeInternal, "update failed", err)
	}
	return nil
}

func (s *UserService) Refresh(refreshToken string) (*pkg.Pair, *pkg.AppError) {
	pair, userID, err := pkg.Refresh(refreshToken)
	if err != nil {
		return nil, pkg.E(pkg.CodeUnauthorized, err.Error())
	}
	// 新 access 必须重新钉进会话，否则旧 pin 会把它当成异地登录拒掉
	if err = s.rUser.AddUserToken(userID, pair.AccessToken); err != nil {
		return nil, pkg.Wrap(pkg.CodeInternal, "session store failed", err)
	}
	return pair, nil
}

// ChangePassword 登录态修改密码，成功后使当前会话失效
func (s *UserService) ChangePassword(usrId uint64, oldPassword, newPassword string) *pkg.AppError {
	user, found, err := s.repo.FindByID(usrId)
	if err != nil || !found {
		return pkg.E(pkg.CodeNotFound, "user not found")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)) != nil {
		return pkg.E(pkg.CodeInvalidParams, "old password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return pkg.Wrap(pkg.CodeInternal, "hash failed", err)
	}

	if err = s.repo.UpdatePassword(user, string(hash)); err != nil {
		return pkg.Wrap(pkg.CodeInternal, "update failed", err)
	}

	return s.Logout(usrId)
}
