package service

import (
	"Hive_Community/internal/pkg"
	"Hive_Community/internal/repository/redis"
)

const (
	EmailScopeRegister = "register"
	EmailScopeReset    = "reset"
)

type EmailService struct {
	emailCfg pkg.SMTPConfig
	rds      *redis.EmailRepository
}

func NewEmailService(cfg pkg.SMTPConfig) *EmailService {
	return &EmailService{emailCfg: cfg, rds: &redis.EmailRepository{}}
}

// SendCode writes the pending key, mails the code, then promotes the key to
// confirmed. A failed promotion clears the pending key so the code is dead.
func (s *EmailService) SendCode(scope, email string) error {
	code, err := pkg.RandDigits(6)
	if err != nil {
		return err
	}
	if err = s.rds.SetPending(scope, email, code); err != nil {
		return err
	}

	subject := "Verification code"
	if scope == EmailScopeReset {
		subject = "Password reset code"
	}
	html := pkg.EmailCodeHTML(subject, code, redis.DefaultEmailCodeTTL)
	if err = pkg.SendEmail(s.emailCfg, email, subject, html); err != nil {
		_ = s.rds.DeletePending(scope, email)
		return err
	}

	if err = s.rds.Promote(scope, email); err != nil {
		_ = s.rds.DeletePending(scope, email)
		return err
	}
	return nil
}

// VerifyCode 校验验证码并一次性删除
func (s *EmailService) VerifyCode(scope, email, code string) (bool, error) {
	val, err := s.rds.GetConfirmed(scope, email)
	if err != nil {
		// 不存在或已过期
		return false, err
	}
	if val != code {
		return false, nil
	}
	if err = s.rds.DeleteConfirmed(scope, email); err != nil {
		return false, err
	}
	return true, nil
}
