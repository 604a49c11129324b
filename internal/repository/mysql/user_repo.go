package mysql

import (
	"errors"

	"Hive_Community/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByUsername(username string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("username = ? OR email = ?", username, username).First(&user).Error
	return &user, err
}

// FindByID distinguishes absence from query failure.
func (r *UserRepository) FindByID(id uint64) (*model.User, bool, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &user, true, nil
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var usr model.User
	err := r.DB.Where("email = ?", email).First(&usr).Error
	return &usr, err
}

func (r *UserRepository) UpdatePassword(user *model.User, newPassword string) error {
	return r.DB.Model(user).Update("password", newPassword).Error
}

func (r *UserRepository) UpdateAvatar(id uint64, url string) error {
	return r.DB.Model(&model.User{}).Where("id = ?", id).Update("avatar_url", url).Error
}

// UpdateProfile 更新展示信息
func (r *UserRepository) UpdateProfile(id uint64, firstName, lastName, handle string) error {
	return r.DB.Model(&model.User{}).Where("id = ?", id).Updates(map[string]any{
		"first_name": firstName,
		"last_name":  lastName,
		"handle":     handle,
	}).Error
}
