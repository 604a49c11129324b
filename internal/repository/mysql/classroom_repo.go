package mysql

import (
	"errors"

	"Hive_Community/internal/model"

	"gorm.io/gorm"
)

var ErrClassroomNameTaken = errors.New("classroom name taken")

type ClassroomRepository struct {
	DB *gorm.DB
}

func (r *ClassroomRepository) Create(c *model.Classroom) error {
	err := r.DB.Create(c).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrClassroomNameTaken
	}
	return err
}

func (r *ClassroomRepository) FindByID(id uint64) (*model.Classroom, bool, error) {
	var c model.Classroom
	err := r.DB.First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &c, true, nil
}

func (r *ClassroomRepository) ListByCommunity(communityID uint64) ([]model.Classroom, error) {
	var list []model.Classroom
	err := r.DB.Where("community_id = ?", communityID).Order("id ASC").Find(&list).Error
	return list, err
}

func (r *ClassroomRepository) UpdateCoverURL(id uint64, url string) error {
	return r.DB.Model(&model.Classroom{}).Where("id = ?", id).Update("cover_url", url).Error
}
