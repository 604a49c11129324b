package mysql

import (
	"errors"

	"Hive_Community/internal/model"

	"gorm.io/gorm"
)

// ErrTopicNameTaken maps the (community_id, name) uniqueness violation.
var ErrTopicNameTaken = errors.New("topic name taken")

type TopicRepository struct {
	DB *gorm.DB
}

func (r *TopicRepository) Create(t *model.Topic) error {
	err := r.DB.Create(t).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrTopicNameTaken
	}
	return err
}

func (r *TopicRepository) ListByCommunity(communityID uint64) ([]model.Topic, error) {
	var list []model.Topic
	err := r.DB.Where("community_id = ?", communityID).Order("id ASC").Find(&list).Error
	return list, err
}

func (r *TopicRepository) FindByID(id uint64) (*model.Topic, bool, error) {
	var t model.Topic
	err := r.DB.First(&t, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &t, true, nil
}
