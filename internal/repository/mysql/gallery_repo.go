package mysql

import (
	"Hive_Community/internal/model"

	"gorm.io/gorm"
)

type GalleryRepository struct {
	DB *gorm.DB
}

func (r *GalleryRepository) Add(m *model.GalleryMedia) error {
	return r.DB.Create(m).Error
}

func (r *GalleryRepository) ListByCommunity(communityID uint64) ([]model.GalleryMedia, error) {
	var list []model.GalleryMedia
	err := r.DB.Where("community_id = ?", communityID).Order("id DESC").Find(&list).Error
	return list, err
}
