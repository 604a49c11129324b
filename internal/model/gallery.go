package model

import "time"

type GalleryMedia struct {
	ID          uint64 `gorm:"primaryKey"`
	CommunityID uint64 `gorm:"not null;index"`
	Platform    string `gorm:"size:16;not null"` // youtube / vimeo / loom
	URL         string `gorm:"size:512;not null"`
	AddedBy     uint64 `gorm:"not null"`
	CreatedAt   time.Time
}

func (GalleryMedia) TableName() string {
	return "community_gallery_media"
}
