package model

import "time"

type Post struct {
	ID          uint64    `gorm:"primaryKey"`
	CommunityID uint64    `gorm:"not null;index:idx_community_created,priority:1"`
	TopicID     uint64    `gorm:"index"`
	AuthorID    uint64    `gorm:"not null;index"`
	Title       string    `gorm:"size:200;not null"`
	Content     string    `gorm:"type:text"`
	Status      int       `gorm:"not null;default:0"` // 0=normal 1=deleted
	CreatedAt   time.Time `gorm:"index:idx_community_created,priority:2,sort:desc"`
	UpdatedAt   time.Time
}
