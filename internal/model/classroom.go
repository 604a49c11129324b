package model

import "time"

type Classroom struct {
	ID          uint64 `gorm:"primaryKey"`
	CommunityID uint64 `gorm:"not null;index;uniqueIndex:uk_community_classroom"`
	Name        string `gorm:"size:128;not null;uniqueIndex:uk_community_classroom"`
	Description string `gorm:"type:text"`
	CoverURL    string `gorm:"size:512"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
