package model

import "time"

const (
	TopicWriteMembers = 0
	TopicWriteAdmins  = 1
)

type Topic struct {
	ID          uint64 `gorm:"primaryKey"`
	CommunityID uint64 `gorm:"not null;index;uniqueIndex:uk_community_topic"`
	Name        string `gorm:"size:64;not null;uniqueIndex:uk_community_topic"`
	WritePolicy int    `gorm:"not null;default:0"` // 0=members, 1=admins only
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
