package model

import "time"

type Community struct {
	ID          uint64 `gorm:"primaryKey"`
	Slug        string `gorm:"uniqueIndex;size:64;not null"`
	Name        string `gorm:"size:64;not null"`
	Description string `gorm:"type:text"`
	CreatorID   uint64 `gorm:"not null;index"`
	Private     bool   `gorm:"not null;default:false"`
	Active      bool   `gorm:"not null;default:true"`
	MemberCount int64  `gorm:"not null;default:0"`
	PriceCents  int64  `gorm:"not null;default:0"`
	Currency    string `gorm:"size:8;not null;default:'usd'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

const (
	MemberRoleMember = 0
	MemberRoleAdmin  = 1
	MemberRoleOwner  = 2
)

const (
	MemberStatusPending int8 = 0
	MemberStatusActive  int8 = 1
	MemberStatusBanned  int8 = 2
)

type Membership struct {
	ID          uint64 `gorm:"primaryKey"`
	CommunityID uint64 `gorm:"not null;index;uniqueIndex:uk_community_user"`
	UserID      uint64 `gorm:"not null;index;uniqueIndex:uk_community_user"`
	Role        int    `gorm:"not null;default:0"` // 0=member, 1=admin, 2=owner
	Status      int8   `gorm:"not null;default:1"` // 0=pending, 1=active, 2=banned
	JoinedAt    time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Membership) TableName() string {
	return "community_members"
}
