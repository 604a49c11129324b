package model

import "time"

type Notification struct {
	ID          uint64 `gorm:"primaryKey"`
	RecipientID uint64 `gorm:"not null;index:idx_recipient_read,priority:1"`
	Type        string `gorm:"size:32;not null"` // join_request / join_approved / post_reply / ...
	URL         string `gorm:"size:512"`
	Title       string `gorm:"size:200;not null"`
	Message     string `gorm:"type:text"`
	IsRead      bool   `gorm:"not null;default:false;index:idx_recipient_read,priority:2"`
	CreatedAt   time.Time
}

// NotificationOutbox 通知事件监控表
type NotificationOutbox struct {
	ID        uint64 `gorm:"primaryKey"`
	EventType string `gorm:"size:32;not null"`
	Recipient uint64 `gorm:"not null"`
	Payload   string `gorm:"type:json;not null"`
	Status    int8   `gorm:"not null;default:0;comment:'0=pending,1=sent,2=failed'"`
	Retry     int    `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (NotificationOutbox) TableName() string { return "notification_outbox" }
