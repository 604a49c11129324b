package mysql

import (
	"Hive_Community/internal/model"

	"gorm.io/gorm"
)

type NotificationRepository struct {
	DB *gorm.DB
}

// CreateBatch inserts all rows in one statement together with their outbox
// events. An empty batch performs zero writes and never touches the store.
func (r *NotificationRepository) CreateBatch(rows []model.Notification, events []model.NotificationOutbox) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
		if len(events) == 0 {
			return nil
		}
		return tx.Create(&events).Error
	})
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}

func (r *NotificationRepository) ListByRecipient(userID uint64, offset, limit int) ([]model.Notification, error) {
	var list []model.Notification
	err := r.DB.Where("recipient_id = ?", userID).
		Order("id DESC").Offset(offset).Limit(limit).Find(&list).Error
	return list, err
}

func (r *NotificationRepository) CountUnread(userID uint64) (int64, error) {
	var n int64
	err := r.DB.Model(&model.Notification{}).
		Where("recipient_id = ? AND is_read = ?", userID, false).
		Count(&n).Error
	return n, err
}

// MarkAllRead 重置未读，幂等
func (r *NotificationRepository) MarkAllRead(userID uint64) (int64, error) {
	res := r.DB.Model(&model.Notification{}).
		Where("recipient_id = ? AND is_read = ?", userID, false).
		Update("is_read", true)
	return res.RowsAffected, res.Error
}
