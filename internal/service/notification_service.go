package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"Hive_Community/internal/model"
	"Hive_Community/internal/pkg"
	"Hive_Community/internal/repository/mysql"
	"Hive_Community/internal/repository/redis"
)

type NotificationService struct {
	repo  *mysql.NotificationRepository
	cache *redis.UnreadCacheRepository
	lock  *redis.DistLock
}

func NewNotificationService() *NotificationService {
	return &NotificationService{
		repo:  &mysql.NotificationRepository{DB: mysql.DB},
		cache: redis.NewUnreadCacheRepository(),
		lock:  &redis.DistLock{RDB: redis.Client},
	}
}

// NotifyUsers inserts one notification per recipient plus the matching outbox
// events in a single statement batch. An empty recipient list performs zero
// writes and reports zero inserted without contacting the store.
func (s *NotificationService) NotifyUsers(ctx context.Context, recipients []uint64, typ, url, title, message string) (int, *pkg.AppError) {
	if typ == "" || title == "" {
		return 0, pkg.E(pkg.CodeInvalidParams, "type and title required")
	}
	if len(recipients) == 0 {
		return 0, nil
	}

	now := time.Now()
	rows := make([]model.Notification, 0, len(recipients))
	events := make([]model.NotificationOutbox, 0, len(recipients))
	for _, uid := range recipients {
		rows = append(rows, model.Notification{
			RecipientID: uid,
			Type:        typ,
			URL:         url,
			Title:       title,
			Message:     message,
		})
		payload, _ := json.Marshal(map[string]any{
			"event_time": now.UTC().Format(time.RFC3339Nano),
			"recipient":  uid,
			"type":       typ,
			"title":      title,
			"url":        url,
		})
		events = append(events, model.NotificationOutbox{
			EventType: typ,
			Recipient: uid,
			Payload:   string(payload),
		})
	}

	n, err := s.repo.CreateBatch(rows, events)
	if err != nil {
		return 0, pkg.Wrap(pkg.CodeInternal, "notification insert failed", err)
	}
	// 写后删未读缓存，读侧回源重建
	for _, uid := range recipients {
		_ = s.cache.DeleteCount(ctx, uid)
	}
	return n, nil
}

func (s *NotificationService) List(userID uint64, page, size int) ([]model.Notification, *pkg.AppError) {
	if page <= 0 {
		page = 1
	}
	if size <= 0 || size > 50 {
		size = 20
	}
	list, err := s.repo.ListByRecipient(userID, (page-1)*size, size)
	if err != nil {
		return nil, pkg.Wrap(pkg.CodeInternal, "list failed", err)
	}
	return list, nil
}

// UnreadCount reads the cached counter; on a miss the first caller rebuilds
// it from MySQL under a short lock while the rest back off and re-read.
func (s *NotificationService) UnreadCount(ctx context.Context, userID uint64) (int64, *pkg.AppError) {
	if v, ok, err := s.cache.GetUnreadCached(ctx, userID); err == nil && ok {
		return v, nil
	}

	token := fmt.Sprintf("%d-%d", userID, time.Now().UnixNano())
	got, _ := s.lock.Acquire(ctx, userID, token)
	if got {
		// 锁到期自动释放，Release 失败可忽略
		defer func() { _ = s.lock.Release(ctx, userID, token) }()

		// 第二次检查
		if v, ok, err := s.cache.GetUnreadCached(ctx, userID); err == nil && ok {
			return v, nil
		}

		v, err := s.repo.CountUnread(userID)
		if err != nil {
			return 0, pkg.Wrap(pkg.CodeInternal, "count failed", err)
		}
		_ = s.cache.SetUnread(ctx, userID, v)
		return v, nil
	}

	// 没拿到锁，短暂退避后再读一次缓存
	time.Sleep(50 * time.Millisecond)
	if v, ok, err := s.cache.GetUnreadCached(ctx, userID); err == nil && ok {
		return v, nil
	}
	v, err := s.repo.CountUnread(userID)
	if err != nil {
		return 0, pkg.Wrap(pkg.CodeInternal, "count failed", err)
	}
	return v, nil
}

// ResetUnread marks everything read and pins the cached counter to zero.
func (s *NotificationService) ResetUnread(ctx context.Context, userID uint64) (int64, *pkg.AppError) {
	n, err := s.repo.MarkAllRead(userID)
	if err != nil {
		return 0, pkg.Wrap(pkg.CodeInternal, "reset failed", err)
	}
	_ = s.cache.SetUnread(ctx, userID, 0)
	return n, nil
}
