package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"Hive_Community/internal/model"
	"Hive_Community/internal/repository/mysql"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestRelayer(t *testing.T, sender Sender) (*OutboxRelayer, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.NotificationOutbox{}))
	return &OutboxRelayer{
		repo:      &mysql.OutboxRepository{DB: db},
		batchSize: 10,
		interval:  time.Second,
		sender:    sender,
	}, db
}

// LogSender 兜底路径：事件照常出队并标记成功
func TestRelayerDrainsWithLogSender(t *testing.T) {
	relayer, db := newTestRelayer(t, LogSender)
	require.NoError(t, db.Create(&model.NotificationOutbox{
		EventType: "join_request", Recipient: 1, Payload: "{}",
	}).Error)

	relayer.drainOnce(context.Background())

	var ob model.NotificationOutbox
	require.NoError(t, db.First(&ob).Error)
	assert.EqualValues(t, 1, ob.Status)
}

func TestRelayerMarksFailedWithRetry(t *testing.T) {
	failing := func(ctx context.Context, ob *model.NotificationOutbox) error {
		return errors.New("broker down")
	}
	relayer, db := newTestRelayer(t, failing)
	require.NoError(t, db.Create(&model.NotificationOutbox{
		EventType: "join_request", Recipient: 1, Payload: "{}",
	}).Error)

	relayer.drainOnce(context.Background())

	var ob model.NotificationOutbox
	require.NoError(t, db.First(&ob).Error)
	assert.EqualValues(t, 2, ob.Status)
	assert.Equal(t, 1, ob.Retry)
}
