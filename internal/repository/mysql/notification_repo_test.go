package mysql

import (
	"testing"

	"Hive_Community/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 空批次必须零写入：repo 连 DB 都不碰，nil DB 也能跑通
func TestCreateBatchEmpty(t *testing.T) {
	repo := &NotificationRepository{}

	n, err := repo.CreateBatch(nil, nil)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestCreateBatchInsertsRowsAndOutbox(t *testing.T) {
	db := openTestDB(t)
	repo := &NotificationRepository{DB: db}

	rows := []model.Notification{
		{RecipientID: 1, Type: "join_request", Title: "t1"},
		{RecipientID: 2, Type: "join_request", Title: "t2"},
	}
	events := []model.NotificationOutbox{
		{EventType: "join_request", Recipient: 1, Payload: "{}"},
		{EventType: "join_request", Recipient: 2, Payload: "{}"},
	}

	n, err := repo.CreateBatch(rows, events)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	var outboxCount int64
	require.NoError(t, db.Model(&model.NotificationOutbox{}).Count(&outboxCount).Error)
	assert.EqualValues(t, 2, outboxCount)

	list, err := repo.ListByRecipient(1, 0, 10)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "t1", list[0].Title)
}

func TestUnreadCountAndMarkAllRead(t *testing.T) {
	db := openTestDB(t)
	repo := &NotificationRepository{DB: db}

	rows := []model.Notification{
		{RecipientID: 7, Type: "a", Title: "x"},
		{RecipientID: 7, Type: "a", Title: "y"},
		{RecipientID: 8, Type: "a", Title: "z"},
	}
	_, err := repo.CreateBatch(rows, nil)
	require.NoError(t, err)

	n, err := repo.CountUnread(7)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	marked, err := repo.MarkAllRead(7)
	require.NoError(t, err)
	assert.EqualValues(t, 2, marked)

	n, err = repo.CountUnread(7)
	require.NoError(t, err)
	assert.Zero(t, n)

	// 幂等：再标记一次没有可改的行
	marked, err = repo.MarkAllRead(7)
	require.NoError(t, err)
	assert.Zero(t, marked)

	// 其他用户不受影响
	n, err = repo.CountUnread(8)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}
