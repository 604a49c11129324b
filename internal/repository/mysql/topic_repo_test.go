package mysql

import (
	"testing"

	"Hive_Community/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopicNameUniquePerCommunity(t *testing.T) {
	db := openTestDB(t)
	repo := &TopicRepository{DB: db}

	require.NoError(t, repo.Create(&model.Topic{CommunityID: 1, Name: "general"}))

	// 同社区重名被唯一键挡下，且不会留下第二行
	err := repo.Create(&model.Topic{CommunityID: 1, Name: "general"})
	assert.ErrorIs(t, err, ErrTopicNameTaken)

	list, err := repo.ListByCommunity(1)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	// 不同社区可以同名
	require.NoError(t, repo.Create(&model.Topic{CommunityID: 2, Name: "general"}))
}

func TestTopicFindByID(t *testing.T) {
	db := openTestDB(t)
	repo := &TopicRepository{DB: db}

	topic := &model.Topic{CommunityID: 1, Name: "help", WritePolicy: model.TopicWriteAdmins}
	require.NoError(t, repo.Create(topic))

	got, found, err := repo.FindByID(topic.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, model.TopicWriteAdmins, got.WritePolicy)

	_, found, err = repo.FindByID(9999)
	require.NoError(t, err)
	assert.False(t, found)
}
