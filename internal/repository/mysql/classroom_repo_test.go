package mysql

import (
	"testing"

	"Hive_Community/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassroomNameUniquePerCommunity(t *testing.T) {
	db := openTestDB(t)
	repo := &ClassroomRepository{DB: db}

	require.NoError(t, repo.Create(&model.Classroom{CommunityID: 1, Name: "intro"}))
	assert.ErrorIs(t, repo.Create(&model.Classroom{CommunityID: 1, Name: "intro"}), ErrClassroomNameTaken)
	require.NoError(t, repo.Create(&model.Classroom{CommunityID: 2, Name: "intro"}))
}

func TestClassroomUpdateCoverURL(t *testing.T) {
	db := openTestDB(t)
	repo := &ClassroomRepository{DB: db}

	room := &model.Classroom{CommunityID: 1, Name: "intro"}
	require.NoError(t, repo.Create(room))
	require.NoError(t, repo.UpdateCoverURL(room.ID, "http://files.test/classrooms/1/cover.png"))

	got, found, err := repo.FindByID(room.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "http://files.test/classrooms/1/cover.png", got.CoverURL)
}
