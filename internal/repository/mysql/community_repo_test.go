package mysql

import (
	"errors"
	"testing"

	"Hive_Community/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCreateWithOwner(t *testing.T) {
	db := openTestDB(t)
	repo := &CommunityRepository{DB: db}
	members := &MembershipRepository{DB: db}

	c := &model.Community{Slug: "gophers", Name: "Gophers", CreatorID: 11, Active: true}
	require.NoError(t, repo.CreateWithOwner(c))
	require.NotZero(t, c.ID)

	// 创建者即 owner，计数从 1 起
	got, found, err := repo.FindBySlug("gophers")
	require.NoError(t, err)
	require.True(t, found)
	assert.EqualValues(t, 1, got.MemberCount)

	m, found, err := members.Get(c.ID, 11)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, model.MemberRoleOwner, m.Role)
	assert.Equal(t, model.MemberStatusActive, m.Status)
}

func TestCreateWithOwnerDuplicateSlug(t *testing.T) {
	db := openTestDB(t)
	repo := &CommunityRepository{DB: db}

	require.NoError(t, repo.CreateWithOwner(&model.Community{Slug: "dup", Name: "a", CreatorID: 1, Active: true}))
	err := repo.CreateWithOwner(&model.Community{Slug: "dup", Name: "b", CreatorID: 2, Active: true})
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))
}

func TestFindBySlugNotFound(t *testing.T) {
	db := openTestDB(t)
	repo := &CommunityRepository{DB: db}

	_, found, err := repo.FindBySlug("missing")
	require.NoError(t, err)
	assert.False(t, found)
}

// 软删除后的社区与不存在等价
func TestFindBySlugInactive(t *testing.T) {
	db := openTestDB(t)
	repo := &CommunityRepository{DB: db}

	c := seedCommunity(t, db, 5, false)
	require.NoError(t, repo.Deactivate(c.ID))

	_, found, err := repo.FindBySlug(c.Slug)
	require.NoError(t, err)
	assert.False(t, found)

	_, found, err = repo.FindByID(c.ID)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestAdjustMemberCountClampsAtZero(t *testing.T) {
	db := openTestDB(t)
	repo := &CommunityRepository{DB: db}
	c := seedCommunity(t, db, 5, false)

	require.NoError(t, adjustMemberCount(db, c.ID, -10))

	got, _, err := repo.FindByID(c.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, got.MemberCount)
}
