package mysql

import (
	"testing"

	"Hive_Community/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memberCount(t *testing.T, db *CommunityRepository, id uint64) int64 {
	t.Helper()
	c, found, err := db.FindByID(id)
	require.NoError(t, err)
	require.True(t, found)
	return c.MemberCount
}

// 完整生命周期：建社区 → owner 重复 join 无效 → 新成员加入计数+1 → 离开计数-1
func TestJoinLeaveLifecycle(t *testing.T) {
	db := openTestDB(t)
	communities := &CommunityRepository{DB: db}
	members := &MembershipRepository{DB: db}

	c := seedCommunity(t, db, 1, false)
	require.EqualValues(t, 1, memberCount(t, communities, c.ID))

	// owner 再 join 是空操作
	inserted, err := members.Join(c.ID, 1, model.MemberRoleMember, model.MemberStatusActive)
	require.NoError(t, err)
	assert.False(t, inserted)
	assert.EqualValues(t, 1, memberCount(t, communities, c.ID))

	inserted, err = members.Join(c.ID, 2, model.MemberRoleMember, model.MemberStatusActive)
	require.NoError(t, err)
	assert.True(t, inserted)
	assert.EqualValues(t, 2, memberCount(t, communities, c.ID))

	removed, err := members.Leave(c.ID, 2)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.EqualValues(t, 1, memberCount(t, communities, c.ID))

	_, found, err := members.Get(c.ID, 2)
	require.NoError(t, err)
	assert.False(t, found)

	// 再离开一次：幂等
	removed, err = members.Leave(c.ID, 2)
	require.NoError(t, err)
	assert.False(t, removed)
}

// pending join 不占计数，approve 后才+1
func TestPendingJoinThenApprove(t *testing.T) {
	db := openTestDB(t)
	communities := &CommunityRepository{DB: db}
	members := &MembershipRepository{DB: db}

	c := seedCommunity(t, db, 1, true)

	inserted, err := members.Join(c.ID, 9, model.MemberRoleMember, model.MemberStatusPending)
	require.NoError(t, err)
	require.True(t, inserted)
	assert.EqualValues(t, 1, memberCount(t, communities, c.ID))

	pending, err := members.ListPending(c.ID, 0, 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.EqualValues(t, 9, pending[0].UserID)

	changed, err := members.Approve(c.ID, 9)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.EqualValues(t, 2, memberCount(t, communities, c.ID))

	// 二次 approve 没有 pending 行可转移
	changed, err = members.Approve(c.ID, 9)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.EqualValues(t, 2, memberCount(t, communities, c.ID))

	// decline 同样只认 pending
	changed, err = members.Decline(c.ID, 9)
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestDeclineRemovesPendingRow(t *testing.T) {
	db := openTestDB(t)
	members := &MembershipRepository{DB: db}
	c := seedCommunity(t, db, 1, true)

	_, err := members.Join(c.ID, 9, model.MemberRoleMember, model.MemberStatusPending)
	require.NoError(t, err)

	changed, err := members.Decline(c.ID, 9)
	require.NoError(t, err)
	assert.True(t, changed)

	_, found, err := members.Get(c.ID, 9)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestBanReleasesCountSlot(t *testing.T) {
	db := openTestDB(t)
	communities := &CommunityRepository{DB: db}
	members := &MembershipRepository{DB: db}
	c := seedCommunity(t, db, 1, false)

	_, err := members.Join(c.ID, 4, model.MemberRoleMember, model.MemberStatusActive)
	require.NoError(t, err)
	require.EqualValues(t, 2, memberCount(t, communities, c.ID))

	changed, err := members.Ban(c.ID, 4)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.EqualValues(t, 1, memberCount(t, communities, c.ID))

	m, found, err := members.Get(c.ID, 4)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, model.MemberStatusBanned, m.Status)

	// 已 ban 的行不再是 active，二次 ban 无效
	changed, err = members.Ban(c.ID, 4)
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestAdminIDsIncludesOwnerExcludesBanned(t *testing.T) {
	db := openTestDB(t)
	members := &MembershipRepository{DB: db}
	c := seedCommunity(t, db, 1, false)

	_, err := members.Join(c.ID, 2, model.MemberRoleAdmin, model.MemberStatusActive)
	require.NoError(t, err)
	_, err = members.Join(c.ID, 3, model.MemberRoleMember, model.MemberStatusActive)
	require.NoError(t, err)

	ids, err := members.AdminIDs(c.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint64{1, 2}, ids)
}
