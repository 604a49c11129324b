package access

import (
	"testing"

	"Hive_Community/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	member := &model.Membership{Role: model.MemberRoleMember, Status: model.MemberStatusActive}
	admin := &model.Membership{Role: model.MemberRoleAdmin, Status: model.MemberStatusActive}
	owner := &model.Membership{Role: model.MemberRoleOwner, Status: model.MemberStatusActive}
	pending := &model.Membership{Role: model.MemberRoleMember, Status: model.MemberStatusPending}
	banned := &model.Membership{Role: model.MemberRoleMember, Status: model.MemberStatusBanned}
	bannedAdmin := &model.Membership{Role: model.MemberRoleAdmin, Status: model.MemberStatusBanned}

	cases := []struct {
		name   string
		userID uint64
		m      *model.Membership
		want   Level
	}{
		{"anonymous no row", 0, nil, LevelAnonymous},
		{"anonymous overrides row", 0, member, LevelAnonymous},
		{"logged in no row", 7, nil, LevelNotMember},
		{"member", 7, member, LevelMember},
		{"admin", 7, admin, LevelAdmin},
		{"owner", 7, owner, LevelOwner},
		{"pending", 7, pending, LevelPending},
		{"banned", 7, banned, LevelBanned},
		{"banned admin stays banned", 7, bannedAdmin, LevelBanned},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.userID, tc.m))
		})
	}
}

// 等级排序是权限判断的根基：pending/banned 永远过不了 member 门槛
func TestLevelOrdering(t *testing.T) {
	assert.True(t, LevelOwner.AtLeast(LevelAdmin))
	assert.True(t, LevelAdmin.AtLeast(LevelMember))
	assert.True(t, LevelMember.AtLeast(LevelMember))

	assert.False(t, LevelPending.AtLeast(LevelMember))
	assert.False(t, LevelBanned.AtLeast(LevelMember))
	assert.False(t, LevelBanned.AtLeast(LevelNotMember))
	assert.False(t, LevelAnonymous.AtLeast(LevelMember))
}

func TestResolve(t *testing.T) {
	community := &model.Community{ID: 3, Slug: "golang", Private: true}
	m := &model.Membership{Role: model.MemberRoleAdmin, Status: model.MemberStatusActive}

	ctx := Resolve(community, 42, m)
	require.NotNil(t, ctx)
	assert.Equal(t, uint64(3), ctx.CommunityID)
	assert.Equal(t, "golang", ctx.Slug)
	assert.Equal(t, uint64(42), ctx.UserID)
	assert.Equal(t, LevelAdmin, ctx.Level)
	assert.True(t, ctx.Private)

	ctx.SetLevel(LevelMember)
	assert.Equal(t, LevelMember, ctx.Level)
}

func TestContextCheckPanicsWhenUnpopulated(t *testing.T) {
	var nilCtx *Context
	assert.PanicsWithValue(t, ErrNotInitialized, func() { nilCtx.Check() })
	assert.PanicsWithValue(t, ErrNotInitialized, func() { (&Context{}).Check() })
}
