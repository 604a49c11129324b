package mysql

import (
	"fmt"
	"testing"

	"Hive_Community/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedPosts(t *testing.T, repo *PostRepository, communityID uint64, n int) []uint64 {
	t.Helper()
	ids := make([]uint64, 0, n)
	for i := 0; i < n; i++ {
		p := &model.Post{
			CommunityID: communityID,
			AuthorID:    1,
			Title:       fmt.Sprintf("post %d", i),
		}
		require.NoError(t, repo.Create(p))
		ids = append(ids, p.ID)
	}
	return ids
}

// 游标翻页：倒序、不重不漏，末页 next=0
func TestListByCommunityCursor(t *testing.T) {
	db := openTestDB(t)
	repo := &PostRepository{DB: db}
	seedPosts(t, repo, 1, 5)
	seedPosts(t, repo, 2, 3) // 其他社区的帖子不串页

	var seen []uint64
	cursor := uint64(0)
	pages := 0
	for {
		rows, next, err := repo.ListByCommunityCursor(1, cursor, 2)
		require.NoError(t, err)
		for _, p := range rows {
			assert.EqualValues(t, 1, p.CommunityID)
			seen = append(seen, p.ID)
		}
		pages++
		if next == 0 {
			break
		}
		cursor = next
	}

	assert.Equal(t, 3, pages)
	require.Len(t, seen, 5)
	for i := 1; i < len(seen); i++ {
		assert.Greater(t, seen[i-1], seen[i])
	}
}

func TestSoftDeleteIdempotent(t *testing.T) {
	db := openTestDB(t)
	repo := &PostRepository{DB: db}
	ids := seedPosts(t, repo, 1, 1)

	changed, err := repo.SoftDelete(ids[0])
	require.NoError(t, err)
	assert.True(t, changed)

	// 已删除的帖子对查询不可见
	_, found, err := repo.FindByID(ids[0])
	require.NoError(t, err)
	assert.False(t, found)

	list, err := repo.ListByCommunity(1, 0, 10)
	require.NoError(t, err)
	assert.Empty(t, list)

	changed, err = repo.SoftDelete(ids[0])
	require.NoError(t, err)
	assert.False(t, changed)
}
