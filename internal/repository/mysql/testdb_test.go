package mysql

import (
	"fmt"
	"testing"

	"Hive_Community/internal/model"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openTestDB gives each test its own in-memory database. TranslateError keeps
// uniqueness violations surfacing as gorm.ErrDuplicatedKey like in production.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Community{},
		&model.Membership{},
		&model.Topic{},
		&model.Post{},
		&model.Notification{},
		&model.NotificationOutbox{},
		&model.GalleryMedia{},
		&model.Classroom{},
	))
	return db
}

func seedCommunity(t *testing.T, db *gorm.DB, ownerID uint64, private bool) *model.Community {
	t.Helper()
	c := &model.Community{
		Slug:      fmt.Sprintf("c-%d", ownerID),
		Name:      "test community",
		CreatorID: ownerID,
		Private:   private,
		Active:    true,
	}
	repo := &CommunityRepository{DB: db}
	require.NoError(t, repo.CreateWithOwner(c))
	return c
}
