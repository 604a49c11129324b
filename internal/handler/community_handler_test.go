package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"Hive_Community/internal/access"
	"Hive_Community/internal/middleware"
	"Hive_Community/internal/model"
	"Hive_Community/internal/repository/mysql"
	"Hive_Community/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupJoinTest(t *testing.T) (*CommunityHandler, *model.Community) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.Community{}, &model.Membership{},
		&model.Notification{}, &model.NotificationOutbox{},
	))
	mysql.DB = db

	community := &model.Community{Slug: "gophers", Name: "Gophers", CreatorID: 1, Active: true}
	require.NoError(t, (&mysql.CommunityRepository{DB: db}).CreateWithOwner(community))

	return NewCommunityHandler(service.NewCommunityService(service.NewNotificationService())), community
}

func joinContext(t *testing.T, community *model.Community, userID uint64, m *model.Membership) (*gin.Context, *access.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/c/"+community.Slug+"/join", nil)

	ac := access.Resolve(community, userID, m)
	c.Set(middleware.ContextAccessKey, ac)
	c.Set(middleware.ContextCommunityKey, community)
	return c, ac, w
}

// owner 的冗余 join 不能把请求级别降成 member
func TestJoinRedundantKeepsOwnerLevel(t *testing.T) {
	h, community := setupJoinTest(t)

	owner, found, err := (&mysql.MembershipRepository{DB: mysql.DB}).Get(community.ID, 1)
	require.NoError(t, err)
	require.True(t, found)

	c, ac, w := joinContext(t, community, 1, owner)
	require.Equal(t, access.LevelOwner, ac.Level)

	h.Join(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, access.LevelOwner, ac.Level)
}

func TestJoinUpgradesNotMember(t *testing.T) {
	h, community := setupJoinTest(t)

	c, ac, w := joinContext(t, community, 2, nil)
	require.Equal(t, access.LevelNotMember, ac.Level)

	h.Join(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, access.LevelMember, ac.Level)
}
