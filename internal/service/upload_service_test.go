package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"Hive_Community/internal/model"
	"Hive_Community/internal/pkg"
	"Hive_Community/internal/repository/mysql"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// fakeStore records every call so tests can assert exactly what touched the
// object store.
type fakeStore struct {
	objects  map[string]bool // "bucket/object"
	uploads  []string
	removals []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: map[string]bool{}}
}

func objectKey(bucket, object string) string { return bucket + "/" + object }

func (f *fakeStore) Upload(_ context.Context, bucket, object, _ string, _ int64, _ io.Reader) error {
	k := objectKey(bucket, object)
	f.objects[k] = true
	f.uploads = append(f.uploads, k)
	return nil
}

func (f *fakeStore) Exists(_ context.Context, bucket, object string) (bool, error) {
	return f.objects[objectKey(bucket, object)], nil
}

func (f *fakeStore) Remove(_ context.Context, bucket, object string) error {
	k := objectKey(bucket, object)
	delete(f.objects, k)
	f.removals = append(f.removals, k)
	return nil
}

func (f *fakeStore) URL(bucket, object string) string {
	return "http://files.test/" + objectKey(bucket, object)
}

func openServiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Post{}, &model.Classroom{}))
	return db
}

func newTestUploadService(t *testing.T, store *fakeStore) (*UploadService, *gorm.DB) {
	t.Helper()
	db := openServiceTestDB(t)
	return &UploadService{
		store:      store,
		users:      &mysql.UserRepository{DB: db},
		posts:      &mysql.PostRepository{DB: db},
		classrooms: &mysql.ClassroomRepository{DB: db},
	}, db
}

func imageInput(contentType string, size int64) *FileInput {
	return &FileInput{
		Name:        "photo.jpg",
		ContentType: contentType,
		Size:        size,
		Reader:      strings.NewReader("fake bytes"),
	}
}

// 校验失败时不能有任何存储调用
func TestUploadAvatarRejectsBeforeStore(t *testing.T) {
	store := newFakeStore()
	svc, _ := newTestUploadService(t, store)

	_, appErr := svc.UploadAvatar(context.Background(), 1, imageInput("application/pdf", 100))
	require.NotNil(t, appErr)
	assert.Equal(t, pkg.CodeInvalidParams, appErr.Code)

	_, appErr = svc.UploadAvatar(context.Background(), 1, imageInput("image/png", MaxImageSize+1))
	require.NotNil(t, appErr)
	assert.Equal(t, pkg.CodeInvalidParams, appErr.Code)

	assert.Empty(t, store.uploads)
	assert.Empty(t, store.removals)
}

func TestUploadAvatarOverwritesDeterministicPath(t *testing.T) {
	store := newFakeStore()
	svc, db := newTestUploadService(t, store)
	require.NoError(t, db.Create(&model.User{ID: 7, Username: "u", Password: "p", Email: "u@x.com", Handle: "u"}).Error)

	res, appErr := svc.UploadAvatar(context.Background(), 7, imageInput("image/png", 100))
	require.Nil(t, appErr)
	assert.Equal(t, "7.png", res.Path)

	// 重传覆盖同一路径
	res, appErr = svc.UploadAvatar(context.Background(), 7, imageInput("image/png", 200))
	require.Nil(t, appErr)
	assert.Equal(t, "7.png", res.Path)
	assert.Len(t, store.uploads, 2)
	assert.Len(t, store.objects, 1)

	var user model.User
	require.NoError(t, db.First(&user, 7).Error)
	assert.Equal(t, res.URL, user.AvatarURL)
}

func TestUploadPostFileAuthorOnly(t *testing.T) {
	store := newFakeStore()
	svc, db := newTestUploadService(t, store)
	require.NoError(t, db.Create(&model.Post{ID: 10, CommunityID: 1, AuthorID: 5, Title: "t"}).Error)

	_, appErr := svc.UploadPostFile(context.Background(), 6, 10, imageInput("image/jpeg", 100))
	require.NotNil(t, appErr)
	assert.Equal(t, pkg.CodeForbidden, appErr.Code)
	assert.Empty(t, store.uploads)

	res, appErr := svc.UploadPostFile(context.Background(), 5, 10, imageInput("image/jpeg", 100))
	require.Nil(t, appErr)
	assert.True(t, strings.HasPrefix(res.Path, "10/photo-"))
	assert.True(t, strings.HasSuffix(res.Path, ".jpg"))
}

// 换扩展名时旧 cover 要删掉，任何时刻只有一个 cover 对象
func TestUploadClassroomCoverReplacesOldExtension(t *testing.T) {
	store := newFakeStore()
	svc, db := newTestUploadService(t, store)
	require.NoError(t, db.Create(&model.Classroom{ID: 3, CommunityID: 1, Name: "intro"}).Error)

	res, appErr := svc.UploadClassroomCover(context.Background(), 3, imageInput("image/jpeg", 100))
	require.Nil(t, appErr)
	assert.Equal(t, "3/cover.jpg", res.Path)
	assert.Empty(t, store.removals)

	res, appErr = svc.UploadClassroomCover(context.Background(), 3, imageInput("image/png", 100))
	require.Nil(t, appErr)
	assert.Equal(t, "3/cover.png", res.Path)
	assert.Equal(t, []string{"classrooms/3/cover.jpg"}, store.removals)
	assert.Len(t, store.objects, 1)

	var room model.Classroom
	require.NoError(t, db.First(&room, 3).Error)
	assert.Equal(t, res.URL, room.CoverURL)
}

func TestUploadClassroomCoverSameExtensionNoRemove(t *testing.T) {
	store := newFakeStore()
	svc, db := newTestUploadService(t, store)
	require.NoError(t, db.Create(&model.Classroom{ID: 4, CommunityID: 1, Name: "intro"}).Error)

	_, appErr := svc.UploadClassroomCover(context.Background(), 4, imageInput("image/webp", 100))
	require.Nil(t, appErr)
	_, appErr = svc.UploadClassroomCover(context.Background(), 4, imageInput("image/webp", 200))
	require.Nil(t, appErr)

	assert.Empty(t, store.removals)
	assert.Len(t, store.objects, 1)
}

func TestUploadClassroomResourceAcceptsAnyType(t *testing.T) {
	store := newFakeStore()
	svc, db := newTestUploadService(t, store)
	require.NoError(t, db.Create(&model.Classroom{ID: 5, CommunityID: 1, Name: "intro"}).Error)

	f := &FileInput{
		Name:        "Syllabus V2.pdf",
		ContentType: "application/pdf",
		Size:        1024,
		Reader:      strings.NewReader("pdf"),
	}
	res, appErr := svc.UploadClassroomResource(context.Background(), 5, f)
	require.Nil(t, appErr)
	assert.True(t, strings.HasPrefix(res.Path, "5/resources/syllabus-v2-"))
	assert.True(t, strings.HasSuffix(res.Path, ".pdf"))

	f.Size = MaxResourceSize + 1
	_, appErr = svc.UploadClassroomResource(context.Background(), 5, f)
	require.NotNil(t, appErr)
	assert.Equal(t, pkg.CodeInvalidParams, appErr.Code)
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "my-photo", sanitizeFilename("My Photo.JPG"))
	assert.Equal(t, "file", sanitizeFilename("???.png"))
	assert.Equal(t, "a_b-c", sanitizeFilename("a_b-c.gif"))
}
