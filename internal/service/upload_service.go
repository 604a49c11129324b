package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"path"
	"strings"

	"Hive_Community/internal/pkg"
	"Hive_Community/internal/repository/mysql"
	"Hive_Community/internal/storage"

	"github.com/google/uuid"
)

const (
	MaxImageSize    = 10 << 20 // avatars, post images, covers
	MaxResourceSize = 50 << 20 // classroom resources
)

// image allow-list shared by the avatar/post/cover paths
var imageContentTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// every extension a cover may have been stored under previously
var coverExts = []string{".jpg", ".png", ".gif", ".webp"}

// FileInput is one multipart file, already opened by the handler.
type FileInput struct {
	Name        string
	ContentType string
	Size        int64
	Reader      io.Reader
}

type UploadResult struct {
	URL  string `json:"url"`
	Path string `json:"path"`
}

type UploadService struct {
	store      storage.ObjectStore
	users      *mysql.UserRepository
	posts      *mysql.PostRepository
	classrooms *mysql.ClassroomRepository
}

func NewUploadService(store storage.ObjectStore) *UploadService {
	return &UploadService{
		store:      store,
		users:      &mysql.UserRepository{DB: mysql.DB},
		posts:      &mysql.PostRepository{DB: mysql.DB},
		classrooms: &mysql.ClassroomRepository{DB: mysql.DB},
	}
}

// UploadAvatar stores the user's avatar at a deterministic per-user path.
// Re-uploads overwrite in place. All validation happens before any storage
// write.
func (s *UploadService) UploadAvatar(ctx context.Context, userID uint64, f *FileInput) (*UploadResult, *pkg.AppError) {
	if appErr := validateImage(f, MaxImageSize); appErr != nil {
		return nil, appErr
	}
	ext := imageContentTypes[f.ContentType]
	object := fmt.Sprintf("%d%s", userID, ext)

	if err := s.store.Upload(ctx, storage.BucketAvatars, object, f.ContentType, f.Size, f.Reader); err != nil {
		return nil, pkg.Wrap(pkg.CodeInternal, "upload failed", err)
	}
	url := s.store.URL(storage.BucketAvatars, object)
	if err := s.users.UpdateAvatar(userID, url); err != nil {
		return nil, pkg.Wrap(pkg.CodeInternal, "avatar update failed", err)
	}
	return &UploadResult{URL: url, Path: object}, nil
}

// UploadPostFile attaches an image to a post. Only the post's author may
// upload; a random suffix keeps multiple attachments from colliding.
func (s *UploadService) UploadPostFile(ctx context.Context, userID, postID uint64, f *FileInput) (*UploadResult, *pkg.AppError) {
	if appErr := validateImage(f, MaxImageSize); appErr != nil {
		return nil, appErr
	}
	post, found, err := s.posts.FindByID(postID)
	if err != nil {
		return nil, pkg.Wrap(pkg.CodeInternal, "post lookup failed", err)
	}
	if !found {
		return nil, pkg.E(pkg.CodeNotFound, "post not found")
	}
	if post.AuthorID != userID {
		return nil, pkg.E(pkg.CodeForbidden, "not the post author")
	}

	ext := imageContentTypes[f.ContentType]
	object := fmt.Sprintf("%d/%s-%s%s", postID, sanitizeFilename(f.Name), randomSuffix(), ext)
	if err := s.store.Upload(ctx, storage.BucketPosts, object, f.ContentType, f.Size, f.Reader); err != nil {
		return nil, pkg.Wrap(pkg.CodeInternal, "upload failed", err)
	}
	return &UploadResult{URL: s.store.URL(storage.BucketPosts, object), Path: object}, nil
}

// UploadClassroomCover replaces the classroom's single cover slot. Same
// extension overwrites in place; a different extension removes the old object
// first so no file is orphaned. The delete is best-effort: its failure is
// logged and the upload proceeds.
func (s *UploadService) UploadClassroomCover(ctx context.Context, classroomID uint64, f *FileInput) (*UploadResult, *pkg.AppError) {
	if appErr := validateImage(f, MaxImageSize); appErr != nil {
		return nil, appErr
	}
	room, found, err := s.classrooms.FindByID(classroomID)
	if err != nil {
		return nil, pkg.Wrap(pkg.CodeInternal, "classroom lookup failed", err)
	}
	if !found {
		return nil, pkg.E(pkg.CodeNotFound, "classroom not found")
	}

	newExt := imageContentTypes[f.ContentType]
	for _, ext := range coverExts {
		if ext == newExt {
			continue
		}
		old := coverObject(room.ID, ext)
		exists, err := s.store.Exists(ctx, storage.BucketClassrooms, old)
		if err != nil || !exists {
			continue
		}
		if err := s.store.Remove(ctx, storage.BucketClassrooms, old); err != nil {
			log.Printf("cover cleanup err: classroom=%d object=%s err=%v", room.ID, old, err)
		}
	}

	object := coverObject(room.ID, newExt)
	if err := s.store.Upload(ctx, storage.BucketClassrooms, object, f.ContentType, f.Size, f.Reader); err != nil {
		return nil, pkg.Wrap(pkg.CodeInternal, "upload failed", err)
	}
	url := s.store.URL(storage.BucketClassrooms, object)
	if err := s.classrooms.UpdateCoverURL(room.ID, url); err != nil {
		return nil, pkg.Wrap(pkg.CodeInternal, "cover update failed", err)
	}
	return &UploadResult{URL: url, Path: object}, nil
}

// UploadClassroomResource accepts any content type up to the resource ceiling.
func (s *UploadService) UploadClassroomResource(ctx context.Context, classroomID uint64, f *FileInput) (*UploadResult, *pkg.AppError) {
	if f == nil || f.Reader == nil {
		return nil, pkg.E(pkg.CodeInvalidParams, "file required")
	}
	if f.Size <= 0 || f.Size > MaxResourceSize {
		return nil, pkg.E(pkg.CodeInvalidParams, "file exceeds 50MB limit")
	}
	_, found, err := s.classrooms.FindByID(classroomID)
	if err != nil {
		return nil, pkg.Wrap(pkg.CodeInternal, "classroom lookup failed", err)
	}
	if !found {
		return nil, pkg.E(pkg.CodeNotFound, "classroom not found")
	}

	ext := strings.ToLower(path.Ext(f.Name))
	object := fmt.Sprintf("%d/resources/%s-%s%s", classroomID, sanitizeFilename(f.Name), randomSuffix(), ext)
	if err := s.store.Upload(ctx, storage.BucketClassrooms, object, f.ContentType, f.Size, f.Reader); err != nil {
		return nil, pkg.Wrap(pkg.CodeInternal, "upload failed", err)
	}
	return &UploadResult{URL: s.store.URL(storage.BucketClassrooms, object), Path: object}, nil
}

func validateImage(f *FileInput, maxSize int64) *pkg.AppError {
	if f == nil || f.Reader == nil {
		return pkg.E(pkg.CodeInvalidParams, "file required")
	}
	if _, ok := imageContentTypes[f.ContentType]; !ok {
		return pkg.E(pkg.CodeInvalidParams, "only image files are allowed")
	}
	if f.Size <= 0 || f.Size > maxSize {
		return pkg.E(pkg.CodeInvalidParams, "file exceeds 10MB limit")
	}
	return nil
}

func coverObject(classroomID uint64, ext string) string {
	return fmt.Sprintf("%d/cover%s", classroomID, ext)
}

// sanitizeFilename keeps the base name readable while stripping anything that
// does not belong in an object key.
func sanitizeFilename(name string) string {
	base := strings.TrimSuffix(path.Base(name), path.Ext(name))
	base = strings.ToLower(base)
	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	out := strings.Trim(b.String(), "-")
	if out == "" {
		return "file"
	}
	return out
}

func randomSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
