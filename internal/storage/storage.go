package storage

import (
	"context"
	"io"
)

// Bucket names owned by the platform.
const (
	BucketAvatars    = "avatars"
	BucketPosts      = "posts"
	BucketClassrooms = "classrooms"
)

// ObjectStore is the narrow surface the upload service needs. Upload
// overwrites any existing object at the same key (upsert semantics).
type ObjectStore interface {
	Upload(ctx context.Context, bucket, object, contentType string, size int64, r io.Reader) error
	Exists(ctx context.Context, bucket, object string) (bool, error)
	Remove(ctx context.Context, bucket, object string) error
	URL(bucket, object string) string
}
