package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type MinioConfig struct {
	Endpoint      string
	AccessKey     string
	SecretKey     string
	UseSSL        bool
	PublicBaseURL string
}

type MinioStore struct {
	client  *minio.Client
	baseURL string
}

func NewMinioStore(cfg MinioConfig) (*MinioStore, error) {
	cli, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, err
	}
	return &MinioStore{client: cli, baseURL: cfg.PublicBaseURL}, nil
}

// EnsureBuckets creates the platform buckets if they are missing.
func (s *MinioStore) EnsureBuckets(ctx context.Context, buckets ...string) error {
	for _, b := range buckets {
		ok, err := s.client.BucketExists(ctx, b)
		if err != nil {
			return err
		}
		if ok {
			continue
		}
		if err := s.client.MakeBucket(ctx, b, minio.MakeBucketOptions{}); err != nil {
			return err
		}
	}
	return nil
}

func (s *MinioStore) Upload(ctx context.Context, bucket, object, contentType string, size int64, r io.Reader) error {
	_, err := s.client.PutObject(ctx, bucket, object, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

func (s *MinioStore) Exists(ctx context.Context, bucket, object string) (bool, error) {
	_, err := s.client.StatObject(ctx, bucket, object, minio.StatObjectOptions{})
	if err != nil {
		var resp minio.ErrorResponse
		if errors.As(err, &resp) && resp.Code == "NoSuchKey" {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *MinioStore) Remove(ctx context.Context, bucket, object string) error {
	return s.client.RemoveObject(ctx, bucket, object, minio.RemoveObjectOptions{})
}

func (s *MinioStore) URL(bucket, object string) string {
	return fmt.Sprintf("%s/%s/%s", s.baseURL, bucket, object)
}
