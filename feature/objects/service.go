package objects

import (
	"context"
	"sort"
	"time"

	"s3dropbox/core/errs"
	"s3dropbox/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// StorageObject is a snapshot of one object's listing entry.
type StorageObject struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
}

// Service handles object listing, existence checks, deletion and presigning.
type Service struct {
	client storage.Client
	logger *zap.Logger
	loc    *time.Location
	now    func() time.Time
}

// NewService creates a new object service. Listing timestamps are converted to time.Local.
func NewService(client storage.Client, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
		loc:    time.Local,
		now:    time.Now,
	}
}

// ListObjects returns every object in the bucket sorted by key. The client pages through
// the listing, so the result is complete.
func (s *Service) ListObjects(ctx context.Context, bucket string) ([]StorageObject, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var objects []StorageObject
	for obj := range s.client.ListObjects(ctx, bucket, minio.ListObjectsOptions{Recursive: true}) {
		if obj.Err != nil {
			return nil, errs.Backend("listObjects", bucket, "", obj.Err)
		}
		objects = append(objects, StorageObject{
			Key:          obj.Key,
			Size:         obj.Size,
			LastModified: obj.LastModified.In(s.loc),
		})
	}

	SortByKey(objects)
	return objects, nil
}

// SortByKey orders objects by key, byte-wise ascending. Keys are unique within a bucket.
func SortByKey(objects []StorageObject) {
	sort.Slice(objects, func(i, j int) bool {
		return objects[i].Key < objects[j].Key
	})
}

// ObjectExists lists the keys under key as a prefix and reports whether one matches exactly.
func (s *Service) ObjectExists(ctx context.Context, bucket, key string) (bool, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	for obj := range s.client.ListObjects(ctx, bucket, minio.ListObjectsOptions{Prefix: key, Recursive: true}) {
		if obj.Err != nil {
			return false, errs.Backend("objectExists", bucket, key, obj.Err)
		}
		if obj.Key == key {
			return true, nil
		}
	}
	return false, nil
}

// DeleteObject deletes an object. Deleting a missing key is not an error on S3.
func (s *Service) DeleteObject(ctx context.Context, bucket, key string) error {
	if err := s.client.RemoveObject(ctx, bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return errs.Backend("deleteObject", bucket, key, err)
	}
	s.logger.Info("Object deleted", zap.String("bucket", bucket), zap.String("key", key))
	return nil
}

// PresignedURL signs a GET URL that stays valid until expires. Signing is local.
func (s *Service) PresignedURL(ctx context.Context, bucket, key string, expires time.Time) (string, error) {
	ttl := expires.Sub(s.now()).Round(time.Second)
	u, err := s.client.PresignedGetObject(ctx, bucket, key, ttl, nil)
	if err != nil {
		return "", errs.Backend("presignedUrl", bucket, key, err)
	}
	return u.String(), nil
}
