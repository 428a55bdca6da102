package dropbox

import (
	"context"
	"sync"
	"time"

	"s3dropbox/core/progress"
	"s3dropbox/core/storage"
	"s3dropbox/core/workers"
	"s3dropbox/feature/buckets"
	"s3dropbox/feature/cleanup"
	"s3dropbox/feature/journal"
	"s3dropbox/feature/objects"
	"s3dropbox/feature/transfer"

	"go.uber.org/zap"
)

// Bucket is a bucket as reported by the backend.
type Bucket = buckets.Bucket

// StorageObject is a snapshot of one object's listing entry.
type StorageObject = objects.StorageObject

// Service is the storage facade. It owns the transfer pool and must be shut down once.
type Service struct {
	client    storage.Client
	pool      *workers.Pool
	buckets   *buckets.Service
	objects   *objects.Service
	transfers *transfer.Service
	cleanup   *cleanup.Service
	journal   *journal.Repository
	logger    *zap.Logger
	once      sync.Once
}

// New creates a facade over client. repo may be nil, in which case transfers are not journaled.
func New(client storage.Client, cfg storage.TransferConfig, repo *journal.Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if repo == nil {
		repo = journal.NewRepository(nil, logger)
	}
	pool := workers.New(cfg.Workers, logger)

	return &Service{
		client:    client,
		pool:      pool,
		buckets:   buckets.NewService(client, logger),
		objects:   objects.NewService(client, logger),
		transfers: transfer.NewService(client, pool, cfg, repo, logger),
		cleanup:   cleanup.NewService(client, logger),
		journal:   repo,
		logger:    logger,
	}
}

// ListRegions returns the region identifiers a bucket can be created in.
func (s *Service) ListRegions() []string {
	return s.buckets.ListRegions()
}

// ListBuckets returns the buckets owned by the configured credentials in backend order.
func (s *Service) ListBuckets(ctx context.Context) ([]Bucket, error) {
	return s.buckets.ListBuckets(ctx)
}

// BucketExists asks the backend whether the bucket exists.
func (s *Service) BucketExists(ctx context.Context, name string) (bool, error) {
	return s.buckets.BucketExists(ctx, name)
}

// CreateBucket creates a bucket. An empty region leaves the choice to the backend.
func (s *Service) CreateBucket(ctx context.Context, name, region string) error {
	return s.buckets.CreateBucket(ctx, name, region)
}

// DeleteBucket deletes an empty bucket.
func (s *Service) DeleteBucket(ctx context.Context, name string) error {
	return s.buckets.DeleteBucket(ctx, name)
}

// ListObjects returns every object in bucket sorted by key, timestamps in local time.
func (s *Service) ListObjects(ctx context.Context, bucket string) ([]StorageObject, error) {
	return s.objects.ListObjects(ctx, bucket)
}

// ObjectExists reports whether an object with exactly this key exists.
func (s *Service) ObjectExists(ctx context.Context, bucket, key string) (bool, error) {
	return s.objects.ObjectExists(ctx, bucket, key)
}

// DeleteObject deletes an object.
func (s *Service) DeleteObject(ctx context.Context, bucket, key string) error {
	return s.objects.DeleteObject(ctx, bucket, key)
}

// PresignedURL signs a GET URL valid until expires.
func (s *Service) PresignedURL(ctx context.Context, bucket, key string, expires time.Time) (string, error) {
	return s.objects.PresignedURL(ctx, bucket, key, expires)
}

// AbortAbandonedMultipartUploads aborts every multipart upload in bucket started before now.
func (s *Service) AbortAbandonedMultipartUploads(ctx context.Context, bucket string) (int, error) {
	return s.cleanup.AbortAbandonedMultipartUploads(ctx, bucket)
}

// Upload sends the file at path to bucket/key and blocks until it is stored.
func (s *Service) Upload(ctx context.Context, bucket, key, path string, fn progress.Func) error {
	return s.transfers.Upload(ctx, bucket, key, path, fn)
}

// Download writes bucket/key to path and blocks until it is written.
func (s *Service) Download(ctx context.Context, bucket, key, path string, fn progress.Func) error {
	return s.transfers.Download(ctx, bucket, key, path, fn)
}

// Shutdown cancels in-flight transfers and releases pooled connections without waiting.
// Later transfers fail with errs.ErrShutdown. Calling it again does nothing.
func (s *Service) Shutdown() {
	s.once.Do(func() {
		s.pool.ShutdownNow()
		s.client.CloseIdleConnections()
		s.logger.Info("Storage facade shut down")
	})
}

// Buckets returns the bucket service.
func (s *Service) Buckets() *buckets.Service { return s.buckets }

// Objects returns the object catalog service.
func (s *Service) Objects() *objects.Service { return s.objects }

// Transfers returns the transfer service.
func (s *Service) Transfers() *transfer.Service { return s.transfers }

// Cleanup returns the multipart cleanup service.
func (s *Service) Cleanup() *cleanup.Service { return s.cleanup }

// Journal returns the transfer journal.
func (s *Service) Journal() *journal.Repository { return s.journal }
