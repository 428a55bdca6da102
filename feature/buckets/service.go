package buckets

import (
	"context"
	"slices"

	"s3dropbox/core/errs"
	"s3dropbox/core/storage"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// DefaultRegion is the region a bucket lands in when none is given. S3 has no location
// constraint value for it.
const DefaultRegion = "us-east-1"

// Bucket is a bucket as reported by the backend.
type Bucket struct {
	Name string `json:"name"`
}

// Service handles bucket lifecycle operations.
type Service struct {
	client storage.Client
	logger *zap.Logger
}

// NewService creates a new bucket service.
func NewService(client storage.Client, logger *zap.Logger) *Service {
	return &Service{client: client, logger: logger}
}

// ListRegions returns the region identifiers a bucket can be created in, sorted.
func (s *Service) ListRegions() []string {
	return Regions()
}

// Regions returns the known S3 region identifiers, sorted and without duplicates.
func Regions() []string {
	constraints := types.BucketLocationConstraint("").Values()
	regions := make([]string, 0, len(constraints)+1)
	regions = append(regions, DefaultRegion)
	for _, c := range constraints {
		if c != "" {
			regions = append(regions, string(c))
		}
	}
	slices.Sort(regions)
	return slices.Compact(regions)
}

// ListBuckets returns the buckets owned by the configured credentials in backend order.
func (s *Service) ListBuckets(ctx context.Context) ([]Bucket, error) {
	infos, err := s.client.ListBuckets(ctx)
	if err != nil {
		return nil, errs.Backend("listBuckets", "", "", err)
	}
	buckets := make([]Bucket, 0, len(infos))
	for _, info := range infos {
		buckets = append(buckets, Bucket{Name: info.Name})
	}
	return buckets, nil
}

// BucketExists asks the backend whether the bucket exists.
func (s *Service) BucketExists(ctx context.Context, name string) (bool, error) {
	exists, err := s.client.BucketExists(ctx, name)
	if err != nil {
		return false, errs.Backend("bucketExists", name, "", err)
	}
	return exists, nil
}

// CreateBucket creates a bucket. An empty region leaves the choice to the backend.
func (s *Service) CreateBucket(ctx context.Context, name, region string) error {
	if err := s.client.MakeBucket(ctx, name, minio.MakeBucketOptions{Region: region}); err != nil {
		return errs.Backend("createBucket", name, "", err)
	}
	s.logger.Info("Bucket created", zap.String("bucket", name), zap.String("region", region))
	return nil
}

// DeleteBucket deletes an empty bucket.
func (s *Service) DeleteBucket(ctx context.Context, name string) error {
	if err := s.client.RemoveBucket(ctx, name); err != nil {
		return errs.Backend("deleteBucket", name, "", err)
	}
	s.logger.Info("Bucket deleted", zap.String("bucket", name))
	return nil
}
