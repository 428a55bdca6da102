package cleanup

import (
	"context"
	"sort"
	"sync/atomic"
	"time"

	"s3dropbox/core/errs"
	"s3dropbox/core/storage"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const op = "abortAbandonedMultipartUploads"

// Service reconciles abandoned multipart uploads.
type Service struct {
	client storage.Client
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates a new cleanup service.
func NewService(client storage.Client, logger *zap.Logger) *Service {
	return &Service{client: client, logger: logger, now: time.Now}
}

// Plan lists the incomplete uploads in bucket initiated before cutoff, sorted by key and
// initiation time. It does NOT abort anything; use Apply for that.
func (s *Service) Plan(ctx context.Context, bucket string, cutoff time.Time) (*Plan, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	plan := &Plan{Bucket: bucket, Cutoff: cutoff, Uploads: []Upload{}}
	for info := range s.client.ListIncompleteUploads(ctx, bucket, "", true) {
		if info.Err != nil {
			return nil, errs.Backend(op, bucket, "", info.Err)
		}
		if !info.Initiated.Before(cutoff) {
			continue
		}
		plan.Uploads = append(plan.Uploads, Upload{
			Key:       info.Key,
			UploadID:  info.UploadID,
			Initiated: info.Initiated,
			Size:      info.Size,
		})
	}

	sort.Slice(plan.Uploads, func(i, j int) bool {
		a, b := plan.Uploads[i], plan.Uploads[j]
		if a.Key != b.Key {
			return a.Key < b.Key
		}
		return a.Initiated.Before(b.Initiated)
	})
	return plan, nil
}

// Apply aborts the uploads in plan. It requires opts.Confirmed=true and opts.DryRun=false,
// otherwise nothing happens. Uploads the backend no longer knows count as aborted, so applying
// the same plan twice is safe. Returns the number of uploads aborted.
func (s *Service) Apply(ctx context.Context, plan *Plan, opts Options) (int, error) {
	if !opts.Confirmed || opts.DryRun || len(plan.Uploads) == 0 {
		return 0, nil
	}

	limit := opts.Concurrency
	if limit <= 0 {
		limit = DefaultConcurrency
	}

	var aborted atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for _, u := range plan.Uploads {
		g.Go(func() error {
			err := s.client.AbortMultipartUpload(gctx, plan.Bucket, u.Key, u.UploadID)
			if err != nil && errs.Code(err) != "NoSuchUpload" {
				return errs.Backend(op, plan.Bucket, u.Key, err)
			}
			aborted.Add(1)
			return nil
		})
	}

	err := g.Wait()
	s.logger.Info("Aborted abandoned uploads",
		zap.String("bucket", plan.Bucket),
		zap.Int64("aborted", aborted.Load()),
		zap.Int("planned", len(plan.Uploads)),
	)
	return int(aborted.Load()), err
}

// AbortAbandonedMultipartUploads aborts every multipart upload in bucket initiated before now.
func (s *Service) AbortAbandonedMultipartUploads(ctx context.Context, bucket string) (int, error) {
	plan, err := s.Plan(ctx, bucket, s.now())
	if err != nil {
		return 0, err
	}
	return s.Apply(ctx, plan, Options{Confirmed: true})
}
