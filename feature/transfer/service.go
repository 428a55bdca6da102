package transfer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync/atomic"
	"time"

	"s3dropbox/core/errs"
	"s3dropbox/core/mediatype"
	"s3dropbox/core/progress"
	"s3dropbox/core/storage"
	"s3dropbox/core/workers"
	"s3dropbox/feature/journal"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Journal receives a record of every finished transfer.
type Journal interface {
	Record(ctx context.Context, rec *journal.TransferRecord) error
}

// Service moves files between the local filesystem and the backend. Transfers run on the
// shared worker pool; Upload and Download block until their own transfer ends.
type Service struct {
	client   storage.Client
	pool     *workers.Pool
	partSize uint64
	journal  Journal
	logger   *zap.Logger
}

// NewService creates a new transfer service. journal may be nil.
func NewService(client storage.Client, pool *workers.Pool, cfg storage.TransferConfig, j Journal, logger *zap.Logger) *Service {
	return &Service{
		client:   client,
		pool:     pool,
		partSize: cfg.PartSize(),
		journal:  j,
		logger:   logger,
	}
}

// Upload sends the file at path to bucket/key. Files above the part size go up in parts.
// Known video extensions get their Content-Type set; other files are typed by the client.
// If ctx ends before the upload does, the upload is cancelled and a transfer error wrapping
// errs.ErrInterrupted is returned.
func (s *Service) Upload(ctx context.Context, bucket, key, path string, fn progress.Func) error {
	rec := s.begin(journal.DirectionUpload, bucket, key, path)

	info, err := os.Stat(path)
	if err != nil {
		return s.finish(ctx, rec, errs.Transfer("upload", bucket, key, err))
	}
	if info.IsDir() {
		return s.finish(ctx, rec, errs.Transfer("upload", bucket, key, fmt.Errorf("%s is a directory", path)))
	}

	hook := progress.NewReader(fn, info.Size())
	opts := minio.PutObjectOptions{
		PartSize: s.partSize,
		Progress: hook,
	}
	if ct, ok := mediatype.Resolve(path); ok {
		opts.ContentType = ct
	}

	err = s.run(ctx, "upload", bucket, key, func(ctx context.Context) error {
		_, err := s.client.FPutObject(ctx, bucket, key, path, opts)
		return err
	})
	if err != nil {
		rec.Bytes = hook.Current()
		return s.finish(ctx, rec, err)
	}

	hook.Complete()
	rec.Bytes = info.Size()
	s.logger.Info("Upload completed",
		zap.String("bucket", bucket),
		zap.String("key", key),
		zap.Int64("bytes", info.Size()),
		zap.String("content_type", opts.ContentType),
	)
	return s.finish(ctx, rec, nil)
}

// Download writes bucket/key to path, overwriting it. When the backend rejects the request no
// file is created. When the copy fails midway the partial file is left in place.
func (s *Service) Download(ctx context.Context, bucket, key, path string, fn progress.Func) error {
	rec := s.begin(journal.DirectionDownload, bucket, key, path)

	var copied atomic.Int64
	err := s.run(ctx, "download", bucket, key, func(ctx context.Context) error {
		n, err := s.download(ctx, bucket, key, path, fn)
		copied.Store(n)
		return err
	})
	rec.Bytes = copied.Load()
	if err == nil {
		s.logger.Info("Download completed",
			zap.String("bucket", bucket),
			zap.String("key", key),
			zap.Int64("bytes", rec.Bytes),
		)
	}
	return s.finish(ctx, rec, err)
}

func (s *Service) download(ctx context.Context, bucket, key, path string, fn progress.Func) (int64, error) {
	obj, err := s.client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return 0, errs.Classify("download", bucket, key, err)
	}
	defer s.closeQuietly(obj, "object stream", bucket, key)

	// Stat performs the request, so a missing object fails before the target is touched.
	info, err := obj.Stat()
	if err != nil {
		return 0, errs.Classify("download", bucket, key, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, errs.Transfer("download", bucket, key, err)
	}
	w := progress.NewWriter(f, fn, info.Size)
	defer s.closeQuietly(w, "target file", bucket, key)

	n, err := io.Copy(w, obj)
	if err != nil {
		if ctx.Err() != nil {
			return n, errs.Interrupted("download", bucket, key, ctx.Err())
		}
		return n, errs.Transfer("download", bucket, key, err)
	}
	if info.Size >= 0 && n != info.Size {
		return n, errs.Transfer("download", bucket, key,
			fmt.Errorf("%w: got %d of %d bytes", io.ErrUnexpectedEOF, n, info.Size))
	}

	w.Complete()
	return n, nil
}

// run executes fn on the pool and waits for it. An ended ctx interrupts the wait and cancels fn.
func (s *Service) run(ctx context.Context, op, bucket, key string, fn func(ctx context.Context) error) error {
	task, err := s.pool.Submit(fn)
	if err != nil {
		return errs.Transfer(op, bucket, key, err)
	}
	if err := task.Wait(ctx); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			return errs.Interrupted(op, bucket, key, ctxErr)
		}
		if s.pool.Closed() && errors.Is(err, context.Canceled) {
			return errs.Transfer(op, bucket, key, fmt.Errorf("%w: %w", errs.ErrShutdown, err))
		}
		return errs.Classify(op, bucket, key, err)
	}
	return nil
}

func (s *Service) closeQuietly(c io.Closer, what, bucket, key string) {
	if err := c.Close(); err != nil {
		s.logger.Warn("Failed to close "+what,
			zap.String("bucket", bucket),
			zap.String("key", key),
			zap.Error(err),
		)
	}
}

func (s *Service) begin(dir journal.Direction, bucket, key, path string) *journal.TransferRecord {
	return &journal.TransferRecord{
		Direction: dir,
		Bucket:    bucket,
		ObjectKey: key,
		LocalPath: path,
		StartedAt: time.Now(),
	}
}

// finish journals rec with the outcome and returns err unchanged.
func (s *Service) finish(ctx context.Context, rec *journal.TransferRecord, err error) error {
	rec.FinishedAt = time.Now()
	rec.Status = journal.StatusCompleted
	if err != nil {
		rec.Status = journal.StatusFailed
		rec.Error = err.Error()
		s.logger.Error("Transfer failed",
			zap.String("direction", string(rec.Direction)),
			zap.String("bucket", rec.Bucket),
			zap.String("key", rec.ObjectKey),
			zap.Error(err),
		)
	}

	if s.journal != nil {
		if jerr := s.journal.Record(context.WithoutCancel(ctx), rec); jerr != nil {
			s.logger.Warn("Failed to journal transfer", zap.String("id", rec.ID), zap.Error(jerr))
		}
	}
	return err
}
