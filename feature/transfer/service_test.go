package transfer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"s3dropbox/core/errs"
	"s3dropbox/core/storage"
	"s3dropbox/core/storage/mocks"
	"s3dropbox/core/workers"
	"s3dropbox/feature/journal"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type progressLog struct {
	mu    sync.Mutex
	calls [][2]int64
}

func (p *progressLog) fn(current, total int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, [2]int64{current, total})
}

func (p *progressLog) assertMonotonicTo(t *testing.T, total int64) {
	t.Helper()
	p.mu.Lock()
	defer p.mu.Unlock()

	require.NotEmpty(t, p.calls)
	for i := 1; i < len(p.calls); i++ {
		assert.GreaterOrEqual(t, p.calls[i][0], p.calls[i-1][0], "progress went backwards at call %d", i)
	}
	assert.Equal(t, [2]int64{total, total}, p.calls[len(p.calls)-1])
}

type fakeJournal struct {
	mu      sync.Mutex
	records []journal.TransferRecord
	err     error
}

func (j *fakeJournal) Record(_ context.Context, rec *journal.TransferRecord) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.records = append(j.records, *rec)
	return j.err
}

func newTestService(t *testing.T) (*Service, *mocks.Client, *fakeJournal) {
	t.Helper()
	client := new(mocks.Client)
	pool := workers.New(2, zap.NewNop())
	t.Cleanup(pool.ShutdownNow)
	j := &fakeJournal{}
	svc := NewService(client, pool, storage.TransferConfig{PartSizeMB: 5}, j, zap.NewNop())
	return svc, client, j
}

func writeFile(t *testing.T, name string, size int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0o644))
	return path
}

// sendProgress feeds the upload hook the way the client does, one read per chunk.
func sendProgress(chunk int, total int) func(mock.Arguments) {
	return func(args mock.Arguments) {
		opts := args.Get(4).(minio.PutObjectOptions)
		for sent := 0; sent < total; sent += chunk {
			n := min(chunk, total-sent)
			_, _ = opts.Progress.Read(make([]byte, n))
		}
	}
}

func TestUpload_ContentTypeAndProgress(t *testing.T) {
	svc, client, j := newTestService(t)
	path := writeFile(t, "clip.mp4", 1024)
	progress := &progressLog{}

	client.On("FPutObject", mock.Anything, "media", "videos/clip.mp4", path, mock.MatchedBy(func(o minio.PutObjectOptions) bool {
		return o.ContentType == "video/mp4" && o.PartSize == 5*1024*1024 && o.Progress != nil
	})).Run(sendProgress(300, 1024)).Return(minio.UploadInfo{Size: 1024}, nil)

	require.NoError(t, svc.Upload(t.Context(), "media", "videos/clip.mp4", path, progress.fn))

	progress.assertMonotonicTo(t, 1024)
	client.AssertExpectations(t)

	require.Len(t, j.records, 1)
	assert.Equal(t, journal.DirectionUpload, j.records[0].Direction)
	assert.Equal(t, journal.StatusCompleted, j.records[0].Status)
	assert.Equal(t, int64(1024), j.records[0].Bytes)
}

func TestUpload_NoOverrideForOtherExtensions(t *testing.T) {
	for _, name := range []string{"notes.txt", "CLIP.MP4", "noext"} {
		t.Run(name, func(t *testing.T) {
			svc, client, _ := newTestService(t)
			path := writeFile(t, name, 16)

			client.On("FPutObject", mock.Anything, "media", name, path, mock.MatchedBy(func(o minio.PutObjectOptions) bool {
				return o.ContentType == ""
			})).Return(minio.UploadInfo{Size: 16}, nil)

			require.NoError(t, svc.Upload(t.Context(), "media", name, path, nil))
			client.AssertExpectations(t)
		})
	}
}

func TestUpload_EmptyFileReportsCompletion(t *testing.T) {
	svc, client, _ := newTestService(t)
	path := writeFile(t, "empty.webm", 0)
	progress := &progressLog{}

	client.On("FPutObject", mock.Anything, "media", "empty.webm", path, mock.Anything).Return(minio.UploadInfo{}, nil)

	require.NoError(t, svc.Upload(t.Context(), "media", "empty.webm", path, progress.fn))
	progress.assertMonotonicTo(t, 0)
}

func TestUpload_MissingSourceFile(t *testing.T) {
	svc, client, j := newTestService(t)

	err := svc.Upload(t.Context(), "media", "clip.mp4", filepath.Join(t.TempDir(), "nope.mp4"), nil)
	assert.True(t, errs.IsTransfer(err))
	assert.ErrorIs(t, err, os.ErrNotExist)
	client.AssertNotCalled(t, "FPutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)

	require.Len(t, j.records, 1)
	assert.Equal(t, journal.StatusFailed, j.records[0].Status)
}

func TestUpload_BackendError(t *testing.T) {
	svc, client, _ := newTestService(t)
	path := writeFile(t, "clip.ogv", 8)

	client.On("FPutObject", mock.Anything, "missing", "clip.ogv", path, mock.Anything).
		Return(minio.UploadInfo{}, minio.ErrorResponse{Code: "NoSuchBucket", StatusCode: 404})

	err := svc.Upload(t.Context(), "missing", "clip.ogv", path, nil)
	assert.True(t, errs.IsBackend(err))
	assert.Equal(t, "NoSuchBucket", errs.Code(err))
}

func TestUpload_Interrupted(t *testing.T) {
	svc, client, j := newTestService(t)
	path := writeFile(t, "clip.mp4", 64)

	started := make(chan struct{})
	client.On("FPutObject", mock.Anything, "media", "clip.mp4", path, mock.Anything).
		Run(func(args mock.Arguments) {
			close(started)
			<-args.Get(0).(context.Context).Done()
		}).
		Return(minio.UploadInfo{}, context.Canceled)

	ctx, cancel := context.WithCancel(t.Context())
	go func() {
		<-started
		cancel()
	}()

	err := svc.Upload(ctx, "media", "clip.mp4", path, nil)
	assert.True(t, errs.IsTransfer(err))
	assert.ErrorIs(t, err, errs.ErrInterrupted)
	assert.ErrorIs(t, err, context.Canceled)

	require.Len(t, j.records, 1)
	assert.Equal(t, journal.StatusFailed, j.records[0].Status)
}

func TestUpload_InterruptedReportsNothingAfterReturn(t *testing.T) {
	svc, client, _ := newTestService(t)
	path := writeFile(t, "clip.mp4", 64)
	progress := &progressLog{}

	started := make(chan struct{})
	client.On("FPutObject", mock.Anything, "media", "clip.mp4", path, mock.Anything).
		Run(func(args mock.Arguments) {
			close(started)
			<-args.Get(0).(context.Context).Done()
			time.Sleep(20 * time.Millisecond)
			_, _ = args.Get(4).(minio.PutObjectOptions).Progress.Read(make([]byte, 16))
		}).
		Return(minio.UploadInfo{}, context.Canceled)

	ctx, cancel := context.WithCancel(t.Context())
	go func() {
		<-started
		cancel()
	}()

	err := svc.Upload(ctx, "media", "clip.mp4", path, progress.fn)
	assert.ErrorIs(t, err, errs.ErrInterrupted)

	progress.mu.Lock()
	seen := len(progress.calls)
	progress.mu.Unlock()
	assert.Equal(t, 1, seen)

	time.Sleep(50 * time.Millisecond)
	progress.mu.Lock()
	defer progress.mu.Unlock()
	assert.Len(t, progress.calls, seen)
}

func TestUpload_AfterShutdown(t *testing.T) {
	svc, _, _ := newTestService(t)
	path := writeFile(t, "clip.mp4", 8)
	svc.pool.ShutdownNow()

	err := svc.Upload(t.Context(), "media", "clip.mp4", path, nil)
	assert.True(t, errs.IsTransfer(err))
	assert.ErrorIs(t, err, errs.ErrShutdown)
}

func TestUpload_JournalFailureDoesNotFailTransfer(t *testing.T) {
	svc, client, j := newTestService(t)
	j.err = errors.New("db down")
	path := writeFile(t, "clip.mp4", 8)

	client.On("FPutObject", mock.Anything, "media", "clip.mp4", path, mock.Anything).Return(minio.UploadInfo{Size: 8}, nil)

	assert.NoError(t, svc.Upload(t.Context(), "media", "clip.mp4", path, nil))
}

func TestDownload(t *testing.T) {
	svc, client, j := newTestService(t)
	data := []byte("0123456789abcdef")
	obj := mocks.NewObject("clip.mp4", data)
	target := filepath.Join(t.TempDir(), "clip.mp4")
	progress := &progressLog{}

	client.On("GetObject", mock.Anything, "media", "clip.mp4", mock.Anything).Return(obj, nil)

	require.NoError(t, svc.Download(t.Context(), "media", "clip.mp4", target, progress.fn))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, data, got)
	progress.assertMonotonicTo(t, int64(len(data)))
	assert.Equal(t, 1, obj.Closed())

	require.Len(t, j.records, 1)
	assert.Equal(t, journal.DirectionDownload, j.records[0].Direction)
	assert.Equal(t, int64(len(data)), j.records[0].Bytes)
}

func TestDownload_OverwritesTarget(t *testing.T) {
	svc, client, _ := newTestService(t)
	target := writeFile(t, "clip.mp4", 4096)

	client.On("GetObject", mock.Anything, "media", "clip.mp4", mock.Anything).Return(mocks.NewObject("clip.mp4", []byte("new")), nil)

	require.NoError(t, svc.Download(t.Context(), "media", "clip.mp4", target, nil))
	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), got)
}

func TestDownload_MissingObjectCreatesNoFile(t *testing.T) {
	svc, client, _ := newTestService(t)
	obj := mocks.NewObject("missing-key", nil)
	obj.StatErr = minio.ErrorResponse{Code: "NoSuchKey", StatusCode: 404}
	target := filepath.Join(t.TempDir(), "missing")

	client.On("GetObject", mock.Anything, "media", "missing-key", mock.Anything).Return(obj, nil)

	err := svc.Download(t.Context(), "media", "missing-key", target, nil)
	assert.True(t, errs.IsBackend(err))
	assert.Equal(t, "NoSuchKey", errs.Code(err))
	assert.NoFileExists(t, target)
	assert.Equal(t, 1, obj.Closed())
}

func TestDownload_CopyFailureLeavesPartialFile(t *testing.T) {
	svc, client, _ := newTestService(t)
	obj := mocks.NewObject("clip.mp4", []byte("partial"))
	obj.Info.Size = 100
	obj.ReadErr = errors.New("connection reset")
	target := filepath.Join(t.TempDir(), "clip.mp4")

	client.On("GetObject", mock.Anything, "media", "clip.mp4", mock.Anything).Return(obj, nil)

	err := svc.Download(t.Context(), "media", "clip.mp4", target, nil)
	assert.True(t, errs.IsTransfer(err))
	assert.ErrorContains(t, err, "connection reset")

	got, readErr := os.ReadFile(target)
	require.NoError(t, readErr)
	assert.Equal(t, []byte("partial"), got)
	assert.Equal(t, 1, obj.Closed())
}

func TestDownload_ShortStream(t *testing.T) {
	svc, client, _ := newTestService(t)
	obj := mocks.NewObject("clip.mp4", []byte("abc"))
	obj.Info.Size = 10
	target := filepath.Join(t.TempDir(), "clip.mp4")

	client.On("GetObject", mock.Anything, "media", "clip.mp4", mock.Anything).Return(obj, nil)

	err := svc.Download(t.Context(), "media", "clip.mp4", target, nil)
	assert.True(t, errs.IsTransfer(err))
	assert.FileExists(t, target)
}

func TestDownload_CloseFailureIsSwallowed(t *testing.T) {
	svc, client, _ := newTestService(t)
	obj := mocks.NewObject("clip.mp4", []byte("data"))
	obj.CloseErr = errors.New("close failed")
	target := filepath.Join(t.TempDir(), "clip.mp4")

	client.On("GetObject", mock.Anything, "media", "clip.mp4", mock.Anything).Return(obj, nil)

	assert.NoError(t, svc.Download(t.Context(), "media", "clip.mp4", target, nil))
}

func TestDownload_GetObjectError(t *testing.T) {
	svc, client, _ := newTestService(t)
	target := filepath.Join(t.TempDir(), "clip.mp4")

	client.On("GetObject", mock.Anything, "bad name", "clip.mp4", mock.Anything).
		Return(nil, minio.ErrorResponse{Code: "InvalidBucketName", StatusCode: 400})

	err := svc.Download(t.Context(), "bad name", "clip.mp4", target, nil)
	assert.True(t, errs.IsBackend(err))
	assert.NoFileExists(t, target)
}

func TestTransfers_RunConcurrently(t *testing.T) {
	svc, client, _ := newTestService(t)
	a := writeFile(t, "a.mp4", 8)
	b := writeFile(t, "b.mp4", 8)

	release := make(chan struct{})
	client.On("FPutObject", mock.Anything, "media", "a.mp4", a, mock.Anything).
		Run(func(mock.Arguments) { <-release }).
		Return(minio.UploadInfo{Size: 8}, nil)
	client.On("FPutObject", mock.Anything, "media", "b.mp4", b, mock.Anything).Return(minio.UploadInfo{Size: 8}, nil)

	slow := make(chan error, 1)
	go func() { slow <- svc.Upload(context.Background(), "media", "a.mp4", a, nil) }()

	// b completes while a is still blocked.
	require.NoError(t, svc.Upload(t.Context(), "media", "b.mp4", b, nil))
	close(release)

	select {
	case err := <-slow:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("blocked upload never finished")
	}
}
