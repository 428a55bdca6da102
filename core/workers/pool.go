package workers

import (
	"context"
	"sync"
	"sync/atomic"

	"s3dropbox/core/errs"

	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
)

// DefaultSize is used when a pool is created with a non-positive size.
const DefaultSize = 4

// Pool runs submitted tasks with at most Size of them active at once.
type Pool struct {
	ctx      context.Context
	cancel   context.CancelFunc
	sem      *semaphore.Weighted
	size     int
	inFlight atomic.Int64
	closed   atomic.Bool
	once     sync.Once
	logger   *zap.Logger
}

// New creates a pool of the given size.
func New(size int, logger *zap.Logger) *Pool {
	if size <= 0 {
		size = DefaultSize
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Pool{
		ctx:    ctx,
		cancel: cancel,
		sem:    semaphore.NewWeighted(int64(size)),
		size:   size,
		logger: logger,
	}
}

// Task is the handle of one submitted function.
type Task struct {
	done   chan struct{}
	err    error
	cancel context.CancelFunc
}

// Submit schedules fn. The context passed to fn is cancelled when the pool shuts down or
// the task's waiter gives up.
func (p *Pool) Submit(fn func(ctx context.Context) error) (*Task, error) {
	if p.closed.Load() {
		return nil, errs.ErrShutdown
	}

	ctx, cancel := context.WithCancel(p.ctx)
	t := &Task{done: make(chan struct{}), cancel: cancel}
	p.inFlight.Add(1)

	go func() {
		defer close(t.done)
		defer cancel()
		defer p.inFlight.Add(-1)

		if err := p.sem.Acquire(ctx, 1); err != nil {
			t.err = err
			return
		}
		defer p.sem.Release(1)

		t.err = fn(ctx)
	}()

	return t, nil
}

// Wait blocks until the task reaches a terminal state and returns its error. If ctx ends
// first the task is cancelled and ctx's error is returned once the task has stopped, so
// nothing it does outlives the call.
func (t *Task) Wait(ctx context.Context) error {
	select {
	case <-t.done:
		return t.err
	case <-ctx.Done():
		t.cancel()
		<-t.done
		return ctx.Err()
	}
}

// Done is closed once the task has finished.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Run submits fn and waits for it.
func (p *Pool) Run(ctx context.Context, fn func(ctx context.Context) error) error {
	t, err := p.Submit(fn)
	if err != nil {
		return err
	}
	return t.Wait(ctx)
}

// Size returns the maximum number of concurrently running tasks.
func (p *Pool) Size() int {
	return p.size
}

// InFlight returns the number of submitted tasks that have not finished.
func (p *Pool) InFlight() int64 {
	return p.inFlight.Load()
}

// ShutdownNow cancels every in-flight task and rejects further submissions. It returns
// immediately and is safe to call more than once.
func (p *Pool) ShutdownNow() {
	p.once.Do(func() {
		p.closed.Store(true)
		p.logger.Info("Shutting down transfer pool", zap.Int64("in_flight", p.inFlight.Load()))
		p.cancel()
	})
}

// Closed reports whether ShutdownNow was called.
func (p *Pool) Closed() bool {
	return p.closed.Load()
}
