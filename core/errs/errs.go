package errs

import (
	"context"
	"errors"
	"fmt"

	"github.com/minio/minio-go/v7"
)

// Kind classifies a facade error.
type Kind string

const (
	// KindBackend marks a request rejected by the storage provider.
	KindBackend Kind = "backend"
	// KindTransfer marks a local I/O failure or an interrupted transfer wait.
	KindTransfer Kind = "transfer"
)

var (
	// ErrInterrupted is wrapped when the wait for a transfer ends before the transfer does.
	ErrInterrupted = errors.New("transfer wait interrupted")
	// ErrShutdown is wrapped when work is submitted after the transfer pool was shut down.
	ErrShutdown = errors.New("transfer pool shut down")
)

// Error is a facade operation failure with the context it happened in.
type Error struct {
	// Kind is the failure class.
	Kind Kind
	// Op is the facade operation that failed (e.g. "upload", "deleteBucket").
	Op string
	// Bucket is the bucket involved, if any.
	Bucket string
	// Key is the object key involved, if any.
	Key string
	// Err is the underlying cause.
	Err error
}

func (e *Error) Error() string {
	switch {
	case e.Bucket != "" && e.Key != "":
		return fmt.Sprintf("%s error: %s %s/%s: %v", e.Kind, e.Op, e.Bucket, e.Key, e.Err)
	case e.Bucket != "":
		return fmt.Sprintf("%s error: %s bucket %s: %v", e.Kind, e.Op, e.Bucket, e.Err)
	default:
		return fmt.Sprintf("%s error: %s: %v", e.Kind, e.Op, e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Backend wraps err as a KindBackend error.
func Backend(op, bucket, key string, err error) *Error {
	return &Error{Kind: KindBackend, Op: op, Bucket: bucket, Key: key, Err: err}
}

// Transfer wraps err as a KindTransfer error.
func Transfer(op, bucket, key string, err error) *Error {
	return &Error{Kind: KindTransfer, Op: op, Bucket: bucket, Key: key, Err: err}
}

// Interrupted builds the KindTransfer error returned when a wait is cut short by ctx.
func Interrupted(op, bucket, key string, cause error) *Error {
	return Transfer(op, bucket, key, fmt.Errorf("%w: %w", ErrInterrupted, cause))
}

// Classify wraps an error returned from a transfer call. Errors carrying a backend response
// become KindBackend, context cancellation becomes an interruption, the rest are KindTransfer.
func Classify(op, bucket, key string, err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	if IsBackendResponse(err) {
		return Backend(op, bucket, key, err)
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return Interrupted(op, bucket, key, err)
	}
	return Transfer(op, bucket, key, err)
}

// IsBackendResponse reports whether err carries an error response from the storage provider.
func IsBackendResponse(err error) bool {
	resp, ok := backendResponse(err)
	return ok && (resp.Code != "" || resp.StatusCode != 0)
}

// IsBackend reports whether err is a KindBackend error.
func IsBackend(err error) bool {
	return kindOf(err) == KindBackend
}

// IsTransfer reports whether err is a KindTransfer error.
func IsTransfer(err error) bool {
	return kindOf(err) == KindTransfer
}

// Code returns the backend error code carried by err ("NoSuchKey", "BucketNotEmpty", ...),
// or an empty string.
func Code(err error) string {
	resp, _ := backendResponse(err)
	return resp.Code
}

// backendResponse digs the provider response out of a possibly wrapped error.
func backendResponse(err error) (minio.ErrorResponse, bool) {
	var resp minio.ErrorResponse
	if errors.As(err, &resp) {
		return resp, true
	}
	return resp, false
}

func kindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
