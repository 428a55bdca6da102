package mocks

import (
	"bytes"
	"io"
	"sync/atomic"

	"github.com/minio/minio-go/v7"
)

// Object is an in-memory storage.Object.
type Object struct {
	reader   io.Reader
	Info     minio.ObjectInfo
	StatErr  error
	ReadErr  error
	CloseErr error
	closed   atomic.Int32
}

// NewObject returns an Object serving data, with Info.Size set to its length.
func NewObject(key string, data []byte) *Object {
	return &Object{
		reader: bytes.NewReader(data),
		Info:   minio.ObjectInfo{Key: key, Size: int64(len(data))},
	}
}

func (o *Object) Read(p []byte) (int, error) {
	if o.StatErr != nil {
		return 0, o.StatErr
	}
	n, err := o.reader.Read(p)
	if err == io.EOF && o.ReadErr != nil {
		return n, o.ReadErr
	}
	return n, err
}

func (o *Object) Stat() (minio.ObjectInfo, error) {
	if o.StatErr != nil {
		return minio.ObjectInfo{}, o.StatErr
	}
	return o.Info, nil
}

func (o *Object) Close() error {
	o.closed.Add(1)
	return o.CloseErr
}

// Closed returns how many times Close was called.
func (o *Object) Closed() int {
	return int(o.closed.Load())
}
