package storage

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Client defines the interface for storage operations.
type Client interface {
	// ListBuckets lists the buckets owned by the configured credentials.
	ListBuckets(ctx context.Context) ([]minio.BucketInfo, error)
	// BucketExists checks if a bucket exists.
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	// MakeBucket creates a new bucket.
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	// RemoveBucket deletes an empty bucket.
	RemoveBucket(ctx context.Context, bucketName string) error
	// ListObjects lists objects in a bucket. Pagination is handled by the client.
	ListObjects(ctx context.Context, bucketName string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo
	// FPutObject uploads a local file, switching to multipart above the part size.
	FPutObject(ctx context.Context, bucketName, objectName, filePath string, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	// GetObject opens an object for reading. The request is lazy; errors surface on Stat or Read.
	GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (Object, error)
	// RemoveObject deletes an object from a bucket.
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
	// PresignedGetObject signs a GET URL locally.
	PresignedGetObject(ctx context.Context, bucketName, objectName string, expires time.Duration, reqParams url.Values) (*url.URL, error)
	// ListIncompleteUploads lists multipart uploads that were never completed.
	ListIncompleteUploads(ctx context.Context, bucketName, objectPrefix string, recursive bool) <-chan minio.ObjectMultipartInfo
	// AbortMultipartUpload aborts a single multipart upload.
	AbortMultipartUpload(ctx context.Context, bucketName, objectName, uploadID string) error
	// CloseIdleConnections releases pooled connections.
	CloseIdleConnections()
}

// Object is an open object stream.
type Object interface {
	io.ReadCloser
	// Stat returns the object metadata, performing the request if it has not been made yet.
	Stat() (minio.ObjectInfo, error)
}

// NewClient creates a new Minio client based on the configuration.
func NewClient(cfg Config) (Client, error) {
	// Minio expects endpoint without scheme
	endpoint := strings.TrimPrefix(cfg.Endpoint, "http://")
	endpoint = strings.TrimPrefix(endpoint, "https://")

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	// Without a region minio asks the backend for the bucket location before signing.
	region := cfg.Region
	if region == "" {
		region = DefaultRegion
	}

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:     credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:    cfg.UseSSL,
		Region:    region,
		Transport: transport,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}
	// Minio connects lazily; the first request surfaces endpoint or credential problems.

	return &minioClientWrapper{Client: minioClient, transport: transport}, nil
}

type minioClientWrapper struct {
	*minio.Client
	transport *http.Transport
}

func (c *minioClientWrapper) GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (Object, error) {
	obj, err := c.Client.GetObject(ctx, bucketName, objectName, opts)
	if err != nil {
		return nil, err
	}
	return obj, nil
}

func (c *minioClientWrapper) AbortMultipartUpload(ctx context.Context, bucketName, objectName, uploadID string) error {
	return minio.Core{Client: c.Client}.AbortMultipartUpload(ctx, bucketName, objectName, uploadID)
}

func (c *minioClientWrapper) CloseIdleConnections() {
	c.transport.CloseIdleConnections()
}
