// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind the Client interface so the facade and its features can
// be tested against core/storage/mocks. The same client talks to AWS S3 and self-hosted MinIO.
//
// # Operations
//
//   - ListBuckets, BucketExists, MakeBucket, RemoveBucket: bucket lifecycle.
//   - ListObjects: paginated listing, streamed over a channel.
//   - FPutObject: file upload with automatic multipart splitting and a progress hook.
//   - GetObject: lazy object stream; Stat performs the request.
//   - PresignedGetObject: local URL signing.
//   - ListIncompleteUploads, AbortMultipartUpload: multipart cleanup.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, "media")
package storage
