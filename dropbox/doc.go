// Package dropbox is the storage facade: one uniform operation set over an S3-compatible backend.
//
// # Operations
//
//   - Buckets: ListRegions, ListBuckets, BucketExists, CreateBucket, DeleteBucket
//   - Objects: ListObjects, ObjectExists, DeleteObject, PresignedURL
//   - Transfers: Upload, Download (blocking, with progress)
//   - Maintenance: AbortAbandonedMultipartUploads
//
// Failures are *errs.Error values of kind KindBackend (the provider rejected the request) or
// KindTransfer (local I/O, or the wait was interrupted through the context).
//
// # Lifecycle
//
// A Service owns a bounded transfer pool and the client's idle connections. Shutdown releases
// both exactly once and does not wait for in-flight transfers.
//
//	svc := dropbox.New(client, cfg.Transfer, nil, logg)
//	defer svc.Shutdown()
//	err := svc.Upload(ctx, "media", "clip.mp4", "/tmp/clip.mp4", func(cur, total int64) {})
package dropbox
