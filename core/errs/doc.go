// Package errs defines the two error kinds surfaced by the storage facade.
//
// # Kinds
//
//   - KindBackend: the storage provider rejected the request (bad bucket name, missing bucket or
//     object, denied credentials, deleting a non-empty bucket).
//   - KindTransfer: moving bytes failed locally (file I/O, stream copy) or the wait for a
//     transfer was interrupted.
//
// Every facade operation returns either nil or an *Error carrying one of these kinds, the
// operation name, and the bucket/key it concerned. Use IsBackend and IsTransfer to branch on the
// kind, and errors.Is against the wrapped cause (e.g. ErrInterrupted) for finer checks.
//
// # Usage
//
//	if err := svc.DeleteBucket(ctx, "media"); errs.IsBackend(err) {
//	    log.Warn("backend refused delete", zap.String("code", errs.Code(err)))
//	}
package errs
