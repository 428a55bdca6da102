// Package transfer uploads and downloads objects with progress reporting.
//
// # Uploads
//
// Upload hands the file to the client's FPutObject, which switches to a multipart upload above
// the configured part size. A progress.Reader is installed as the client's progress hook; parts
// may be sent in parallel so the hook is safe for concurrent use.
//
// # Downloads
//
// Download opens the object, stats it for its length and only then creates the target file,
// so a missing object leaves nothing behind. Bytes are copied through a progress.Writer.
// A failed copy leaves the partial file on disk for the caller to discard.
//
// # Blocking
//
// Both calls run on the shared workers.Pool and block until their transfer ends. Cancelling the
// caller's context interrupts the wait, cancels the transfer and yields a transfer error wrapping
// errs.ErrInterrupted. Close failures of either stream are logged and ignored.
package transfer
