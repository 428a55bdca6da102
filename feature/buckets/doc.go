// Package buckets implements bucket lifecycle operations: region listing, bucket listing,
// existence checks, creation and deletion.
//
// Existence is always asked of the backend; nothing is cached. Backend failures are returned
// as KindBackend errors from core/errs.
package buckets
