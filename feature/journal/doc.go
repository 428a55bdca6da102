// Package journal keeps an optional database record of every upload and download.
//
// Records are written after a transfer reaches a terminal state. A Repository built without a
// database accepts writes and drops them, so transfer code never branches on whether the
// journal is configured. Journal failures are logged by the caller and never change a transfer's
// result.
package journal
