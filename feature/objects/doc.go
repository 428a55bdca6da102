// Package objects is the object catalog: listing, existence checks, deletion and presigned URLs.
//
// # Listing
//
// ListObjects walks the whole bucket recursively, converts each last-modified instant to the
// service's location (time.Local) and sorts the result by key. The order is total because keys
// are unique, so repeated listings of the same content come back identical.
//
// # Existence
//
// ObjectExists is a prefix listing followed by an exact key match, not a HEAD request.
// "clip" does not exist just because "clip.mp4" does.
package objects
