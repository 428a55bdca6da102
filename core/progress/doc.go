// Package progress bridges a plain byte-count callback into the two transfer styles used by the
// orchestrator.
//
//   - Reader is handed to the backend client as its upload progress hook. The client reads from
//     it with a slice sized to each chunk it sends, so every Read counts len(p) bytes.
//   - Writer decorates the local output stream of a download. Every Write that lands bytes
//     bumps the running total.
//
// Both report through a Tracker, which serialises callbacks, never lets the reported count
// decrease or exceed the known total, and reports total/total once on Complete.
package progress
