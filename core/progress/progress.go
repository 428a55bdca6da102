package progress

import (
	"io"
	"sync"
)

// Func is invoked synchronously on the transfer's worker with the bytes moved so far and the
// expected total. Implementations must return quickly; a slow callback stalls the transfer.
type Func func(current, total int64)

// Tracker keeps the running count for one transfer. It is safe for concurrent use, which
// matters for multipart uploads where parts are sent in parallel.
type Tracker struct {
	mu       sync.Mutex
	fn       Func
	total    int64
	current  int64
	reported int64
	calls    int
}

// NewTracker creates a Tracker for a transfer of total bytes. A negative total means the size
// is unknown and the count is not capped. A nil fn is allowed.
func NewTracker(fn Func, total int64) *Tracker {
	return &Tracker{fn: fn, total: total, reported: -1}
}

// Add records n more bytes and reports the new count.
func (t *Tracker) Add(n int64) {
	if n <= 0 {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	t.current += n
	if t.total >= 0 && t.current > t.total {
		t.current = t.total
	}
	t.report(t.current)
}

// Complete reports the final count. With a known total the final call is total/total.
func (t *Tracker) Complete() {
	t.mu.Lock()
	defer t.mu.Unlock()

	final := t.current
	if t.total >= 0 {
		final = t.total
		t.current = t.total
	}
	if t.reported == final && t.calls > 0 {
		return
	}
	t.report(final)
}

// Current returns the bytes counted so far.
func (t *Tracker) Current() int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}

// Total returns the expected size, negative if unknown.
func (t *Tracker) Total() int64 {
	return t.total
}

func (t *Tracker) report(current int64) {
	t.reported = current
	t.calls++
	if t.fn == nil {
		return
	}
	total := t.total
	if total < 0 {
		total = current
	}
	t.fn(current, total)
}

// Reader is an upload progress hook. Reads never fail and consume the whole slice.
type Reader struct {
	*Tracker
}

// NewReader creates an upload hook for a source of total bytes.
func NewReader(fn Func, total int64) *Reader {
	return &Reader{Tracker: NewTracker(fn, total)}
}

func (r *Reader) Read(p []byte) (int, error) {
	r.Add(int64(len(p)))
	return len(p), nil
}

// Writer counts bytes written through it to the wrapped writer.
type Writer struct {
	*Tracker
	w io.Writer
}

// NewWriter decorates w, reporting progress against total.
func NewWriter(w io.Writer, fn Func, total int64) *Writer {
	return &Writer{Tracker: NewTracker(fn, total), w: w}
}

func (w *Writer) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	w.Add(int64(n))
	return n, err
}

// Close closes the wrapped writer when it is an io.Closer.
func (w *Writer) Close() error {
	if c, ok := w.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
