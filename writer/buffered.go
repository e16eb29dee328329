package writer

import (
	"bufio"
	"sync"
)

// defaultBufferSize is 64 KB, large enough to batch a few hundred
// typical lines per flush.
const defaultBufferSize = 64 * 1024

// BufferedWriter batches writes in memory before handing them to the
// inner ByteWriter.
//
// Buffering on top of LockedFileWriter trades away the per-call
// guarantee: the buffer flushes on its own schedule, so line
// boundaries and lock acquisitions no longer coincide. Other processes
// can observe partially flushed output until Flush or Close runs.
type BufferedWriter struct {
	mu    sync.Mutex
	buf   *bufio.Writer
	inner ByteWriter
}

// NewBufferedWriter creates a buffered writer over inner. A size of
// zero or less selects the default buffer size.
func NewBufferedWriter(inner ByteWriter, size int) *BufferedWriter {
	if size <= 0 {
		size = defaultBufferSize
	}
	return &BufferedWriter{
		buf:   bufio.NewWriterSize(inner, size),
		inner: inner,
	}
}

func (w *BufferedWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buf.Write(p)
}

// Flush empties the buffer into the inner writer and flushes that too.
func (w *BufferedWriter) Flush() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.buf.Flush(); err != nil {
		return err
	}
	return w.inner.Flush()
}

// Close flushes the buffer and closes the inner writer. The inner
// writer is closed even when the flush fails; the flush error wins.
func (w *BufferedWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	err := w.buf.Flush()
	if cerr := w.inner.Close(); err == nil {
		err = cerr
	}
	return err
}
