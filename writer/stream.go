package writer

import (
	"io"
	"sync"
)

// StreamWriter adapts any io.Writer, typically stdout or stderr, to
// the ByteWriter contract. Close flushes but leaves the underlying
// stream open; its lifecycle belongs to the caller.
type StreamWriter struct {
	mu  sync.Mutex
	out io.Writer
}

// NewStreamWriter creates a writer over out.
func NewStreamWriter(out io.Writer) *StreamWriter {
	return &StreamWriter{out: out}
}

func (w *StreamWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.out.Write(p)
}

// Flush delegates to the stream when it knows how to flush; plain
// streams have nothing buffered here.
func (w *StreamWriter) Flush() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if f, ok := w.out.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

// Close flushes. The stream itself stays open.
func (w *StreamWriter) Close() error {
	return w.Flush()
}
