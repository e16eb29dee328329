package writer

import (
	"bytes"
	"sync"
)

// Interface compliance for every writer in the package.
var (
	_ ByteWriter = (*LockedFileWriter)(nil)
	_ ByteWriter = (*FileWriter)(nil)
	_ ByteWriter = (*StreamWriter)(nil)
	_ ByteWriter = (*BufferedWriter)(nil)
	_ ByteWriter = (*AsyncWriter)(nil)
	_ ByteWriter = (*MultiWriter)(nil)
	_ ByteWriter = (*RollingWriter)(nil)
)

// memWriter is an in-memory ByteWriter that records flush and close
// calls.
type memWriter struct {
	mu      sync.Mutex
	buf     bytes.Buffer
	flushes int
	closes  int
}

func (m *memWriter) Write(p []byte) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.buf.Write(p)
}

func (m *memWriter) Flush() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.flushes++
	return nil
}

func (m *memWriter) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closes++
	return nil
}

func (m *memWriter) String() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.buf.String()
}

func (m *memWriter) Flushes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.flushes
}

func (m *memWriter) Closes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closes
}

// failWriter fails every write with a fixed error.
type failWriter struct {
	err error
}

func (f *failWriter) Write([]byte) (int, error) {
	return 0, f.err
}

func (f *failWriter) Flush() error {
	return nil
}

func (f *failWriter) Close() error {
	return nil
}

// gateWriter parks every write until release is closed and signals
// each attempt on started.
type gateWriter struct {
	memWriter
	started chan struct{}
	release chan struct{}
}

func newGateWriter() *gateWriter {
	return &gateWriter{
		started: make(chan struct{}, 16),
		release: make(chan struct{}),
	}
}

func (g *gateWriter) Write(p []byte) (int, error) {
	g.started <- struct{}{}
	<-g.release
	return g.memWriter.Write(p)
}
