package writer

import (
	"io"
	"os"
	"sync"
)

// LockedFileWriter appends to a file that other processes append to at
// the same time. Every Write takes an exclusive advisory lock on the
// file, seeks to the end, writes, and releases the lock, so bytes from
// one call never interleave with bytes written by other processes. A
// process-local mutex additionally serializes goroutines sharing this
// writer, which the OS lock alone would not do.
//
// The file handle is supplied by the caller and must be open for
// writing; opening, permissions and rotation stay outside this type.
type LockedFileWriter struct {
	mu   sync.Mutex
	file *os.File
}

// NewLockedFileWriter creates a writer on an already-open file.
func NewLockedFileWriter(file *os.File) *LockedFileWriter {
	return &LockedFileWriter{file: file}
}

// Write appends p at the current end of the file under the file lock.
// The end is re-sought on every call because other processes may have
// grown the file since the last write.
func (w *LockedFileWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := lockFile(w.file); err != nil {
		return 0, err
	}
	n, err := w.append(p)
	if uerr := unlockFile(w.file); err == nil {
		err = uerr
	}
	return n, err
}

func (w *LockedFileWriter) append(p []byte) (int, error) {
	if _, err := w.file.Seek(0, io.SeekEnd); err != nil {
		return 0, err
	}
	return w.file.Write(p)
}

// Flush forces written bytes to stable storage. No file lock is held
// for this; syncing only affects data this process already wrote.
func (w *LockedFileWriter) Flush() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.file.Sync()
}

// Close flushes and closes the file.
func (w *LockedFileWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	err := w.file.Sync()
	if cerr := w.file.Close(); err == nil {
		err = cerr
	}
	return err
}
