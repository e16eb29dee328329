package writer

import (
	"os"
	"sync"
)

// FileWriter appends to a file owned by this process alone. It skips
// the cross-process lock of LockedFileWriter and only serializes the
// goroutines sharing it, which makes it the cheaper choice when no
// other process touches the file.
type FileWriter struct {
	mu   sync.Mutex
	file *os.File
}

// NewFileWriter creates a writer on an already-open file. The file
// should be opened with O_APPEND so the position advances on its own.
func NewFileWriter(file *os.File) *FileWriter {
	return &FileWriter{file: file}
}

func (w *FileWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.file.Write(p)
}

// Flush forces written bytes to stable storage.
func (w *FileWriter) Flush() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.file.Sync()
}

// Close flushes and closes the file.
func (w *FileWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	err := w.file.Sync()
	if cerr := w.file.Close(); err == nil {
		err = cerr
	}
	return err
}
