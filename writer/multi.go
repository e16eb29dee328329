package writer

// MultiWriter fans every write out to several sinks, like logging to a
// file and stderr at once. All sinks see every call even when one of
// them fails; the first error is reported after the rest were
// attempted.
type MultiWriter struct {
	writers []ByteWriter
}

// NewMultiWriter creates a fan-out over the given writers.
func NewMultiWriter(writers ...ByteWriter) *MultiWriter {
	return &MultiWriter{writers: writers}
}

func (m *MultiWriter) Write(p []byte) (int, error) {
	var first error
	for _, w := range m.writers {
		if _, err := w.Write(p); err != nil && first == nil {
			first = err
		}
	}
	if first != nil {
		return 0, first
	}
	return len(p), nil
}

func (m *MultiWriter) Flush() error {
	var first error
	for _, w := range m.writers {
		if err := w.Flush(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (m *MultiWriter) Close() error {
	var first error
	for _, w := range m.writers {
		if err := w.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
