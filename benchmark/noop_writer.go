package benchmark

// discardWriter is a ByteWriter that drops everything, isolating
// engine cost from I/O cost in benchmarks.
type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

func (discardWriter) Flush() error { return nil }

func (discardWriter) Close() error { return nil }
