package writer

import "io"

// ByteWriter is the output contract of the engine: a byte sink with
// explicit flush and close. Write follows io.Writer semantics. The
// atomicity guarantees of the implementations in this package hold per
// Write call, so callers that care about intact lines hand over one
// fully rendered line per call.
type ByteWriter interface {
	io.Writer
	Flush() error
	Close() error
}
