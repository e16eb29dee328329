package core

import (
	"bytes"
	"runtime"
	"strconv"
	"time"
)

var startTime = time.Now()

// StartTime returns the moment this package was initialized, which is
// close enough to process start for uptime reporting.
func StartTime() time.Time {
	return startTime
}

var goroutinePrefix = []byte("goroutine ")

// GoroutineID returns the numeric id of the calling goroutine as it
// appears in runtime stack traces. Ids are unique for the life of the
// process. The lookup parses the runtime.Stack header, so it is not
// free; callers should only pay for it when a template asks for thread
// identity.
func GoroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	b := bytes.TrimPrefix(buf[:n], goroutinePrefix)
	i := bytes.IndexByte(b, ' ')
	if i <= 0 {
		return 0
	}
	id, err := strconv.ParseUint(string(b[:i]), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
