package core

import (
	"sync"
	"sync/atomic"
	"time"
)

// Clock supplies entry timestamps.
type Clock func() time.Time

var coarse struct {
	once sync.Once
	now  atomic.Pointer[time.Time]
}

// CoarseClock returns a Clock backed by a timestamp that a background
// goroutine refreshes every 500µs. Reading it costs a single atomic
// load, which suits hot logging paths that tolerate sub-millisecond
// skew. The refresh goroutine is started on first use and runs for the
// lifetime of the process; logging typically spans the whole
// application, so it is never stopped.
func CoarseClock() Clock {
	coarse.once.Do(func() {
		t := time.Now()
		coarse.now.Store(&t)
		go func() {
			ticker := time.NewTicker(500 * time.Microsecond)
			for range ticker.C {
				t := time.Now()
				coarse.now.Store(&t)
			}
		}()
	})
	return func() time.Time {
		return *coarse.now.Load()
	}
}
