package writer

import (
	"sync"
	"sync/atomic"
	"time"
)

// OverflowPolicy defines how a full async queue treats new writes.
type OverflowPolicy int

const (
	// DropNewest drops the incoming write when the queue is full
	DropNewest OverflowPolicy = iota
	// DropOldest evicts the oldest queued write to make room
	DropOldest
	// Block waits for queue space and falls back to a synchronous
	// write after the block timeout
	Block
)

// String returns the configuration name of the policy
func (p OverflowPolicy) String() string {
	switch p {
	case DropNewest:
		return "drop-newest"
	case DropOldest:
		return "drop-oldest"
	case Block:
		return "block"
	default:
		return "unknown"
	}
}

// AsyncConfig configures an AsyncWriter. The zero value is usable;
// zero fields select the defaults below.
type AsyncConfig struct {
	// QueueSize bounds the number of pending writes (default 1024)
	QueueSize int
	// Policy picks the overflow behavior (default DropNewest)
	Policy OverflowPolicy
	// BlockTimeout caps the wait of the Block policy (default 50ms)
	BlockTimeout time.Duration
	// DrainTimeout caps queue draining on Close (default 5s)
	DrainTimeout time.Duration
}

func (c *AsyncConfig) applyDefaults() {
	if c.QueueSize <= 0 {
		c.QueueSize = 1024
	}
	if c.BlockTimeout <= 0 {
		c.BlockTimeout = 50 * time.Millisecond
	}
	if c.DrainTimeout <= 0 {
		c.DrainTimeout = 5 * time.Second
	}
}

// Stats is a snapshot of an AsyncWriter's counters.
type Stats struct {
	Processed uint64
	Dropped   uint64
	Blocked   uint64
}

// AsyncWriter decouples callers from a slow sink with a bounded queue
// and one background goroutine. Write copies its input and enqueues
// it; the queue's overflow behavior is configurable.
//
// A failed background write poisons the writer: the first error is
// kept and returned by every later Write, Flush and Close, so output
// loss never goes unnoticed.
type AsyncWriter struct {
	inner        ByteWriter
	queue        chan []byte
	flushCh      chan chan error
	closed       chan struct{}
	done         chan struct{}
	closeOnce    sync.Once
	closeErr     error
	policy       OverflowPolicy
	blockTimeout time.Duration
	drainTimeout time.Duration

	processed atomic.Uint64
	dropped   atomic.Uint64
	blocked   atomic.Uint64

	errMu sync.Mutex
	err   error
}

// NewAsyncWriter creates an async writer over inner and starts its
// background goroutine.
func NewAsyncWriter(inner ByteWriter, cfg AsyncConfig) *AsyncWriter {
	cfg.applyDefaults()
	w := &AsyncWriter{
		inner:        inner,
		queue:        make(chan []byte, cfg.QueueSize),
		flushCh:      make(chan chan error),
		closed:       make(chan struct{}),
		done:         make(chan struct{}),
		policy:       cfg.Policy,
		blockTimeout: cfg.BlockTimeout,
		drainTimeout: cfg.DrainTimeout,
	}
	go w.process()
	return w
}

// Write enqueues a copy of p according to the overflow policy. Writes
// dropped by policy report success; they are counted in Stats instead.
func (w *AsyncWriter) Write(p []byte) (int, error) {
	if err := w.asyncErr(); err != nil {
		return 0, err
	}

	buf := make([]byte, len(p))
	copy(buf, p)

	switch w.policy {
	case Block:
		select {
		case w.queue <- buf:
			return len(p), nil
		default:
		}
		timer := time.NewTimer(w.blockTimeout)
		defer timer.Stop()
		select {
		case w.queue <- buf:
			return len(p), nil
		case <-timer.C:
			w.blocked.Add(1)
			return w.inner.Write(p)
		case <-w.closed:
			return w.inner.Write(p)
		}

	case DropOldest:
		select {
		case w.queue <- buf:
			return len(p), nil
		default:
		}
		select {
		case <-w.queue:
			w.dropped.Add(1)
		default:
		}
		select {
		case w.queue <- buf:
			return len(p), nil
		default:
			w.dropped.Add(1)
			return len(p), nil
		}

	default: // DropNewest
		select {
		case w.queue <- buf:
			return len(p), nil
		default:
			w.dropped.Add(1)
			return len(p), nil
		}
	}
}

// Flush waits until everything queued so far has reached the inner
// writer and flushes that too.
func (w *AsyncWriter) Flush() error {
	if err := w.asyncErr(); err != nil {
		return err
	}

	reply := make(chan error, 1)
	select {
	case w.flushCh <- reply:
		return <-reply
	case <-w.done:
		if err := w.asyncErr(); err != nil {
			return err
		}
		return w.inner.Flush()
	}
}

// Close stops the background goroutine, drains the queue within the
// drain timeout, and closes the inner writer. Close is idempotent.
func (w *AsyncWriter) Close() error {
	w.closeOnce.Do(func() {
		close(w.closed)
		<-w.done
		w.closeErr = w.asyncErr()
		if cerr := w.inner.Close(); w.closeErr == nil {
			w.closeErr = cerr
		}
	})
	return w.closeErr
}

// Stats returns a snapshot of the writer's counters.
func (w *AsyncWriter) Stats() Stats {
	return Stats{
		Processed: w.processed.Load(),
		Dropped:   w.dropped.Load(),
		Blocked:   w.blocked.Load(),
	}
}

// process is the background goroutine. It exits when Close asks it to
// or when a write against the inner writer fails.
func (w *AsyncWriter) process() {
	defer close(w.done)

	for {
		select {
		case buf := <-w.queue:
			if !w.consume(buf) {
				return
			}
		case reply := <-w.flushCh:
			w.drainQueue()
			reply <- w.inner.Flush()
		case <-w.closed:
			w.drainDeadline()
			return
		}
	}
}

// consume writes one chunk plus everything already queued behind it,
// batching queue wakeups.
func (w *AsyncWriter) consume(buf []byte) bool {
	if !w.writeOut(buf) {
		return false
	}
	for {
		select {
		case buf := <-w.queue:
			if !w.writeOut(buf) {
				return false
			}
		default:
			return true
		}
	}
}

func (w *AsyncWriter) drainQueue() {
	for {
		select {
		case buf := <-w.queue:
			if !w.writeOut(buf) {
				return
			}
		default:
			return
		}
	}
}

// drainDeadline empties the queue on shutdown, giving up once the
// drain timeout expires.
func (w *AsyncWriter) drainDeadline() {
	deadline := time.After(w.drainTimeout)
	for {
		select {
		case buf := <-w.queue:
			if !w.writeOut(buf) {
				return
			}
		case <-deadline:
			return
		default:
			return
		}
	}
}

func (w *AsyncWriter) writeOut(buf []byte) bool {
	if _, err := w.inner.Write(buf); err != nil {
		w.setErr(err)
		return false
	}
	w.processed.Add(1)
	return true
}

func (w *AsyncWriter) setErr(err error) {
	w.errMu.Lock()
	if w.err == nil {
		w.err = err
	}
	w.errMu.Unlock()
}

func (w *AsyncWriter) asyncErr() error {
	w.errMu.Lock()
	defer w.errMu.Unlock()
	return w.err
}
