package logger

import (
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/templog/templog/core"
	"github.com/templog/templog/pattern"
	"github.com/templog/templog/writer"
)

// DefaultFormat is the output template used when none is configured.
const DefaultFormat = "{date} [{thread}] {class}.{method}()\n{level}: {message}"

// baseDepth is the number of stack frames between a level method's
// caller and the runtime lookup inside write.
const baseDepth = 2

// maxPooledLine bounds the size of line buffers kept in the pool.
const maxPooledLine = 64 * 1024

// ErrorHandler receives failures from the underlying writer. Rendering
// itself never fails.
type ErrorHandler func(error)

// sharedContext is the process-wide store behind Context().
var sharedContext = core.NewContextMap()

// Context returns the process-wide context store used by loggers that
// were not given their own. Values set here show up in {context}
// placeholders.
func Context() *core.ContextMap {
	return sharedContext
}

// Logger renders entries through a compiled template and appends one
// line per event to a ByteWriter. A Logger is immutable; WithTag and
// WithErr return derived instances sharing the template and writer.
type Logger struct {
	template  *pattern.Template
	writer    writer.ByteWriter
	level     core.Level
	tag       string
	err       error
	context   *core.ContextMap
	clock     core.Clock
	onError   ErrorHandler
	required  pattern.Required
	extraSkip int
}

// Builder provides a fluent API for assembling Logger instances.
type Builder struct {
	template  *pattern.Template
	writer    writer.ByteWriter
	level     core.Level
	tag       string
	context   *core.ContextMap
	clock     core.Clock
	onError   ErrorHandler
	extraSkip int
}

// NewBuilder creates a new logger builder.
func NewBuilder() *Builder {
	return &Builder{
		level: core.InfoLevel,
		clock: time.Now,
	}
}

// WithTemplate sets the compiled output template.
func (b *Builder) WithTemplate(t *pattern.Template) *Builder {
	b.template = t
	return b
}

// WithFormat parses format with a default parser and uses the result
// as the output template.
func (b *Builder) WithFormat(format string) *Builder {
	b.template = pattern.NewParser().Parse(format)
	return b
}

// WithWriter sets the output writer.
func (b *Builder) WithWriter(w writer.ByteWriter) *Builder {
	b.writer = w
	return b
}

// WithLevel sets the minimum level that gets written.
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// WithTag sets the tag rendered by the {tag} placeholder.
func (b *Builder) WithTag(tag string) *Builder {
	b.tag = tag
	return b
}

// WithContext sets the store queried for {context} values.
func (b *Builder) WithContext(m *core.ContextMap) *Builder {
	b.context = m
	return b
}

// WithClock sets the time source for {date}, {timestamp} and {uptime}.
func (b *Builder) WithClock(clock core.Clock) *Builder {
	b.clock = clock
	return b
}

// WithErrorHandler sets the callback invoked when the writer fails.
func (b *Builder) WithErrorHandler(h ErrorHandler) *Builder {
	b.onError = h
	return b
}

// WithCallerSkip adds extra stack frames to skip when resolving
// {class}, {method}, {file} and {line}, for wrappers that put their
// own layer between application code and the logger.
func (b *Builder) WithCallerSkip(extra int) *Builder {
	b.extraSkip = extra
	return b
}

// Build creates the Logger instance. A missing template falls back to
// DefaultFormat and a missing writer to stderr.
func (b *Builder) Build() *Logger {
	t := b.template
	if t == nil {
		t = pattern.NewParser().Parse(DefaultFormat)
	}
	w := b.writer
	if w == nil {
		w = writer.NewStreamWriter(os.Stderr)
	}
	ctx := b.context
	if ctx == nil {
		ctx = sharedContext
	}
	clock := b.clock
	if clock == nil {
		clock = time.Now
	}
	onError := b.onError
	if onError == nil {
		onError = reportToStderr
	}
	return &Logger{
		template:  t,
		writer:    w,
		level:     b.level,
		tag:       b.tag,
		context:   ctx,
		clock:     clock,
		onError:   onError,
		required:  t.Required(),
		extraSkip: b.extraSkip,
	}
}

func reportToStderr(err error) {
	fmt.Fprintf(os.Stderr, "ERROR: writing log entry failed: %v\n", err)
}

// WithTag returns a copy of the logger whose entries carry the given
// tag.
func (l *Logger) WithTag(tag string) *Logger {
	c := *l
	c.tag = tag
	return &c
}

// WithErr returns a copy of the logger that attaches err to every
// entry, feeding the {message} and {exception} placeholders.
func (l *Logger) WithErr(err error) *Logger {
	c := *l
	c.err = err
	return &c
}

// Enabled reports whether a message at the given level would be
// written.
func (l *Logger) Enabled(level core.Level) bool {
	return level.Enabled(l.level)
}

// Log logs a message at an arbitrary level.
func (l *Logger) Log(level core.Level, msg string) {
	if level.Enabled(l.level) {
		l.write(level, msg, baseDepth)
	}
}

// Trace logs a message at trace level.
func (l *Logger) Trace(msg string) {
	if core.TraceLevel.Enabled(l.level) {
		l.write(core.TraceLevel, msg, baseDepth)
	}
}

// Debug logs a message at debug level.
func (l *Logger) Debug(msg string) {
	if core.DebugLevel.Enabled(l.level) {
		l.write(core.DebugLevel, msg, baseDepth)
	}
}

// Info logs a message at info level.
func (l *Logger) Info(msg string) {
	if core.InfoLevel.Enabled(l.level) {
		l.write(core.InfoLevel, msg, baseDepth)
	}
}

// Warn logs a message at warn level.
func (l *Logger) Warn(msg string) {
	if core.WarnLevel.Enabled(l.level) {
		l.write(core.WarnLevel, msg, baseDepth)
	}
}

// Error logs a message at error level.
func (l *Logger) Error(msg string) {
	if core.ErrorLevel.Enabled(l.level) {
		l.write(core.ErrorLevel, msg, baseDepth)
	}
}

// Tracef logs a formatted message at trace level.
func (l *Logger) Tracef(format string, args ...interface{}) {
	if core.TraceLevel.Enabled(l.level) {
		l.write(core.TraceLevel, fmt.Sprintf(format, args...), baseDepth)
	}
}

// Debugf logs a formatted message at debug level.
func (l *Logger) Debugf(format string, args ...interface{}) {
	if core.DebugLevel.Enabled(l.level) {
		l.write(core.DebugLevel, fmt.Sprintf(format, args...), baseDepth)
	}
}

// Infof logs a formatted message at info level.
func (l *Logger) Infof(format string, args ...interface{}) {
	if core.InfoLevel.Enabled(l.level) {
		l.write(core.InfoLevel, fmt.Sprintf(format, args...), baseDepth)
	}
}

// Warnf logs a formatted message at warn level.
func (l *Logger) Warnf(format string, args ...interface{}) {
	if core.WarnLevel.Enabled(l.level) {
		l.write(core.WarnLevel, fmt.Sprintf(format, args...), baseDepth)
	}
}

// Errorf logs a formatted message at error level.
func (l *Logger) Errorf(format string, args ...interface{}) {
	if core.ErrorLevel.Enabled(l.level) {
		l.write(core.ErrorLevel, fmt.Sprintf(format, args...), baseDepth)
	}
}

// write assembles an entry, filling only the fields the template
// actually reads, renders it and hands one complete line to the
// writer. depth is the frame distance to the application call site.
func (l *Logger) write(level core.Level, msg string, depth int) {
	e := core.GetEntry()
	e.Level = level
	e.Message = msg
	e.Tag = l.tag
	e.Err = l.err

	if l.required.Has(pattern.NeedTime) {
		e.Time = l.clock()
	}
	if l.required.Has(pattern.NeedThread) {
		e.ThreadID = core.GoroutineID()
		e.ThreadName = goroutineName(e.ThreadID)
	}
	if l.required.Has(pattern.NeedContext) {
		e.Context = l.context.Snapshot()
	}
	if l.required.Has(pattern.NeedCallSite) {
		e.Class, e.Method, e.File, e.Line = core.CallSite(depth + l.extraSkip)
	}
	if e.Err != nil && l.required.Has(pattern.NeedException) {
		e.Stack = core.CaptureStack(depth + l.extraSkip)
	}

	if err := l.emit(e); err != nil && l.onError != nil {
		l.onError(err)
	}
}

var linePool = sync.Pool{
	New: func() interface{} {
		b := make([]byte, 0, 512)
		return &b
	},
}

// emit renders the entry, appends the line separator and writes. The
// entry is recycled afterwards.
func (l *Logger) emit(e *core.LogEntry) error {
	bp := linePool.Get().(*[]byte)
	buf := l.template.Append((*bp)[:0], e)
	buf = append(buf, '\n')
	_, err := l.writer.Write(buf)
	if cap(buf) <= maxPooledLine {
		*bp = buf
		linePool.Put(bp)
	}
	core.PutEntry(e)
	return err
}

// goroutineName names the calling goroutine for {thread}. The runtime
// numbers goroutines and the first one is the main one.
func goroutineName(id uint64) string {
	if id == 1 {
		return "main"
	}
	return "goroutine-" + strconv.FormatUint(id, 10)
}

// Flush forces buffered output down to the writer.
func (l *Logger) Flush() error {
	return l.writer.Flush()
}

// Close flushes and closes the underlying writer.
func (l *Logger) Close() error {
	return l.writer.Close()
}
