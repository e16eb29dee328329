package core

import (
	"runtime"
	"strings"
	"sync"
	"time"
)

// LogEntry is an immutable snapshot of a single log event. Renderers
// never mutate an entry, so one entry may be rendered by several
// templates concurrently without synchronization.
//
// Fields that are expensive to capture (call site, stack traces) are
// only filled in when the active template actually reads them; the
// required-data analysis in the pattern package tells the facade which
// ones those are.
type LogEntry struct {
	Time       time.Time
	Level      Level
	Tag        string
	Message    string
	Err        error
	Stack      []Frame
	ThreadID   uint64
	ThreadName string
	Class      string
	Method     string
	File       string
	Line       int
	Context    map[string]string
}

// entryPool is a pool of LogEntry objects to reduce allocations
var entryPool = sync.Pool{
	New: func() interface{} {
		return new(LogEntry)
	},
}

// GetEntry retrieves a cleared LogEntry from the pool
func GetEntry() *LogEntry {
	return entryPool.Get().(*LogEntry)
}

// PutEntry returns a LogEntry to the pool. The entry must not be used
// after this call.
func PutEntry(e *LogEntry) {
	if e == nil {
		return
	}
	*e = LogEntry{}
	entryPool.Put(e)
}

// CallSite resolves the call site skip frames above the caller of
// CallSite; skip 0 identifies that caller itself. The fully qualified
// function name is split into its owner and member parts, so
// "github.com/x/pkg.(*T).Do" yields class "github.com/x/pkg.(*T)" and
// method "Do".
func CallSite(skip int) (class, method, file string, line int) {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return "", "", "", 0
	}
	if fn := runtime.FuncForPC(pc); fn != nil {
		class, method = splitQualified(fn.Name())
	}
	return class, method, file, line
}

// ResolvePC resolves a program counter recorded by runtime.Callers
// into the same owner and member split that CallSite produces.
func ResolvePC(pc uintptr) (class, method, file string, line int) {
	if pc == 0 {
		return "", "", "", 0
	}
	frames := runtime.CallersFrames([]uintptr{pc})
	f, _ := frames.Next()
	class, method = splitQualified(f.Function)
	return class, method, f.File, f.Line
}

// splitQualified splits a qualified name at the last dot that comes
// after the last slash, so dots inside import paths stay untouched.
func splitQualified(name string) (owner, member string) {
	slash := strings.LastIndexByte(name, '/')
	if dot := strings.LastIndexByte(name, '.'); dot > slash {
		return name[:dot], name[dot+1:]
	}
	return name, ""
}
