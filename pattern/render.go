package pattern

import (
	"bytes"
	"errors"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/templog/templog/core"
)

var processID = os.Getpid()

// renderTo evaluates one node against an entry. Dispatch is a type
// switch over the closed node set; it never mutates the entry or the
// node, so rendering is safe from any number of goroutines.
func renderTo(buf *bytes.Buffer, n node, e *core.LogEntry) {
	switch v := n.(type) {
	case literalNode:
		buf.WriteString(string(v))
	case bundleNode:
		for _, child := range v {
			renderTo(buf, child, e)
		}
	case styledNode:
		sub := getBuffer()
		renderTo(sub, v.child, e)
		buf.WriteString(v.opts.apply(sub.String()))
		putBuffer(sub)
	case dateNode:
		v.format.append(buf, e.Time)
	case timestampNode:
		if v.millis {
			buf.WriteString(strconv.FormatInt(e.Time.UnixMilli(), 10))
		} else {
			buf.WriteString(strconv.FormatInt(e.Time.Unix(), 10))
		}
	case uptimeNode:
		v.format.append(buf, e.Time.Sub(v.start))
	case pidNode:
		buf.WriteString(strconv.Itoa(processID))
	case threadNameNode:
		buf.WriteString(e.ThreadName)
	case threadIDNode:
		buf.WriteString(strconv.FormatUint(e.ThreadID, 10))
	case contextNode:
		if val, ok := e.Context[v.key]; ok {
			buf.WriteString(val)
		} else {
			buf.WriteString(v.fallback)
		}
	case contextAllNode:
		writeContextAll(buf, e.Context)
	case emptyNode:
	case classNode:
		buf.WriteString(e.Class)
	case classNameNode:
		buf.WriteString(simpleClassName(e.Class))
	case packageNode:
		buf.WriteString(packageOf(e.Class))
	case methodNode:
		buf.WriteString(e.Method)
	case fileNode:
		buf.WriteString(e.File)
	case lineNode:
		buf.WriteString(strconv.Itoa(e.Line))
	case tagNode:
		if e.Tag != "" {
			buf.WriteString(e.Tag)
		} else {
			buf.WriteString(v.fallback)
		}
	case levelNode:
		buf.WriteString(e.Level.String())
	case levelCodeNode:
		buf.WriteString(strconv.Itoa(e.Level.Code()))
	case messageNode:
		writeMessage(buf, e, v.strip)
	case messageOnlyNode:
		buf.WriteString(e.Message)
	case exceptionNode:
		writeException(buf, e, v.strip)
	}
}

// writeContextAll renders every context pair sorted by key, so output
// is stable regardless of map iteration order.
func writeContextAll(buf *bytes.Buffer, ctx map[string]string) {
	if len(ctx) == 0 {
		return
	}
	keys := make([]string, 0, len(ctx))
	for k := range ctx {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for i, k := range keys {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(k)
		buf.WriteByte('=')
		buf.WriteString(ctx[k])
	}
}

// simpleClassName returns the part after the last dot that follows the
// last slash, or the last path segment for dot-free owners, so both
// "my.package.MyClass" and "github.com/x/pkg" shorten sensibly.
func simpleClassName(class string) string {
	slash := strings.LastIndexByte(class, '/')
	if dot := strings.LastIndexByte(class, '.'); dot > slash {
		return class[dot+1:]
	}
	if slash >= 0 {
		return class[slash+1:]
	}
	return class
}

// packageOf is the counterpart of simpleClassName: everything before
// the split point.
func packageOf(class string) string {
	slash := strings.LastIndexByte(class, '/')
	if dot := strings.LastIndexByte(class, '.'); dot > slash {
		return class[:dot]
	}
	if slash >= 0 {
		return class[:slash]
	}
	return ""
}

// writeMessage renders the message and, when an error is attached, the
// error chain separated from it by ": ".
func writeMessage(buf *bytes.Buffer, e *core.LogEntry, strip []string) {
	if e.Message != "" {
		buf.WriteString(e.Message)
		if e.Err != nil {
			buf.WriteString(": ")
		}
	}
	if e.Err != nil {
		writeException(buf, e, strip)
	}
}

// writeException renders the error text, the captured stack with
// stripped frames elided, and the unwrapped cause chain.
func writeException(buf *bytes.Buffer, e *core.LogEntry, strip []string) {
	if e.Err == nil {
		return
	}
	buf.WriteString(e.Err.Error())
	for _, f := range e.Stack {
		if stripFrame(f.Function, strip) {
			continue
		}
		buf.WriteString("\n\tat ")
		buf.WriteString(f.Function)
		buf.WriteString(" (")
		buf.WriteString(f.File)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(f.Line))
		buf.WriteByte(')')
	}
	for cause := errors.Unwrap(e.Err); cause != nil; cause = errors.Unwrap(cause) {
		buf.WriteString("\nCaused by: ")
		buf.WriteString(cause.Error())
	}
}

func stripFrame(function string, strip []string) bool {
	for _, prefix := range strip {
		if strings.HasPrefix(function, prefix) {
			return true
		}
	}
	return false
}
