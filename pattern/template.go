package pattern

import (
	"bytes"
	"sync"

	"github.com/templog/templog/core"
)

// Required is a bitset naming the LogEntry fields a template reads.
// The logging facade consults it to skip capturing expensive data,
// like call sites and stack traces, that the active template never
// renders.
type Required uint16

const (
	NeedTime Required = 1 << iota
	NeedThread
	NeedContext
	NeedCallSite
	NeedTag
	NeedLevel
	NeedMessage
	NeedException
)

// Has reports whether every field in mask is required.
func (r Required) Has(mask Required) bool {
	return r&mask == mask
}

// Template is a compiled format pattern. Templates are immutable and
// safe for concurrent use by any number of goroutines; one template
// can render many entries at once.
type Template struct {
	root     node
	required Required
}

// Required returns the entry fields this template reads.
func (t *Template) Required() Required {
	return t.required
}

// Render evaluates the template against one entry.
func (t *Template) Render(e *core.LogEntry) string {
	buf := getBuffer()
	renderTo(buf, t.root, e)
	s := buf.String()
	putBuffer(buf)
	return s
}

// Append renders the template against one entry and appends the bytes
// to dst.
func (t *Template) Append(dst []byte, e *core.LogEntry) []byte {
	buf := getBuffer()
	renderTo(buf, t.root, e)
	dst = append(dst, buf.Bytes()...)
	putBuffer(buf)
	return dst
}

// requiredOf computes the union of entry fields a subtree reads.
func requiredOf(n node) Required {
	switch v := n.(type) {
	case bundleNode:
		var r Required
		for _, child := range v {
			r |= requiredOf(child)
		}
		return r
	case styledNode:
		return requiredOf(v.child)
	case dateNode, timestampNode, uptimeNode:
		return NeedTime
	case threadNameNode, threadIDNode:
		return NeedThread
	case contextNode, contextAllNode:
		return NeedContext
	case classNode, classNameNode, packageNode, methodNode, fileNode, lineNode:
		return NeedCallSite
	case tagNode:
		return NeedTag
	case levelNode, levelCodeNode:
		return NeedLevel
	case messageNode:
		return NeedMessage | NeedException
	case messageOnlyNode:
		return NeedMessage
	case exceptionNode:
		return NeedException
	}
	return 0
}

// bufferPool recycles render buffers; oversized buffers are dropped so
// one huge entry does not pin memory for the rest of the process.
var bufferPool = sync.Pool{
	New: func() interface{} {
		return new(bytes.Buffer)
	},
}

const maxPooledBuffer = 64 * 1024

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBuffer {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}
