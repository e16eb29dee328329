package pattern

import "time"

// node is one element of a compiled template tree. Nodes are immutable
// after construction; rendering and required-data analysis dispatch
// over the concrete types with a type switch, so adding a placeholder
// never touches existing node code.
type node interface {
	isNode()
}

// literalNode renders fixed text byte for byte.
type literalNode string

// bundleNode renders its children in order.
type bundleNode []node

// styledNode post-processes the rendered text of its child.
type styledNode struct {
	child node
	opts  styleOptions
}

type dateNode struct {
	format *dateFormat
}

type timestampNode struct {
	millis bool
}

type uptimeNode struct {
	format *spanFormat
	start  time.Time
}

type pidNode struct{}

type threadNameNode struct{}

type threadIDNode struct{}

// contextNode renders one context value, or its fallback when the key
// is absent.
type contextNode struct {
	key      string
	fallback string
}

// contextAllNode renders every context pair sorted by key.
type contextAllNode struct{}

// emptyNode renders nothing; it stands in for placeholders that were
// reported as broken at parse time.
type emptyNode struct{}

type classNode struct{}

type classNameNode struct{}

type packageNode struct{}

type methodNode struct{}

type fileNode struct{}

type lineNode struct{}

type tagNode struct {
	fallback string
}

type levelNode struct{}

type levelCodeNode struct{}

type messageNode struct {
	strip []string
}

type messageOnlyNode struct{}

type exceptionNode struct {
	strip []string
}

func (literalNode) isNode()     {}
func (bundleNode) isNode()      {}
func (styledNode) isNode()      {}
func (dateNode) isNode()        {}
func (timestampNode) isNode()   {}
func (uptimeNode) isNode()      {}
func (pidNode) isNode()         {}
func (threadNameNode) isNode()  {}
func (threadIDNode) isNode()    {}
func (contextNode) isNode()     {}
func (contextAllNode) isNode()  {}
func (emptyNode) isNode()       {}
func (classNode) isNode()       {}
func (classNameNode) isNode()   {}
func (packageNode) isNode()     {}
func (methodNode) isNode()      {}
func (fileNode) isNode()        {}
func (lineNode) isNode()        {}
func (tagNode) isNode()         {}
func (levelNode) isNode()       {}
func (levelCodeNode) isNode()   {}
func (messageNode) isNode()     {}
func (messageOnlyNode) isNode() {}
func (exceptionNode) isNode()   {}
