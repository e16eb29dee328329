package pattern

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/templog/templog/core"
)

// Parser compiles template strings into Templates. Compiled templates
// do not reference the parser and may outlive it.
//
// Parsing never fails. Structural problems and broken placeholder
// arguments are reported once each through the diagnostics writer, and
// the offending part degrades to literal text or a built-in default,
// so a misconfigured template still produces output instead of taking
// the logging pipeline down.
type Parser struct {
	strip []string
	diag  io.Writer
	start time.Time
}

// Option configures a Parser.
type Option func(*Parser)

// WithStripPrefixes elides stack frames whose function name starts
// with one of the given prefixes from rendered exceptions.
func WithStripPrefixes(prefixes ...string) Option {
	return func(p *Parser) {
		p.strip = append(p.strip, prefixes...)
	}
}

// WithDiagnostics redirects parse diagnostics, which go to os.Stderr
// by default.
func WithDiagnostics(w io.Writer) Option {
	return func(p *Parser) {
		p.diag = w
	}
}

// WithStartTime overrides the process start time that anchors the
// uptime placeholder.
func WithStartTime(t time.Time) Option {
	return func(p *Parser) {
		p.start = t
	}
}

// NewParser creates a Parser.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		diag:  os.Stderr,
		start: core.StartTime(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// errorf reports one recoverable template problem.
func (p *Parser) errorf(format string, args ...interface{}) {
	fmt.Fprintf(p.diag, "ERROR: "+format+"\n", args...)
}

// Parse compiles a template. The returned Template is immutable and
// safe for concurrent use.
func (p *Parser) Parse(template string) *Template {
	root := p.parsePattern(template)
	return &Template{root: root, required: requiredOf(root)}
}

// parsePattern scans text left to right at depth zero, resolving the
// segments between regions and recursing into the regions themselves.
func (p *Parser) parsePattern(text string) node {
	var nodes []node
	start := 0
	depth := 0
	regionStart := -1

	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '{':
			if depth == 0 {
				if i > start {
					nodes = append(nodes, p.resolve(text[start:i]))
				}
				regionStart = i + 1
			}
			depth++
		case '}':
			if depth == 0 {
				p.errorf("Opening curly bracket is missing: %q", text)
				return literalNode(text)
			}
			depth--
			if depth == 0 {
				nodes = append(nodes, p.parseRegion(text[regionStart:i]))
				start = i + 1
			}
		}
	}

	if depth > 0 {
		p.errorf("Closing curly bracket is missing: %q", text[regionStart-1:])
		nodes = append(nodes, literalNode(text[regionStart-1:]))
	} else if start < len(text) {
		nodes = append(nodes, p.resolve(text[start:]))
	}

	switch len(nodes) {
	case 0:
		return literalNode("")
	case 1:
		return nodes[0]
	}
	return bundleNode(nodes)
}

// parseRegion compiles the content between one pair of braces. Style
// option groups split off at depth-zero pipes and apply to the whole
// body, whether that is a single placeholder or a nested sub-pattern.
func (p *Parser) parseRegion(content string) node {
	body := content
	var groups []string
	depth := 0
	cut := -1
	for i := 0; i < len(content); i++ {
		switch content[i] {
		case '{':
			depth++
		case '}':
			depth--
		case '|':
			if depth == 0 {
				if cut < 0 {
					body = content[:i]
				} else {
					groups = append(groups, content[cut:i])
				}
				cut = i + 1
			}
		}
	}
	if cut >= 0 {
		groups = append(groups, content[cut:])
	}

	var n node
	if strings.IndexByte(body, '{') >= 0 {
		n = p.parsePattern(body)
	} else {
		n = p.resolve(body)
	}

	if opts := p.parseStyleOptions(groups); opts.any() {
		return styledNode{child: n, opts: opts}
	}
	return n
}

// resolve interprets one brace-free segment. Known names build
// placeholders, anything else stays verbatim literal text.
func (p *Parser) resolve(text string) node {
	name, arg, hasArg := strings.Cut(text, ":")
	if factory, ok := tokenTable[strings.TrimSpace(name)]; ok {
		return factory(p, strings.TrimSpace(arg), hasArg)
	}
	return literalNode(text)
}
