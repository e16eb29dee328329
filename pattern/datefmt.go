package pattern

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// dateFormat is a date pattern compiled into renderable segments.
// Letter runs become Go reference-layout chunks, 'S' runs become
// millisecond digit segments (Go layouts only express fractions after
// a dot), and everything else passes through as literal text. Literal
// text is kept out of the layout chunks so it can never collide with
// reference-layout atoms.
type dateFormat struct {
	segments []dateSegment
}

type segKind uint8

const (
	segLayout segKind = iota
	segLiteral
	segMillis
)

type dateSegment struct {
	kind  segKind
	text  string
	width int
}

// defaultDateFormat backs the plain {date} placeholder and every date
// placeholder whose pattern failed to compile.
var defaultDateFormat = mustCompileDateFormat("yyyy-MM-dd HH:mm:ss")

func mustCompileDateFormat(pattern string) *dateFormat {
	f, err := compileDateFormat(pattern)
	if err != nil {
		panic(err)
	}
	return f
}

// compileDateFormat compiles a date pattern once. Patterns use the
// usual pattern letters (yyyy, MM, dd, HH, mm, ss, SSS, ...) with
// apostrophe quoting; unknown letters and unterminated quotes are
// compile errors.
func compileDateFormat(pattern string) (*dateFormat, error) {
	var segs []dateSegment
	var layout []byte
	flush := func() {
		if len(layout) > 0 {
			segs = append(segs, dateSegment{kind: segLayout, text: string(layout)})
			layout = layout[:0]
		}
	}
	addLiteral := func(s string) {
		if s == "" {
			return
		}
		flush()
		if n := len(segs); n > 0 && segs[n-1].kind == segLiteral {
			segs[n-1].text += s
			return
		}
		segs = append(segs, dateSegment{kind: segLiteral, text: s})
	}

	for i := 0; i < len(pattern); {
		c := pattern[i]
		switch {
		case c == '\'':
			lit, next, err := scanQuoted(pattern, i)
			if err != nil {
				return nil, err
			}
			addLiteral(lit)
			i = next
		case isASCIILetter(c):
			j := i
			for j < len(pattern) && pattern[j] == c {
				j++
			}
			chunk, msWidth, err := layoutFor(c, j-i)
			if err != nil {
				return nil, err
			}
			if msWidth > 0 {
				flush()
				segs = append(segs, dateSegment{kind: segMillis, width: msWidth})
			} else {
				layout = append(layout, chunk...)
			}
			i = j
		default:
			j := i
			for j < len(pattern) && pattern[j] != '\'' && !isASCIILetter(pattern[j]) {
				j++
			}
			addLiteral(pattern[i:j])
			i = j
		}
	}
	flush()
	return &dateFormat{segments: segs}, nil
}

// layoutFor maps one pattern letter run to a Go reference-layout
// chunk, or to a millisecond digit count for 'S'.
func layoutFor(c byte, n int) (chunk string, msWidth int, err error) {
	switch c {
	case 'y':
		if n == 2 {
			return "06", 0, nil
		}
		return "2006", 0, nil
	case 'M':
		switch {
		case n >= 4:
			return "January", 0, nil
		case n == 3:
			return "Jan", 0, nil
		case n == 2:
			return "01", 0, nil
		}
		return "1", 0, nil
	case 'd':
		if n >= 2 {
			return "02", 0, nil
		}
		return "2", 0, nil
	case 'E':
		if n >= 4 {
			return "Monday", 0, nil
		}
		return "Mon", 0, nil
	case 'H':
		return "15", 0, nil
	case 'h':
		if n >= 2 {
			return "03", 0, nil
		}
		return "3", 0, nil
	case 'm':
		if n >= 2 {
			return "04", 0, nil
		}
		return "4", 0, nil
	case 's':
		if n >= 2 {
			return "05", 0, nil
		}
		return "5", 0, nil
	case 'S':
		return "", n, nil
	case 'a':
		return "PM", 0, nil
	case 'z':
		return "MST", 0, nil
	case 'Z':
		return "-0700", 0, nil
	}
	return "", 0, fmt.Errorf("unknown pattern letter %q", string(c))
}

func (f *dateFormat) append(buf *bytes.Buffer, t time.Time) {
	for _, seg := range f.segments {
		switch seg.kind {
		case segLayout:
			buf.WriteString(t.Format(seg.text))
		case segLiteral:
			buf.WriteString(seg.text)
		case segMillis:
			writePaddedInt(buf, t.Nanosecond()/int(time.Millisecond), seg.width)
		}
	}
}

// scanQuoted consumes a quoted literal starting at the apostrophe at
// start. A doubled apostrophe escapes a single one.
func scanQuoted(pattern string, start int) (literal string, next int, err error) {
	if start+1 < len(pattern) && pattern[start+1] == '\'' {
		return "'", start + 2, nil
	}
	var b strings.Builder
	for i := start + 1; i < len(pattern); i++ {
		if pattern[i] == '\'' {
			if i+1 < len(pattern) && pattern[i+1] == '\'' {
				b.WriteByte('\'')
				i++
				continue
			}
			return b.String(), i + 1, nil
		}
		b.WriteByte(pattern[i])
	}
	return "", 0, errors.New("unterminated quote")
}

func isASCIILetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func writePaddedInt(buf *bytes.Buffer, v, width int) {
	s := strconv.Itoa(v)
	for i := len(s); i < width; i++ {
		buf.WriteByte('0')
	}
	buf.WriteString(s)
}
