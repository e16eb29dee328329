package pattern

import (
	"bytes"
	"fmt"
	"time"
)

// spanFormat is a timespan pattern compiled for the uptime
// placeholder. Supported letters: d (days), H (hours), m (minutes),
// s (seconds), S (milliseconds); run length sets the zero-padding
// width. The largest unit present absorbs everything above it instead
// of wrapping, so 26 hours with "HH:mm" renders as "26:00".
type spanFormat struct {
	segments []spanSegment
	largest  byte
}

type spanSegment struct {
	unit  byte // 'd', 'H', 'm', 's' or 'S'; 0 for literal text
	width int
	text  string
}

var spanRank = map[byte]int{'d': 4, 'H': 3, 'm': 2, 's': 1, 'S': 0}

// defaultSpanFormat backs the plain {uptime} placeholder and every
// uptime placeholder whose pattern failed to compile.
var defaultSpanFormat = mustCompileSpanFormat("HH:mm:ss")

func mustCompileSpanFormat(pattern string) *spanFormat {
	f, err := compileSpanFormat(pattern)
	if err != nil {
		panic(err)
	}
	return f
}

func compileSpanFormat(pattern string) (*spanFormat, error) {
	f := &spanFormat{}
	addLiteral := func(s string) {
		if s == "" {
			return
		}
		if n := len(f.segments); n > 0 && f.segments[n-1].unit == 0 {
			f.segments[n-1].text += s
			return
		}
		f.segments = append(f.segments, spanSegment{text: s})
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
			rank, ok := spanRank[c]
			if !ok {
				return nil, fmt.Errorf("unknown pattern letter %q", string(c))
			}
			j := i
			for j < len(pattern) && pattern[j] == c {
				j++
			}
			f.segments = append(f.segments, spanSegment{unit: c, width: j - i})
			if f.largest == 0 || rank > spanRank[f.largest] {
				f.largest = c
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
	return f, nil
}

func (f *spanFormat) append(buf *bytes.Buffer, d time.Duration) {
	if d < 0 {
		d = 0
	}
	for _, seg := range f.segments {
		if seg.unit == 0 {
			buf.WriteString(seg.text)
			continue
		}
		writePaddedInt(buf, f.component(d, seg.unit), seg.width)
	}
}

// component extracts one unit's value; the largest unit of the format
// keeps the full count instead of wrapping at the next unit up.
func (f *spanFormat) component(d time.Duration, unit byte) int {
	switch unit {
	case 'd':
		return int(d / (24 * time.Hour))
	case 'H':
		if unit == f.largest {
			return int(d / time.Hour)
		}
		return int(d/time.Hour) % 24
	case 'm':
		if unit == f.largest {
			return int(d / time.Minute)
		}
		return int(d/time.Minute) % 60
	case 's':
		if unit == f.largest {
			return int(d / time.Second)
		}
		return int(d/time.Second) % 60
	default: // 'S'
		if unit == f.largest {
			return int(d / time.Millisecond)
		}
		return int(d/time.Millisecond) % 1000
	}
}
