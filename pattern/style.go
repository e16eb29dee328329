package pattern

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// styleOptions are the post-processing options of one styled region.
// Absent options leave the text alone; sizes count runes, not bytes.
type styleOptions struct {
	minSize   int
	maxSize   int
	indent    int
	hasMin    bool
	hasMax    bool
	hasIndent bool
}

func (o styleOptions) any() bool {
	return o.hasMin || o.hasMax || o.hasIndent
}

// apply transforms rendered text in fixed order: truncation first,
// then padding, then indentation. The order makes min-size and
// max-size commute when both are set to the same value.
func (o styleOptions) apply(s string) string {
	if o.hasMax {
		if r := []rune(s); len(r) > o.maxSize {
			s = string(r[len(r)-o.maxSize:])
		}
	}
	if o.hasMin {
		if n := utf8.RuneCountInString(s); n < o.minSize {
			s += strings.Repeat(" ", o.minSize-n)
		}
	}
	if o.hasIndent && o.indent > 0 {
		s = strings.ReplaceAll(s, "\n", "\n"+strings.Repeat(" ", o.indent))
	}
	return s
}

// parseStyleOptions merges the option groups of one region. Broken
// options are reported and dropped without affecting the others;
// duplicate names keep the last valid value.
func (p *Parser) parseStyleOptions(groups []string) styleOptions {
	var o styleOptions
	for _, group := range groups {
		for _, opt := range strings.Split(group, ",") {
			opt = strings.TrimSpace(opt)
			if opt == "" {
				continue
			}
			name, value, hasValue := strings.Cut(opt, "=")
			name = strings.TrimSpace(name)
			value = strings.TrimSpace(value)
			switch name {
			case "min-size":
				if n, ok := p.styleValue(name, value, hasValue); ok {
					o.minSize, o.hasMin = n, true
				}
			case "max-size":
				if n, ok := p.styleValue(name, value, hasValue); ok {
					o.maxSize, o.hasMax = n, true
				}
			case "size":
				if n, ok := p.styleValue(name, value, hasValue); ok {
					o.minSize, o.hasMin = n, true
					o.maxSize, o.hasMax = n, true
				}
			case "indent":
				if n, ok := p.styleValue(name, value, hasValue); ok {
					o.indent, o.hasIndent = n, true
				}
			default:
				p.errorf("Unknown style option %q", name)
			}
		}
	}
	return o
}

// styleValue validates one option value: present, numeric and
// non-negative.
func (p *Parser) styleValue(name, value string, hasValue bool) (int, bool) {
	if !hasValue {
		p.errorf("Missing value for style option %q", name)
		return 0, false
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		p.errorf("Invalid value for style option %q: %q", name, value)
		return 0, false
	}
	return n, true
}
