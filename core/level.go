package core

import (
	"fmt"
	"strings"
)

// Level represents the severity level of a log entry. The zero value
// turns logging off. Numeric values double as the codes rendered by
// the {level-code} placeholder, so more severe levels carry smaller
// codes.
type Level int8

const (
	// OffLevel disables all output
	OffLevel Level = iota
	// ErrorLevel for errors that require attention
	ErrorLevel
	// WarnLevel for suspicious but tolerable conditions
	WarnLevel
	// InfoLevel for general informational messages (default)
	InfoLevel
	// DebugLevel for detailed debugging information
	DebugLevel
	// TraceLevel for the most fine-grained tracing output
	TraceLevel
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case OffLevel:
		return "OFF"
	case ErrorLevel:
		return "ERROR"
	case WarnLevel:
		return "WARN"
	case InfoLevel:
		return "INFO"
	case DebugLevel:
		return "DEBUG"
	case TraceLevel:
		return "TRACE"
	default:
		return "UNKNOWN"
	}
}

// Code returns the numeric code rendered by the {level-code} placeholder
func (l Level) Code() int {
	return int(l)
}

// Enabled reports whether an entry at level l passes a logger whose
// minimum severity is min. OffLevel never passes and never lets
// anything pass.
func (l Level) Enabled(min Level) bool {
	return l != OffLevel && min != OffLevel && l <= min
}

// ParseLevel converts a level name to a Level. Names are matched
// case-insensitively; WARNING is accepted as an alias for WARN.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "OFF":
		return OffLevel, nil
	case "ERROR":
		return ErrorLevel, nil
	case "WARN", "WARNING":
		return WarnLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "DEBUG":
		return DebugLevel, nil
	case "TRACE":
		return TraceLevel, nil
	}
	return InfoLevel, fmt.Errorf("unknown log level %q", s)
}
