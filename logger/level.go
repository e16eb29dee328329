package logger

import "github.com/templog/templog/core"

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	OffLevel   = core.OffLevel
	ErrorLevel = core.ErrorLevel
	WarnLevel  = core.WarnLevel
	InfoLevel  = core.InfoLevel
	DebugLevel = core.DebugLevel
	TraceLevel = core.TraceLevel
)

// ParseLevel converts a string to a Level. Unknown names select
// InfoLevel so a typo in configuration never silences a service.
func ParseLevel(s string) Level {
	if l, err := core.ParseLevel(s); err == nil {
		return l
	}
	return InfoLevel
}
