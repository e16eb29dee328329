package logger

import (
	"fmt"
	"sync"

	"github.com/templog/templog/core"
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

func init() {
	// Console output with the default format until the application
	// configures something else.
	defaultLogger = NewBuilder().Build()
}

// Default returns the default logger.
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger.
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger. They
// call write directly so {class} and friends resolve to the real call
// site, not to this file.

// Trace logs a message at trace level using the default logger.
func Trace(msg string) {
	l := Default()
	if core.TraceLevel.Enabled(l.level) {
		l.write(core.TraceLevel, msg, baseDepth)
	}
}

// Debug logs a message at debug level using the default logger.
func Debug(msg string) {
	l := Default()
	if core.DebugLevel.Enabled(l.level) {
		l.write(core.DebugLevel, msg, baseDepth)
	}
}

// Info logs a message at info level using the default logger.
func Info(msg string) {
	l := Default()
	if core.InfoLevel.Enabled(l.level) {
		l.write(core.InfoLevel, msg, baseDepth)
	}
}

// Warn logs a message at warn level using the default logger.
func Warn(msg string) {
	l := Default()
	if core.WarnLevel.Enabled(l.level) {
		l.write(core.WarnLevel, msg, baseDepth)
	}
}

// Error logs a message at error level using the default logger.
func Error(msg string) {
	l := Default()
	if core.ErrorLevel.Enabled(l.level) {
		l.write(core.ErrorLevel, msg, baseDepth)
	}
}

// Tracef logs a formatted trace message using the default logger.
func Tracef(format string, args ...interface{}) {
	l := Default()
	if core.TraceLevel.Enabled(l.level) {
		l.write(core.TraceLevel, fmt.Sprintf(format, args...), baseDepth)
	}
}

// Debugf logs a formatted debug message using the default logger.
func Debugf(format string, args ...interface{}) {
	l := Default()
	if core.DebugLevel.Enabled(l.level) {
		l.write(core.DebugLevel, fmt.Sprintf(format, args...), baseDepth)
	}
}

// Infof logs a formatted info message using the default logger.
func Infof(format string, args ...interface{}) {
	l := Default()
	if core.InfoLevel.Enabled(l.level) {
		l.write(core.InfoLevel, fmt.Sprintf(format, args...), baseDepth)
	}
}

// Warnf logs a formatted warning message using the default logger.
func Warnf(format string, args ...interface{}) {
	l := Default()
	if core.WarnLevel.Enabled(l.level) {
		l.write(core.WarnLevel, fmt.Sprintf(format, args...), baseDepth)
	}
}

// Errorf logs a formatted error message using the default logger.
func Errorf(format string, args ...interface{}) {
	l := Default()
	if core.ErrorLevel.Enabled(l.level) {
		l.write(core.ErrorLevel, fmt.Sprintf(format, args...), baseDepth)
	}
}

// WithTag returns a tagged child of the default logger.
func WithTag(tag string) *Logger {
	return Default().WithTag(tag)
}

// WithErr returns a child of the default logger with err attached.
func WithErr(err error) *Logger {
	return Default().WithErr(err)
}

// Flush flushes the default logger.
func Flush() error {
	return Default().Flush()
}
