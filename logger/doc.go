// Package logger is the public API of templog. Most users only need to
// import this package.
//
// A Logger is immutable after construction: the template, the writer
// and the level are set once via the Builder and never modified. This
// makes Logger inherently safe for concurrent use without any locking
// on the read path. WithTag and WithErr return derived instances that
// share the template and writer.
//
// The package initializes a default Logger (stderr, InfoLevel,
// DefaultFormat) in init(). The package-level functions Info, Error,
// Debugf, etc. delegate to this default instance, so simple programs
// can log without any setup:
//
//	logger.Infof("listening on :%d", 8080)
//
// For custom configuration, use the Builder:
//
//	log := logger.NewBuilder().
//	    WithFormat("{date} {level}: {message}").
//	    WithWriter(w).
//	    WithLevel(logger.DebugLevel).
//	    Build()
//
// Entry assembly is driven by the template's required-data analysis.
// A template that never mentions {class} or {file} costs no
// runtime.Caller lookup, and one without {context} takes no snapshot
// of the context store. Level checks happen before any allocation, so
// filtered-out messages cost only a single integer comparison.
//
// SlogHandler adapts a Logger to log/slog for code that already logs
// through the standard structured interface.
package logger
