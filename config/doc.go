// Package config loads logger configuration from YAML files and
// TEMPLOG_* environment variables and turns it into a ready Logger.
//
// A minimal file:
//
//	format: "{date} {level}: {message}"
//	level: debug
//	output: file
//	file: /var/log/app.log
//	shared: true
//
// Load reads a file and applies environment overrides on top; LoadEnv
// skips the file entirely. Build assembles the writer stack from the
// output options: the sink (stream, plain file, lock-guarded shared
// file, or rolling file), optional in-memory buffering, and optional
// async decoupling.
package config
