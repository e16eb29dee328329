package writer

import "gopkg.in/natefinch/lumberjack.v2"

// RollingConfig bounds a rolling log file. Zero values keep
// lumberjack's defaults.
type RollingConfig struct {
	// Path of the active log file
	Path string
	// MaxSizeMB triggers rotation once the file exceeds this size
	MaxSizeMB int
	// MaxBackups caps the number of rotated files kept around
	MaxBackups int
	// MaxAgeDays removes rotated files older than this
	MaxAgeDays int
	// Compress gzips rotated files
	Compress bool
}

// RollingWriter appends through lumberjack, which rotates the file by
// size and prunes old backups by count and age. Rotation policy lives
// entirely in lumberjack; the engine itself never decides when to
// roll. Unlike LockedFileWriter, a rolling file must not be shared
// between processes, since each would rotate independently.
type RollingWriter struct {
	lj *lumberjack.Logger
}

// NewRollingWriter creates a rolling writer. The file is created
// lazily on the first write.
func NewRollingWriter(cfg RollingConfig) *RollingWriter {
	return &RollingWriter{
		lj: &lumberjack.Logger{
			Filename:   cfg.Path,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
		},
	}
}

func (w *RollingWriter) Write(p []byte) (int, error) {
	return w.lj.Write(p)
}

// Flush is a no-op; lumberjack writes through to the file on every
// call.
func (w *RollingWriter) Flush() error {
	return nil
}

// Close closes the active file.
func (w *RollingWriter) Close() error {
	return w.lj.Close()
}
