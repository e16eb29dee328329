package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/templog/templog/core"
	"github.com/templog/templog/logger"
	"github.com/templog/templog/pattern"
	"github.com/templog/templog/writer"
)

// Config describes a complete logger setup. Values come from a YAML
// file, from TEMPLOG_* environment variables, or both; environment
// variables win.
type Config struct {
	// Format is the output template. Empty selects
	// logger.DefaultFormat.
	Format string `yaml:"format" env:"TEMPLOG_FORMAT"`

	// Level is the minimum level that gets written: trace, debug,
	// info, warn, error or off.
	Level string `yaml:"level" env:"TEMPLOG_LEVEL" env-default:"info"`

	// Output selects the sink: stdout, stderr or file.
	Output string `yaml:"output" env:"TEMPLOG_OUTPUT" env-default:"stderr"`

	// File is the log file path when output is file.
	File string `yaml:"file" env:"TEMPLOG_FILE"`

	// Shared marks the log file as shared between processes. Writes
	// then take the advisory file lock on every call.
	Shared bool `yaml:"shared" env:"TEMPLOG_SHARED"`

	// Buffered batches output in memory until Flush.
	Buffered bool `yaml:"buffered" env:"TEMPLOG_BUFFERED"`

	// BufferSize is the buffer size in bytes when Buffered is set.
	BufferSize int `yaml:"bufferSize" env:"TEMPLOG_BUFFER_SIZE" env-default:"65536"`

	// Async moves writing to a background goroutine.
	Async bool `yaml:"async" env:"TEMPLOG_ASYNC"`

	// QueueSize is the async queue capacity.
	QueueSize int `yaml:"queueSize" env:"TEMPLOG_QUEUE_SIZE" env-default:"1024"`

	// Overflow selects the async overflow policy: block, drop-newest
	// or drop-oldest.
	Overflow string `yaml:"overflow" env:"TEMPLOG_OVERFLOW" env-default:"block"`

	// Tag is the default tag for the {tag} placeholder.
	Tag string `yaml:"tag" env:"TEMPLOG_TAG"`

	// StripPrefixes elides stack frames with these function prefixes
	// from rendered exceptions.
	StripPrefixes []string `yaml:"stripPrefixes" env:"TEMPLOG_STRIP_PREFIXES"`

	// Rolling enables size-based rotation of the output file.
	Rolling RollingConfig `yaml:"rolling"`
}

// RollingConfig bounds the size and age of the log file set. A rolling
// file must not be shared between processes.
type RollingConfig struct {
	Enabled    bool `yaml:"enabled" env:"TEMPLOG_ROLLING"`
	MaxSizeMB  int  `yaml:"maxSizeMB" env:"TEMPLOG_ROLLING_MAX_SIZE" env-default:"100"`
	MaxBackups int  `yaml:"maxBackups" env:"TEMPLOG_ROLLING_MAX_BACKUPS" env-default:"3"`
	MaxAgeDays int  `yaml:"maxAgeDays" env:"TEMPLOG_ROLLING_MAX_AGE" env-default:"7"`
	Compress   bool `yaml:"compress" env:"TEMPLOG_ROLLING_COMPRESS"`
}

// Load reads configuration from a YAML file, then lets matching
// environment variables override it.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return &cfg, nil
}

// LoadEnv builds configuration from environment variables and tag
// defaults alone.
func LoadEnv() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("reading config from environment: %w", err)
	}
	return &cfg, nil
}

// Build wires a ready Logger from the configuration: the template is
// parsed with the configured strip prefixes and the writer stack is
// assembled from the output options.
func (c *Config) Build() (*logger.Logger, error) {
	level, err := core.ParseLevel(c.Level)
	if err != nil {
		return nil, err
	}

	format := c.Format
	if format == "" {
		format = logger.DefaultFormat
	}
	tmpl := pattern.NewParser(pattern.WithStripPrefixes(c.StripPrefixes...)).Parse(format)

	w, err := c.buildWriter()
	if err != nil {
		return nil, err
	}

	return logger.NewBuilder().
		WithTemplate(tmpl).
		WithWriter(w).
		WithLevel(level).
		WithTag(c.Tag).
		Build(), nil
}

// buildWriter assembles the writer stack bottom-up: sink, then
// optional buffering, then optional async decoupling.
func (c *Config) buildWriter() (writer.ByteWriter, error) {
	var w writer.ByteWriter
	switch c.Output {
	case "stdout":
		w = writer.NewStreamWriter(os.Stdout)
	case "", "stderr":
		w = writer.NewStreamWriter(os.Stderr)
	case "file":
		var err error
		if w, err = c.openFile(); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown output %q", c.Output)
	}

	if c.Buffered {
		w = writer.NewBufferedWriter(w, c.BufferSize)
	}
	if c.Async {
		policy, err := parseOverflow(c.Overflow)
		if err != nil {
			return nil, err
		}
		w = writer.NewAsyncWriter(w, writer.AsyncConfig{
			QueueSize: c.QueueSize,
			Policy:    policy,
		})
	}
	return w, nil
}

func (c *Config) openFile() (writer.ByteWriter, error) {
	if c.File == "" {
		return nil, errors.New("output is file but no file path is configured")
	}
	if c.Shared && c.Rolling.Enabled {
		return nil, errors.New("a rolling file cannot be shared between processes")
	}

	switch {
	case c.Rolling.Enabled:
		return writer.NewRollingWriter(writer.RollingConfig{
			Path:       c.File,
			MaxSizeMB:  c.Rolling.MaxSizeMB,
			MaxBackups: c.Rolling.MaxBackups,
			MaxAgeDays: c.Rolling.MaxAgeDays,
			Compress:   c.Rolling.Compress,
		}), nil
	case c.Shared:
		f, err := os.OpenFile(c.File, os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		return writer.NewLockedFileWriter(f), nil
	default:
		f, err := os.OpenFile(c.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		return writer.NewFileWriter(f), nil
	}
}

func parseOverflow(s string) (writer.OverflowPolicy, error) {
	switch s {
	case "", "block":
		return writer.Block, nil
	case "drop-newest":
		return writer.DropNewest, nil
	case "drop-oldest":
		return writer.DropOldest, nil
	default:
		return 0, fmt.Errorf("unknown overflow policy %q", s)
	}
}
