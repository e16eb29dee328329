package logger

import (
	"context"
	"log/slog"

	"github.com/templog/templog/core"
	"github.com/templog/templog/pattern"
)

// SlogHandler adapts a Logger to the log/slog Handler interface, so
// code that logs through slog can write through the template engine.
// Attributes become context values for the {context} placeholder; an
// attribute whose value is an error attaches it to the entry instead.
type SlogHandler struct {
	logger *Logger
	attrs  map[string]string
	group  string
}

// NewSlogHandler creates a slog.Handler that writes through l.
func NewSlogHandler(l *Logger) *SlogHandler {
	return &SlogHandler{logger: l}
}

// Enabled reports whether records at the given level get written.
func (h *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return slogLevel(level).Enabled(h.logger.level)
}

// Handle converts the record into an entry and writes it.
func (h *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	l := h.logger
	level := slogLevel(record.Level)
	if !level.Enabled(l.level) {
		return nil
	}

	e := core.GetEntry()
	e.Level = level
	e.Message = record.Message
	e.Tag = l.tag
	e.Err = l.err

	if l.required.Has(pattern.NeedTime) {
		e.Time = record.Time
		if e.Time.IsZero() {
			e.Time = l.clock()
		}
	}
	if l.required.Has(pattern.NeedThread) {
		e.ThreadID = core.GoroutineID()
		e.ThreadName = goroutineName(e.ThreadID)
	}

	wantContext := l.required.Has(pattern.NeedContext)
	var ctx map[string]string
	if wantContext {
		ctx = l.context.Snapshot()
		for k, v := range h.attrs {
			if ctx == nil {
				ctx = make(map[string]string, len(h.attrs))
			}
			ctx[k] = v
		}
	}
	record.Attrs(func(a slog.Attr) bool {
		if err, ok := a.Value.Resolve().Any().(error); ok && e.Err == nil {
			e.Err = err
			return true
		}
		if wantContext {
			if ctx == nil {
				ctx = make(map[string]string, record.NumAttrs())
			}
			addAttr(ctx, h.group, a)
		}
		return true
	})
	e.Context = ctx

	if l.required.Has(pattern.NeedCallSite) {
		e.Class, e.Method, e.File, e.Line = core.ResolvePC(record.PC)
	}

	return l.emit(e)
}

// WithAttrs returns a handler whose future records carry the given
// attributes.
func (h *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	merged := make(map[string]string, len(h.attrs)+len(attrs))
	for k, v := range h.attrs {
		merged[k] = v
	}
	for _, a := range attrs {
		addAttr(merged, h.group, a)
	}
	return &SlogHandler{logger: h.logger, attrs: merged, group: h.group}
}

// WithGroup returns a handler that prefixes later attribute keys with
// the group name.
func (h *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	group := name
	if h.group != "" {
		group = h.group + "." + name
	}
	return &SlogHandler{logger: h.logger, attrs: h.attrs, group: group}
}

// addAttr flattens one attribute into dst, dotting group prefixes the
// way nested slog groups nest.
func addAttr(dst map[string]string, group string, a slog.Attr) {
	key := a.Key
	if group != "" {
		key = group + "." + a.Key
	}
	v := a.Value.Resolve()
	if v.Kind() == slog.KindGroup {
		for _, ga := range v.Group() {
			addAttr(dst, key, ga)
		}
		return
	}
	dst[key] = v.String()
}

// slogLevel maps slog levels onto the engine's scale.
func slogLevel(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	case level >= slog.LevelDebug:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}
