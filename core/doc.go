// Package core defines the shared types used across the templog engine.
//
// It provides the Level type for severity filtering and the LogEntry
// type that snapshots a single log event. Entries are immutable from
// the renderer's point of view: the pattern package only ever reads
// them, so one entry can be rendered by several templates at once.
//
// LogEntry objects are pooled via sync.Pool to keep the hot path
// allocation-free. Callers get an entry with GetEntry and must return
// it with PutEntry once the writer has consumed it.
//
// The package also hosts the ambient data sources that placeholders
// draw from: CallSite and CaptureStack resolve call sites and stack
// traces through the runtime, GoroutineID supplies thread identity,
// ContextMap carries mapped diagnostic context, and StartTime anchors
// uptime reporting. All of them are plain functions or small types so
// the facade can swap them out in tests.
package core
