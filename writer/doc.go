// Package writer provides the byte sinks that rendered log lines end
// up in. Everything here implements ByteWriter: io.Writer plus
// explicit Flush and Close.
//
// LockedFileWriter is the centerpiece. It appends to a file that
// several independent processes write at the same time, taking an
// exclusive advisory file lock around every single write call:
//
//	lock -> seek to end -> write -> unlock
//
// With every process writing whole lines through this critical
// section, the shared file never contains torn or interleaved lines.
// The lock is acquired per call rather than per writer, so processes
// come and go freely and a crashed holder's lock dies with it. On
// platforms without advisory locks the writer degrades to in-process
// serialization only.
//
// The remaining types compose around any ByteWriter: FileWriter for
// process-private files, StreamWriter for stdout and stderr,
// BufferedWriter for batching, AsyncWriter for a bounded queue with
// configurable overflow behavior, MultiWriter for fan-out, and
// RollingWriter for size-based rotation via lumberjack.
//
// Writers never swallow errors. Failures surface from Write, Flush and
// Close; AsyncWriter keeps the first background failure and reports it
// on every later call.
package writer
