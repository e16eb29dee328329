package core

import "runtime"

// Frame is one resolved frame of a captured stack trace.
type Frame struct {
	Function string
	File     string
	Line     int
}

// maxStackDepth bounds captured traces; anything deeper is cut off
const maxStackDepth = 64

// CaptureStack captures the stack of the calling goroutine, skipping
// skip frames above the caller of CaptureStack. Frames are resolved
// eagerly so the result stays valid after the calling frames return.
func CaptureStack(skip int) []Frame {
	pcs := make([]uintptr, maxStackDepth)
	n := runtime.Callers(skip+2, pcs)
	if n == 0 {
		return nil
	}
	frames := runtime.CallersFrames(pcs[:n])
	out := make([]Frame, 0, n)
	for {
		fr, more := frames.Next()
		out = append(out, Frame{Function: fr.Function, File: fr.File, Line: fr.Line})
		if !more {
			break
		}
	}
	return out
}
