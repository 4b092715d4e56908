// Package stack resolves program counters into source locations.
package stack

import "runtime"

// Frame is a resolved call site.
type Frame struct {
	File     string
	Function string
	Line     int
}

// Resolve converts return program counters into frames, most recent call
// first. Inlined calls are expanded into their own frames.
func Resolve(pcs []uintptr) []Frame {
	if len(pcs) == 0 {
		return nil
	}

	frames := runtime.CallersFrames(pcs)
	out := make([]Frame, 0, len(pcs))
	for {
		fr, more := frames.Next()
		if fr.PC != 0 || fr.Function != "" {
			out = append(out, Frame{
				File:     fr.File,
				Function: fr.Function,
				Line:     fr.Line,
			})
		}
		if !more {
			break
		}
	}
	return out
}
