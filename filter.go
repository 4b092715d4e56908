package crashreport

import "strings"

// FrameFilter decides which frames of a trace are shown.
//
// Cut drops the frames before the first application frame, identified by a
// function-name prefix. Excluded hides individual frames by path when a
// trace is rendered as text.
type FrameFilter struct {
	// EntryMarker is the function-name prefix of the first application frame.
	// An empty marker disables cutting.
	EntryMarker string

	// ExcludePaths lists path substrings of frames that are never rendered.
	ExcludePaths []string
}

// Cut returns frames starting at the first frame whose function begins with
// EntryMarker. If no frame matches, frames is returned unchanged so a trace
// is never emptied by a filter miss.
func (f FrameFilter) Cut(frames []Frame) []Frame {
	if f.EntryMarker == "" {
		return frames
	}
	for i, fr := range frames {
		if strings.HasPrefix(fr.Function, f.EntryMarker) {
			return frames[i:]
		}
	}
	return frames
}

// Excluded reports whether the frame's path contains one of ExcludePaths.
func (f FrameFilter) Excluded(fr Frame) bool {
	for _, p := range f.ExcludePaths {
		if p != "" && strings.Contains(fr.AbsPath, p) {
			return true
		}
	}
	return false
}

// Apply cuts the trace of every record in place.
// Deduplicate must run first: it compares the untrimmed traces.
func (f FrameFilter) Apply(records []ExceptionRecord) {
	for i := range records {
		st := records[i].Stacktrace
		if st == nil {
			continue
		}
		records[i].Stacktrace = &Stacktrace{Frames: f.Cut(st.Frames)}
	}
}
