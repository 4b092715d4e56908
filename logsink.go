package crashreport

import (
	"io"
	"strconv"
	"strings"

	colorable "github.com/mattn/go-colorable"
)

// LogSink renders records as a single text block on a local writer.
type LogSink struct {
	w      io.Writer
	filter FrameFilter
}

// NewLogSink creates a LogSink writing to w. A nil writer means stdout.
// The filter's path exclusions hide frames; cutting is left to the caller.
func NewLogSink(w io.Writer, filter FrameFilter) *LogSink {
	if w == nil {
		w = colorable.NewColorableStdout()
	}
	return &LogSink{w: w, filter: filter}
}

// Render formats records, outermost error first.
//
// Each record becomes " -> TYPE", followed by " VALUE" when present. A
// record with a trace adds one "\nPATH:LINE FUNCTION COLUMN|" per frame
// that is not excluded and a closing newline.
func (s *LogSink) Render(records []ExceptionRecord) string {
	var b strings.Builder
	for _, r := range records {
		b.WriteString(" -> ")
		b.WriteString(r.Type)
		if r.Value != "" {
			b.WriteString(" ")
			b.WriteString(r.Value)
		}
		if r.Stacktrace == nil {
			continue
		}
		for _, f := range r.Stacktrace.Frames {
			if s.filter.Excluded(f) {
				continue
			}
			b.WriteString("\n")
			b.WriteString(f.AbsPath)
			b.WriteString(":")
			b.WriteString(strconv.Itoa(f.Line))
			b.WriteString(" ")
			b.WriteString(f.Function)
			b.WriteString(" ")
			b.WriteString(strconv.Itoa(f.Column))
			b.WriteString("|")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Report writes the rendered records terminated by exactly one newline.
// A render that already ends with a frame block is written as is.
// Write errors are ignored.
func (s *LogSink) Report(records []ExceptionRecord) {
	out := s.Render(records)
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	_, _ = io.WriteString(s.w, out)
}
