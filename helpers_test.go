package crashreport

import (
	"github.com/getsentry/sentry-go"
)

// tracedErr is a chain node carrying a fixed trace.
type tracedErr struct {
	typ    string
	msg    string
	frames []Frame
	cause  error
}

func (e *tracedErr) Error() string { return e.msg }
func (e *tracedErr) TypeName() string { return e.typ }
func (e *tracedErr) Unwrap() error { return e.cause }

func (e *tracedErr) Trace() []Frame {
	if e.frames == nil {
		return nil
	}
	return append([]Frame(nil), e.frames...)
}

// pcErr exposes raw program counters.
type pcErr struct {
	pcs []uintptr
}

func (e *pcErr) Error() string { return "pc error" }
func (e *pcErr) StackTrace() []uintptr { return e.pcs }

// fakeHub records captured events.
type fakeHub struct {
	events []*sentry.Event
	id     sentry.EventID
}

func (h *fakeHub) CaptureEvent(event *sentry.Event) *sentry.EventID {
	h.events = append(h.events, event)
	if h.id == "" {
		return nil
	}
	id := h.id
	return &id
}

func appFrames() []Frame {
	return []Frame{
		{AbsPath: "/usr/local/go/src/runtime/proc.go", Function: "runtime.main", Line: 283},
		{AbsPath: "/src/app/main.go", Function: "main.main", Line: 40},
		{AbsPath: "/src/app/main.go", Function: "main.app", Line: 22},
		{AbsPath: "/go/pkg/mod/github.com/pkg/errors@v0.9.1/errors.go", Function: "github.com/pkg/errors.New", Line: 105},
	}
}
