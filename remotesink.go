package crashreport

import (
	"path/filepath"

	"github.com/getsentry/sentry-go"
)

// Hub submits events to a crash-tracking backend.
// *sentry.Hub satisfies it.
type Hub interface {
	CaptureEvent(event *sentry.Event) *sentry.EventID
}

// RemoteSink converts records into a Sentry event and submits it.
type RemoteSink struct {
	hub    Hub
	filter FrameFilter
}

// NewRemoteSink creates a RemoteSink submitting through hub.
// Frames matched by the filter's exclusions are marked as not in-app;
// they are still sent.
func NewRemoteSink(hub Hub, filter FrameFilter) *RemoteSink {
	return &RemoteSink{hub: hub, filter: filter}
}

// BuildEvent returns an error-level event holding one exception per record,
// in the order given.
func (s *RemoteSink) BuildEvent(records []ExceptionRecord) *sentry.Event {
	event := sentry.NewEvent()
	event.Level = sentry.LevelError
	event.Exception = make([]sentry.Exception, 0, len(records))
	for _, r := range records {
		event.Exception = append(event.Exception, sentry.Exception{
			Type:       r.Type,
			Value:      r.Value,
			Stacktrace: s.stacktrace(r.Stacktrace),
		})
	}
	return event
}

func (s *RemoteSink) stacktrace(st *Stacktrace) *sentry.Stacktrace {
	if st == nil {
		return nil
	}
	frames := make([]sentry.Frame, 0, len(st.Frames))
	for _, f := range st.Frames {
		frame := sentry.Frame{
			Function: f.Function,
			AbsPath:  f.AbsPath,
			Lineno:   f.Line,
			Colno:    f.Column,
			InApp:    !s.filter.Excluded(f),
		}
		if f.AbsPath != "" {
			frame.Filename = filepath.Base(f.AbsPath)
		}
		frames = append(frames, frame)
	}
	return &sentry.Stacktrace{Frames: frames}
}

// Report builds an event from records and hands it to the hub. Delivery is
// the hub's concern; the returned id is nil when the hub dropped the event
// or no hub is configured.
func (s *RemoteSink) Report(records []ExceptionRecord) *sentry.EventID {
	if s.hub == nil {
		return nil
	}
	return s.hub.CaptureEvent(s.BuildEvent(records))
}
