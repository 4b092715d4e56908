package crashreport

import (
	"reflect"

	"github.com/jmgilman/go/errors"
	pkgerrors "github.com/pkg/errors"

	"github.com/jmgilman/go/crashreport/internal/stack"
)

// TypeNamer can be implemented by errors to choose their record type label.
type TypeNamer interface {
	TypeName() string
}

// Tracer can be implemented by errors that carry their own stack trace.
// Frames must be ordered oldest call first.
type Tracer interface {
	Trace() []Frame
}

// pkgStackTracer matches errors created by github.com/pkg/errors.
type pkgStackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// pcStackTracer matches errors that expose raw return program counters.
type pcStackTracer interface {
	StackTrace() []uintptr
}

// Flatten walks err's chain from the outermost error to the root cause and
// returns one record per node, in that order.
//
// Each record holds the node's raw stack trace, unfiltered. A node without a
// trace yields a record with a nil Stacktrace. Flatten returns nil for a nil
// error and never fails.
//
// A typed nil pointer in the chain ends traversal with a record valued
// "<nil>", since none of its methods can be called safely.
func Flatten(err error) []ExceptionRecord {
	var records []ExceptionRecord
	for node := err; node != nil; node = nextCause(node) {
		if isNilPointer(node) {
			records = append(records, ExceptionRecord{
				Type:  reflect.TypeOf(node).String(),
				Value: "<nil>",
			})
			break
		}
		records = append(records, ExceptionRecord{
			Type:       typeName(node),
			Value:      displayValue(node),
			Stacktrace: rawTrace(node),
		})
	}
	return records
}

func isNilPointer(err error) bool {
	v := reflect.ValueOf(err)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// nextCause returns the node following err in the chain.
// For multi-errors traversal continues with the first non-nil child.
func nextCause(err error) error {
	switch u := err.(type) {
	case interface{ Unwrap() error }:
		return u.Unwrap()
	case interface{ Unwrap() []error }:
		for _, child := range u.Unwrap() {
			if child != nil {
				return child
			}
		}
	}
	return nil
}

func typeName(err error) string {
	switch e := err.(type) {
	case TypeNamer:
		return e.TypeName()
	case errors.PlatformError:
		return string(e.Code())
	}
	return reflect.TypeOf(err).String()
}

// displayValue returns the node's own message. PlatformError.Error embeds
// the cause, which is reported separately.
func displayValue(err error) string {
	if e, ok := err.(errors.PlatformError); ok {
		return e.Message()
	}
	return err.Error()
}

func rawTrace(err error) *Stacktrace {
	var frames []Frame
	switch e := err.(type) {
	case Tracer:
		frames = e.Trace()
	case pkgStackTracer:
		st := e.StackTrace()
		pcs := make([]uintptr, len(st))
		for i, f := range st {
			pcs[i] = uintptr(f)
		}
		frames = resolveFrames(pcs)
	case pcStackTracer:
		frames = resolveFrames(e.StackTrace())
	}

	if len(frames) == 0 {
		return nil
	}
	return &Stacktrace{Frames: frames}
}

// resolveFrames resolves program counters and orders them oldest call first.
func resolveFrames(pcs []uintptr) []Frame {
	resolved := stack.Resolve(pcs)
	frames := make([]Frame, len(resolved))
	for i, f := range resolved {
		frames[len(resolved)-1-i] = Frame{
			AbsPath:  f.File,
			Function: f.Function,
			Line:     f.Line,
		}
	}
	return frames
}
