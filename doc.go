// Package crashreport turns a chained Go error into a crash report.
//
// A failure is classified with an ErrorKind and a short message, its cause
// chain is flattened into ExceptionRecords, repeated stack traces are removed
// and the result is delivered to two sinks: a human-readable text block on a
// local writer (stdout by default) and a structured event for a Sentry hub.
//
// # Quick Start
//
//	d := crashreport.New()
//	if err := app(); err != nil {
//	    d.ReportFailure(err, crashreport.KindAppFail, "app failed")
//	}
//
// Reporting a (value, error) pair:
//
//	cfg, err := loadConfig(path)
//	cfg, ok := crashreport.Check(d, cfg, err, crashreport.KindOtherFail, "config unavailable")
//	if !ok {
//	    return
//	}
//
// # Pipeline
//
// ReportFailure runs the same steps on every call:
//
//   - Wrap the error in a ClassifiedError (kind + message, original as cause)
//   - Flatten the chain, outermost error first
//   - Deduplicate stack traces on their raw content
//   - Cut every trace at the first application frame (FrameFilter.Cut)
//   - Render the records to the LogSink, outermost error first
//   - Submit the records to the RemoteSink, root cause first
//
// Nothing is retained between calls, so a Dispatcher may be shared between
// goroutines as long as its writer and hub are safe for concurrent use.
//
// # Stack Traces
//
// Go errors carry no stack trace by default. Flatten recognizes three
// capabilities on a chain node:
//
//   - Tracer, returning frames directly
//   - github.com/pkg/errors values (StackTrace() errors.StackTrace)
//   - StackTrace() []uintptr, returning raw program counters
//
// Frames are ordered oldest call first, which is the order Sentry expects.
//
// pkg/errors.Wrap produces two nodes, a withStack and a withMessage, and
// neither exposes its own text apart from the cause. Both records therefore
// carry the concatenated "message: cause" value, which repeats the text of
// the records that follow them.
//
// A typed nil pointer in the chain is reported as a final record valued
// "<nil>" and ends the traversal.
//
// # Text Format
//
// Each record renders as
//
//	 -> TYPE VALUE
//	/abs/path.go:LINE FUNCTION COLUMN|
//
// with one frame per line and a newline closing the frame block. Frames whose
// path matches one of the configured exclusions are skipped.
//
// # Configuration
//
// The entry marker and path exclusions come from Config. DefaultConfig suits
// programs whose application code lives in package main; LoadConfig reads
// overrides from YAML, TOML or CUE files.
package crashreport
