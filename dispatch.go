package crashreport

import (
	"slices"

	"github.com/apex/log"
)

// Dispatcher classifies failures and reports them to a LogSink and a RemoteSink.
// It holds no per-report state and is safe for concurrent use provided the
// configured writer and hub are. Each report reaches the writer as a single
// Write call.
type Dispatcher struct {
	filter FrameFilter
	local  *LogSink
	remote *RemoteSink
	logger log.Interface
}

// New creates a Dispatcher.
//
// Example usage:
//
//	d := crashreport.New(
//	    crashreport.WithWriter(os.Stderr),
//	    crashreport.WithConfig(cfg),
//	)
func New(opts ...Option) *Dispatcher {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	if options.Logger == nil {
		options.Logger = log.Log
	}

	filter := options.Config.Filter()
	return &Dispatcher{
		filter: filter,
		local:  NewLogSink(options.Writer, filter),
		remote: NewRemoteSink(options.Hub, filter),
		logger: options.Logger,
	}
}

// ReportFailure reports err, classified with kind and message. A nil err is
// a no-op. The failure is consumed here: nothing is returned and delivery to
// the remote sink is not retried.
func (d *Dispatcher) ReportFailure(err error, kind ErrorKind, message string) {
	if err == nil {
		return
	}

	records := d.Records(Wrap(kind, message, err))
	d.local.Report(records)

	entry := d.logger.WithFields(log.Fields{
		"kind":    kind.String(),
		"records": len(records),
	})
	id := d.remote.Report(reversed(records))
	if id == nil {
		entry.Debug("crash report not submitted")
		return
	}
	entry.WithField("event_id", string(*id)).Debug("crash report submitted")
}

// Records flattens err, deduplicates the raw traces and cuts every remaining
// trace at the entry marker. The result is ordered outermost error first.
func (d *Dispatcher) Records(err error) []ExceptionRecord {
	records := Flatten(err)
	Deduplicate(records)
	d.filter.Apply(records)
	return records
}

// Check reports a failing (value, error) pair through d.
// It returns v and true when err is nil, or the zero value and false.
func Check[T any](d *Dispatcher, v T, err error, kind ErrorKind, message string) (T, bool) {
	if err != nil {
		d.ReportFailure(err, kind, message)
		var zero T
		return zero, false
	}
	return v, true
}

// reversed returns a copy of records ordered root cause first.
func reversed(records []ExceptionRecord) []ExceptionRecord {
	out := slices.Clone(records)
	slices.Reverse(out)
	return out
}
