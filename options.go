package crashreport

import (
	"io"

	"github.com/apex/log"
	"github.com/getsentry/sentry-go"
)

// Options contains configuration options for a Dispatcher.
type Options struct {
	// Hub receives the structured report.
	// If nil, remote reporting is disabled.
	Hub Hub

	// Writer receives the text report.
	// If nil, stdout is used.
	Writer io.Writer

	// Config controls frame filtering.
	Config Config

	// Logger receives diagnostics about the dispatch itself.
	Logger log.Interface
}

// Option is a functional option for configuring a Dispatcher.
type Option func(*Options)

// DefaultOptions returns options that report to the current Sentry hub and
// stdout with DefaultConfig.
func DefaultOptions() *Options {
	return &Options{
		Hub:    sentry.CurrentHub(),
		Config: DefaultConfig(),
		Logger: log.Log,
	}
}

// WithHub sets the hub events are submitted to.
// Passing nil disables remote reporting.
func WithHub(hub Hub) Option {
	return func(opts *Options) {
		opts.Hub = hub
	}
}

// WithWriter sets the writer of the text report.
func WithWriter(w io.Writer) Option {
	return func(opts *Options) {
		opts.Writer = w
	}
}

// WithConfig sets the frame filtering configuration.
func WithConfig(cfg Config) Option {
	return func(opts *Options) {
		opts.Config = cfg
	}
}

// WithLogger sets the logger used for dispatch diagnostics.
func WithLogger(logger log.Interface) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}
