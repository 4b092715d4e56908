// Command crashdemo fails on purpose and reports the failure through the
// crashreport pipeline, to stdout and to Sentry.
//
// Usage:
//
//	crashdemo --dsn https://key@sentry.example.com/1 --config crash.yaml
//
// Without --dsn the SENTRY_DSN environment variable is used; when neither is
// set the remote report is dropped by the Sentry client.
package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/getsentry/sentry-go"
	"github.com/jmgilman/go/fs/billy"
	"github.com/spf13/cobra"

	"github.com/jmgilman/go/crashreport"
)

const flushTimeout = 2 * time.Second

type options struct {
	dsn        string
	configPath string
	kind       string
	debug      bool
}

func main() {
	log.SetHandler(cli.Default)
	if err := newRootCmd().Execute(); err != nil {
		log.WithError(err).Fatal("crashdemo exit")
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "crashdemo",
		Short:         "Run a failing demo application and report the failure",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return run(opts)
		},
	}

	cmd.Flags().StringVar(&opts.dsn, "dsn", "", "Sentry DSN (defaults to $SENTRY_DSN)")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "crash report config file (.yaml, .toml or .cue)")
	cmd.Flags().StringVar(&opts.kind, "kind", string(crashreport.KindAppFail), "error kind attached to the failure")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "enable debug logging")
	return cmd
}

func run(opts *options) error {
	if opts.debug {
		log.SetLevel(log.DebugLevel)
	}

	if err := sentry.Init(sentry.ClientOptions{Dsn: opts.dsn}); err != nil {
		return err
	}
	defer sentry.Flush(flushTimeout)

	cfg := crashreport.DefaultConfig()
	if opts.configPath != "" {
		path, err := filepath.Abs(opts.configPath)
		if err != nil {
			return err
		}
		cfg, err = crashreport.LoadConfig(billy.NewLocal(), path)
		if err != nil {
			return err
		}
	}

	d := crashreport.New(
		crashreport.WithWriter(os.Stdout),
		crashreport.WithConfig(cfg),
	)
	d.ReportFailure(app(), crashreport.ErrorKind(opts.kind), "oh my god app fail")
	return nil
}
