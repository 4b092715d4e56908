package main

import (
	"os"

	"github.com/apex/log"
	"github.com/pkg/errors"
)

// app is the demo application. It always fails.
func app() error {
	log.Info("start")
	if err := myFunction(1); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

func myFunction(arg int) error {
	if err := b(); err != nil {
		return err
	}
	if err := c(); err != nil {
		return err
	}
	if err := openFile(); err != nil {
		return err
	}
	if arg == 0 {
		if err := failC(); err != nil {
			return err
		}
	}
	return failC()
}

func b() error { return nil }

func c() error { return nil }

func failC() error {
	return errors.New("xxx")
}

// openFile succeeds only when ./xxx exists.
func openFile() error {
	if _, err := os.ReadFile("./xxx"); err != nil {
		return errors.Wrap(err, "read ./xxx")
	}
	return nil
}
