package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/selint-dev/selint/pkg/cli"
	"github.com/selint-dev/selint/pkg/controller/run"
	"github.com/selint-dev/selint/pkg/log"
	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
)

var (
	version = ""
	commit  = "" //nolint:gochecknoglobals
	date    = "" //nolint:gochecknoglobals
)

func main() {
	logE := log.New(version)
	if err := core(logE); err != nil {
		if errors.Is(err, run.ErrViolationsFound) {
			os.Exit(1)
		}
		logerr.WithError(logE, err).Fatal("selint failed")
	}
}

func core(logE *logrus.Entry) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	runner := &cli.Runner{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		LogE:   logE,
		LDFlags: &cli.LDFlags{
			Version: version,
			Commit:  commit,
			Date:    date,
		},
	}
	return runner.Run(ctx, os.Args...) //nolint:wrapcheck
}
