// Package cli builds the selint command tree.
package cli

import (
	"context"
	"io"

	"github.com/selint-dev/selint/pkg/cli/initcmd"
	runcmd "github.com/selint-dev/selint/pkg/cli/run"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

type Runner struct {
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	LDFlags *LDFlags
	LogE    *logrus.Entry
}

type LDFlags struct {
	Version string
	Commit  string
	Date    string
}

func (r *Runner) Run(ctx context.Context, args ...string) error {
	cmd := &cli.Command{
		Name:    "selint",
		Usage:   "Detect forbidden legacy Selenium API patterns. https://github.com/selint-dev/selint",
		Version: r.LDFlags.Version + " (" + r.LDFlags.Commit + ")",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level",
				Sources: cli.EnvVars("SELINT_LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name: "config",
				Aliases: []string{
					"c",
				},
				Usage:   "configuration file path",
				Sources: cli.EnvVars("SELINT_CONFIG"),
			},
		},
		EnableShellCompletion: true,
		Commands: []*cli.Command{
			initcmd.New(r.LogE),
			runcmd.New(r.LogE),
			r.newVersionCommand(),
		},
	}

	return cmd.Run(ctx, args) //nolint:wrapcheck
}
