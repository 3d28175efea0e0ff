package run

import (
	"context"
	"fmt"
	"os"

	"github.com/selint-dev/selint/pkg/config"
	"github.com/selint-dev/selint/pkg/controller/run"
	"github.com/selint-dev/selint/pkg/log"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
)

func New(logE *logrus.Entry) *cli.Command {
	r := &runner{
		logE: logE,
	}
	return r.Command()
}

type runner struct {
	logE *logrus.Entry
}

func (r *runner) Command() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "Scan files for forbidden legacy Selenium API patterns",
		Description: `If no argument is passed, selint scans files selected by the configuration,
or every *.py file under the current directory.

$ selint run

You can also pass file paths as arguments.

e.g.

$ selint run scraper/driver.py scraper/session.py
`,
		Action: r.action,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "format",
				Usage: "output format. One of '' (human readable), 'json', 'sarif'",
			},
			&cli.IntFlag{
				Name:  "workers",
				Usage: "maximum number of files scanned concurrently",
			},
		},
	}
}

func (r *runner) action(ctx context.Context, c *cli.Command) error {
	log.SetLevel(c.String("log-level"), r.logE)
	pwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get the current directory: %w", err)
	}
	fs := afero.NewOsFs()
	param := &run.ParamRun{
		FilePaths:      c.Args().Slice(),
		ConfigFilePath: c.String("config"),
		PWD:            pwd,
		Format:         c.String("format"),
		Workers:        int(c.Int("workers")),
		Stdout:         os.Stdout,
		Stderr:         os.Stderr,
	}
	ctrl := run.New(fs, config.NewFinder(fs), config.NewReader(fs), param)
	return ctrl.Run(ctx, r.logE) //nolint:wrapcheck
}
