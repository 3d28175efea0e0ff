// Package initcmd implements the 'selint init' command, which generates
// a .selint.yaml configuration template so users can quickly set up
// target file patterns and catalog overrides in their repositories.
package initcmd

import (
	"context"

	"github.com/selint-dev/selint/pkg/controller/initcmd"
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
		Name:  "init",
		Usage: "Create .selint.yaml if it doesn't exist",
		Description: `Create .selint.yaml if it doesn't exist

$ selint init

You can also pass the configuration file path.

e.g.

$ selint init .github/selint.yaml
`,
		Action: r.action,
	}
}

func (r *runner) action(_ context.Context, c *cli.Command) error {
	log.SetLevel(c.String("log-level"), r.logE)
	ctrl := initcmd.New(afero.NewOsFs())
	configFilePath := c.Args().First()
	if configFilePath == "" {
		configFilePath = c.String("config")
	}
	if configFilePath == "" {
		configFilePath = ".selint.yaml"
	}
	return ctrl.Init(configFilePath) //nolint:wrapcheck
}
