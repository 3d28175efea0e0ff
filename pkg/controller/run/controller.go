// Package run implements the core business logic of the selint run
// command. The controller loads the configuration and the pattern
// catalog, discovers target files, scans them concurrently, and renders
// the scan report in the requested format. It provides a clean
// separation between the CLI layer and the scanning engine.
package run

import (
	"io"

	"github.com/selint-dev/selint/pkg/config"
	"github.com/spf13/afero"
)

type Controller struct {
	fs        afero.Fs
	cfg       *config.Config
	param     *ParamRun
	cfgFinder ConfigFinder
	cfgReader ConfigReader
	logger    *Logger
}

type ConfigFinder interface {
	Find(configFilePath string) (string, error)
}

type ConfigReader interface {
	Read(cfg *config.Config, configFilePath string) error
}

type ParamRun struct {
	FilePaths      []string
	ConfigFilePath string
	PWD            string
	Format         string
	Workers        int
	Stdout         io.Writer
	Stderr         io.Writer
}

func New(fs afero.Fs, cfgFinder ConfigFinder, cfgReader ConfigReader, param *ParamRun) *Controller {
	return &Controller{
		fs:        fs,
		param:     param,
		cfgFinder: cfgFinder,
		cfgReader: cfgReader,
		cfg:       &config.Config{},
		logger:    NewLogger(param.Stderr),
	}
}
