package run

import (
	"context"
	"errors"
	"fmt"

	"github.com/selint-dev/selint/pkg/config"
	"github.com/selint-dev/selint/pkg/pattern"
	"github.com/selint-dev/selint/pkg/scanner"
	"github.com/sirupsen/logrus"
)

// ErrViolationsFound is returned when the report doesn't pass. The CLI
// maps it to a non-zero exit status without an extra error log.
var ErrViolationsFound = errors.New("forbidden patterns were found")

const (
	// FormatHuman writes a colored, per-file summary to stderr.
	FormatHuman = ""
	// FormatJSON writes the scan report to stdout as JSON.
	FormatJSON = "json"
	// FormatSARIF writes the scan report to stdout as SARIF 2.1.0.
	FormatSARIF = "sarif"
)

func (c *Controller) Run(ctx context.Context, logE *logrus.Entry) error {
	if err := c.readConfig(); err != nil {
		return err
	}
	catalog, err := c.buildCatalog()
	if err != nil {
		return err
	}
	targetFilePaths, err := c.searchFiles()
	if err != nil {
		return fmt.Errorf("search target files: %w", err)
	}
	report, err := c.aggregate(ctx, logE, catalog, targetFilePaths)
	if err != nil {
		return err
	}
	if err := c.output(report); err != nil {
		return err
	}
	if !report.Passed {
		return ErrViolationsFound
	}
	return nil
}

func (c *Controller) readConfig() error {
	p, err := c.cfgFinder.Find(c.param.ConfigFilePath)
	if err != nil {
		return fmt.Errorf("find a configuration file: %w", err)
	}
	c.param.ConfigFilePath = p
	cfg := &config.Config{}
	if err := c.cfgReader.Read(cfg, c.param.ConfigFilePath); err != nil {
		return fmt.Errorf("read a configuration file: %w", err)
	}
	c.cfg = cfg
	return nil
}

// buildCatalog compiles the configured patterns, or falls back to the
// built-in Selenium legacy API catalog. A pattern that doesn't compile
// fails the whole run before any file is scanned.
func (c *Controller) buildCatalog() (*pattern.Catalog, error) {
	if len(c.cfg.Patterns) == 0 {
		return pattern.DefaultCatalog(), nil
	}
	specs := make([]pattern.Spec, 0, len(c.cfg.Patterns))
	for _, p := range c.cfg.Patterns {
		specs = append(specs, pattern.Spec{
			ID:      p.ID,
			Regexp:  p.Regexp,
			Message: p.Message,
		})
	}
	catalog, err := pattern.NewCatalog(specs)
	if err != nil {
		return nil, fmt.Errorf("build the pattern catalog: %w", err)
	}
	return catalog, nil
}

func (c *Controller) output(report *scanner.ScanReport) error {
	switch c.param.Format {
	case FormatHuman:
		c.logger.Report(report)
		return nil
	case FormatJSON:
		return c.outputJSON(report)
	case FormatSARIF:
		return c.outputSARIF(report)
	default:
		return errors.New("format must be empty, json, or sarif: " + c.param.Format)
	}
}
