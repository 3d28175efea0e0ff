package run

import (
	"context"

	"github.com/selint-dev/selint/pkg/pattern"
	"github.com/selint-dev/selint/pkg/scanner"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// aggregate scans the target files with bounded concurrency. The bound
// keeps open file descriptors in check; each file scan is independent
// and shares only the read-only catalog. An unreadable file becomes a
// synthetic violation in its own result, never a run failure.
func (c *Controller) aggregate(ctx context.Context, logE *logrus.Entry, catalog *pattern.Catalog, filePaths []string) (*scanner.ScanReport, error) {
	sc := scanner.New(catalog)
	results := make([]*scanner.ScanResult, len(filePaths))
	g, ctx := errgroup.WithContext(ctx)
	limit := c.param.Workers
	if limit < 1 {
		limit = scanner.DefaultConcurrency
	}
	g.SetLimit(limit)
	for i, filePath := range filePaths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			logE.WithField("target_file", filePath).Debug("scan a file")
			results[i] = sc.ScanFile(c.fs, filePath)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return scanner.NewReport(results), nil
}
