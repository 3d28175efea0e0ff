package scanner

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// File pairs a path with its already-read content.
type File struct {
	Path string
	Text string
}

// DefaultConcurrency bounds how many files are scanned at once.
const DefaultConcurrency = 10

// Aggregate scans a set of files and builds the report. Files are
// independent, so they are scanned concurrently with at most limit
// goroutines; each result lands in its own slot and the report sorts by
// path afterwards, so scheduling order never changes the output.
// The only error is context cancellation.
func (s *Scanner) Aggregate(ctx context.Context, files []File, limit int) (*ScanReport, error) {
	if limit < 1 {
		limit = DefaultConcurrency
	}
	results := make([]*ScanResult, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = s.Scan(file.Path, file.Text)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return NewReport(results), nil
}
