package run

import (
	"encoding/json"
	"fmt"

	"github.com/selint-dev/selint/pkg/scanner"
)

// outputJSON writes the report to stdout for machine consumption: the
// sorted per-file results plus the flattened violation tuples.
func (c *Controller) outputJSON(report *scanner.ScanReport) error {
	out := struct {
		*scanner.ScanReport
		Violations []scanner.Tuple `json:"violations"`
	}{
		ScanReport: report,
		Violations: report.Tuples(),
	}
	encoder := json.NewEncoder(c.param.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(out); err != nil {
		return fmt.Errorf("encode the report as JSON: %w", err)
	}
	return nil
}
