package run

import (
	"encoding/json"
	"fmt"

	"github.com/selint-dev/selint/pkg/sarif"
	"github.com/selint-dev/selint/pkg/scanner"
)

// outputSARIF outputs the report in SARIF format to stdout.
func (c *Controller) outputSARIF(report *scanner.ScanReport) error {
	log := sarif.Log{
		Schema:  "https://json.schemastore.org/sarif-2.1.0.json",
		Version: "2.1.0",
		Runs: []sarif.Run{
			{
				Tool: sarif.Tool{
					Driver: sarif.Driver{
						Name:           "selint",
						InformationURI: "https://github.com/selint-dev/selint",
						Rules:          buildSARIFRules(report),
					},
				},
				Results: buildSARIFResults(report),
			},
		},
	}

	encoder := json.NewEncoder(c.param.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(log); err != nil {
		return fmt.Errorf("encode SARIF: %w", err)
	}
	return nil
}

// buildSARIFRules lists each pattern id once, in order of first
// appearance, so the rule table is stable for a given report.
func buildSARIFRules(report *scanner.ScanReport) []sarif.Rule {
	seen := map[string]struct{}{}
	rules := []sarif.Rule{}
	for _, result := range report.Results {
		for _, v := range result.Violations {
			if _, ok := seen[v.PatternID]; ok {
				continue
			}
			seen[v.PatternID] = struct{}{}
			rules = append(rules, sarif.Rule{
				ID: v.PatternID,
				ShortDescription: sarif.Message{
					Text: v.Message,
				},
			})
		}
	}
	return rules
}

func buildSARIFResults(report *scanner.ScanReport) []sarif.Result {
	results := make([]sarif.Result, 0, report.TotalViolations)
	for _, r := range report.Results {
		for _, v := range r.Violations {
			msg := v.Message
			if v.LineText != "" {
				msg = v.Message + ": " + v.LineText
			}
			results = append(results, sarif.Result{
				RuleID:  v.PatternID,
				Level:   "error",
				Message: sarif.Message{Text: msg},
				Locations: []sarif.Location{
					{
						PhysicalLocation: sarif.PhysicalLocation{
							ArtifactLocation: sarif.ArtifactLocation{
								URI: v.FilePath,
							},
							Region: sarif.Region{
								StartLine: v.LineNumber,
							},
						},
					},
				},
			})
		}
	}
	return results
}
