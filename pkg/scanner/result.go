package scanner

import "sort"

// Violation is a single reported instance of a forbidden pattern
// matching in an unsuppressed code context. LineText is a verbatim copy
// of the offending source line, kept for audits.
type Violation struct {
	FilePath   string `json:"file_path"`
	LineNumber int    `json:"line_number"`
	PatternID  string `json:"pattern_id"`
	Message    string `json:"message"`
	LineText   string `json:"line_text"`
}

// ScanResult holds the violations of one file in line order.
type ScanResult struct {
	FilePath   string       `json:"file_path"`
	Violations []*Violation `json:"violations"`
	Clean      bool         `json:"clean"`
}

// ScanReport is the aggregate outcome over a file set. Results are
// sorted by file path so the report is reproducible regardless of
// scheduling order. Passed is the sole signal the CLI needs to decide
// the process exit status.
type ScanReport struct {
	Results         []*ScanResult `json:"results"`
	TotalViolations int           `json:"total_violations"`
	Passed          bool          `json:"passed"`
}

// NewReport sorts results by path and derives the totals.
func NewReport(results []*ScanResult) *ScanReport {
	sorted := make([]*ScanResult, len(results))
	copy(sorted, results)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].FilePath < sorted[j].FilePath
	})
	total := 0
	for _, result := range sorted {
		total += len(result.Violations)
	}
	return &ScanReport{
		Results:         sorted,
		TotalViolations: total,
		Passed:          total == 0,
	}
}

// Tuple is the flat machine-readable projection of a violation.
type Tuple struct {
	FilePath   string `json:"file_path"`
	LineNumber int    `json:"line_number"`
	PatternID  string `json:"pattern_id"`
	Message    string `json:"message"`
}

// Tuples flattens the report into (file, line, pattern, message) rows.
func (r *ScanReport) Tuples() []Tuple {
	tuples := make([]Tuple, 0, r.TotalViolations)
	for _, result := range r.Results {
		for _, v := range result.Violations {
			tuples = append(tuples, Tuple{
				FilePath:   v.FilePath,
				LineNumber: v.LineNumber,
				PatternID:  v.PatternID,
				Message:    v.Message,
			})
		}
	}
	return tuples
}
