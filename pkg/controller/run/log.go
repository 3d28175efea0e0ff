package run

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/selint-dev/selint/pkg/scanner"
)

type colorFunc func(a ...interface{}) string

type Logger struct {
	stderr io.Writer
	red    colorFunc
	green  colorFunc
}

func NewLogger(stderr io.Writer) *Logger {
	return &Logger{
		red:    color.New(color.FgRed).SprintFunc(),
		green:  color.New(color.FgGreen).SprintFunc(),
		stderr: stderr,
	}
}

// Report writes the human-readable summary: every violation grouped by
// file, then a final PASS/FAIL line.
func (l *Logger) Report(report *scanner.ScanReport) {
	for _, result := range report.Results {
		for _, v := range result.Violations {
			l.Output(v)
		}
	}
	if report.Passed {
		fmt.Fprintf(l.stderr, "%s no forbidden patterns found\n", l.green("PASS"))
		return
	}
	fmt.Fprintf(l.stderr, "%s %d violation(s) found\n", l.red("FAIL"), report.TotalViolations)
}

func (l *Logger) Output(v *scanner.Violation) {
	if v.LineText == "" {
		fmt.Fprintf(l.stderr, `%s %s (%s)
%s:%d
`, l.red("ERROR"), v.Message, v.PatternID, v.FilePath, v.LineNumber)
		return
	}
	fmt.Fprintf(l.stderr, `%s %s (%s)
%s:%d
%s
`, l.red("ERROR"), v.Message, v.PatternID, v.FilePath, v.LineNumber, v.LineText)
}
