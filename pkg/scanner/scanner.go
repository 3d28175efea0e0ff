// Package scanner implements the compliance scanning engine: a lexical
// classifier that tracks string, comment, and doc-block contexts across
// lines, and a scanner that matches a pattern catalog against each line
// and keeps only the matches that land in real code. Scanning a file is
// a pure function of its text and the shared read-only catalog, so
// files may be scanned concurrently.
package scanner

import (
	"bufio"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/selint-dev/selint/pkg/pattern"
	"github.com/spf13/afero"
)

// maxLineSize bounds a single scanned line. Generated or minified
// sources can exceed bufio's default 64KiB token limit.
const maxLineSize = 1024 * 1024

type Scanner struct {
	catalog *pattern.Catalog
}

func New(catalog *pattern.Catalog) *Scanner {
	return &Scanner{catalog: catalog}
}

// Scan runs the catalog over one file's text, line by line. The scan is
// strictly sequential within a file because the classifier state is a
// fold over lines. It never mutates the text and has no side effects,
// so scanning the same content twice yields identical results.
func (s *Scanner) Scan(filePath, fileText string) *ScanResult {
	violations := []*Violation{}
	state := LineState{}
	lineNumber := 0
	sc := bufio.NewScanner(strings.NewReader(fileText))
	sc.Buffer(nil, maxLineSize)
	for sc.Scan() {
		lineNumber++
		line := sc.Text()
		var contexts []Context
		// Classify before any suppression check so the doc-block state
		// stays correct for the following lines.
		contexts, state = Classify(line, state)
		if HasIgnoreDirective(line) {
			continue
		}
		for _, p := range s.catalog.Patterns() {
			for _, span := range p.FindSpans(line) {
				if contexts[span.Start] != ContextCode {
					continue
				}
				violations = append(violations, &Violation{
					FilePath:   filePath,
					LineNumber: lineNumber,
					PatternID:  span.PatternID,
					Message:    p.Message(),
					LineText:   line,
				})
			}
		}
	}
	if err := sc.Err(); err != nil {
		// Keep whatever was found before the failure. The synthetic
		// violation points at the line where reading stopped.
		violations = append(violations, syntheticViolation(filePath, lineNumber+1, fmt.Errorf("scan lines: %w", err)))
	}
	return &ScanResult{
		FilePath:   filePath,
		Violations: violations,
		Clean:      len(violations) == 0,
	}
}

// ScanFile reads a file and scans it. A file that can't be read or
// isn't valid UTF-8 yields a result with a single synthetic violation
// instead of an error, so one bad file never hides the rest of the set.
func (s *Scanner) ScanFile(fs afero.Fs, filePath string) *ScanResult {
	content, err := afero.ReadFile(fs, filePath)
	if err != nil {
		return unreadableResult(filePath, fmt.Errorf("read a target file: %w", err))
	}
	if !utf8.Valid(content) {
		return unreadableResult(filePath, fmt.Errorf("decode a target file: %w", errNotUTF8))
	}
	return s.Scan(filePath, string(content))
}

var errNotUTF8 = errors.New("the file isn't valid UTF-8")

func syntheticViolation(filePath string, lineNumber int, err error) *Violation {
	return &Violation{
		FilePath:   filePath,
		LineNumber: lineNumber,
		PatternID:  pattern.UnreadableFileID,
		Message:    err.Error(),
	}
}

func unreadableResult(filePath string, err error) *ScanResult {
	return &ScanResult{
		FilePath:   filePath,
		Violations: []*Violation{syntheticViolation(filePath, 1, err)},
	}
}
