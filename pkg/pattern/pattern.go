// Package pattern provides the catalog of forbidden code signatures.
// A catalog is a read-only table of named regular expressions built once
// at startup, either from the built-in defaults or from configuration.
// Catalogs are safe to share across concurrent file scans.
package pattern

import (
	"errors"
	"fmt"
	"regexp"
)

// UnreadableFileID is a reserved pattern id for synthetic violations
// reported when a target file can't be opened or decoded. Configured
// catalogs must not reuse it.
const UnreadableFileID = "unreadable-file"

// Spec is the raw form of a pattern before compilation.
type Spec struct {
	ID      string
	Regexp  string
	Message string
}

// Pattern is a compiled forbidden signature. Immutable after creation.
type Pattern struct {
	id      string
	message string
	re      *regexp.Regexp
}

func (p *Pattern) ID() string {
	return p.id
}

func (p *Pattern) Message() string {
	return p.message
}

// MatchSpan locates a raw regex match on a single line. The offsets are
// byte offsets, start inclusive and end exclusive. A span carries no
// judgment yet about whether the match is a violation.
type MatchSpan struct {
	Start     int
	End       int
	PatternID string
}

// FindSpans returns all non-overlapping matches of the pattern on a line.
// Zero-width matches are dropped: a nullable regex matches at every
// offset, including one past the end of the line, and an empty match
// can't locate forbidden text anyway.
func (p *Pattern) FindSpans(line string) []MatchSpan {
	locs := p.re.FindAllStringIndex(line, -1)
	if locs == nil {
		return nil
	}
	spans := make([]MatchSpan, 0, len(locs))
	for _, loc := range locs {
		if loc[0] == loc[1] {
			continue
		}
		spans = append(spans, MatchSpan{
			Start:     loc[0],
			End:       loc[1],
			PatternID: p.id,
		})
	}
	return spans
}

// Catalog is an ordered, immutable set of patterns.
type Catalog struct {
	patterns []*Pattern
}

func (c *Catalog) Patterns() []*Pattern {
	return c.patterns
}

// NewCatalog compiles specs into a catalog. A spec that fails validation
// makes the whole load fail, before any file is scanned. A broken catalog
// can't produce trustworthy results.
func NewCatalog(specs []Spec) (*Catalog, error) {
	if len(specs) == 0 {
		return nil, errors.New("at least one pattern is required")
	}
	patterns := make([]*Pattern, 0, len(specs))
	for _, spec := range specs {
		p, err := compile(spec)
		if err != nil {
			return nil, fmt.Errorf("load the pattern %q: %w", spec.ID, err)
		}
		patterns = append(patterns, p)
	}
	return &Catalog{patterns: patterns}, nil
}

func compile(spec Spec) (*Pattern, error) {
	if spec.ID == "" {
		return nil, errors.New("id is required")
	}
	if spec.ID == UnreadableFileID {
		return nil, errors.New("the pattern id " + UnreadableFileID + " is reserved")
	}
	if spec.Regexp == "" {
		return nil, errors.New("regexp is required")
	}
	re, err := regexp.Compile(spec.Regexp)
	if err != nil {
		return nil, fmt.Errorf("compile regexp: %w", err)
	}
	return &Pattern{
		id:      spec.ID,
		message: spec.Message,
		re:      re,
	}, nil
}
