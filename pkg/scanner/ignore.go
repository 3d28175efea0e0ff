package scanner

import "strings"

// IgnoreMarker unconditionally suppresses every violation on the line
// that carries it. The exact spelling is part of the external contract.
// Annotated code in the wild depends on it, so changing it is a breaking
// change.
const IgnoreMarker = "SELENIUM_COMPLIANCE_ALLOW"

// HasIgnoreDirective reports whether a line carries the suppression
// marker. The check is case-sensitive and independent of lexical
// context: the marker is an explicit, auditable human override, so it
// fires from a trailing comment as well as from code.
func HasIgnoreDirective(line string) bool {
	return strings.Contains(line, IgnoreMarker)
}
