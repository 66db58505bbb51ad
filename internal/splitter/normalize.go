package splitter

import (
	"regexp"
	"strings"
)

var reBlankRuns = regexp.MustCompile(`\n{3,}`)

// Normalize collapses runs of 3+ newlines down to exactly 2 and trims
// leading and trailing blank lines. Idempotent.
func Normalize(text string) string {
	text = reBlankRuns.ReplaceAllString(text, "\n\n")
	return strings.Trim(text, "\n")
}
