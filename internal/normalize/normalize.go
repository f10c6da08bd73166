// Package normalize applies the fixed text cleanup sequence to extracted
// document text.
package normalize

import "regexp"

// The rules run in this exact order. Later rules act on residue from earlier
// ones: stripping underscores or commas can join two periods into a run that
// the final rule then deletes.
var (
	newlineRuns    = regexp.MustCompile(`\n+`)
	unicodeMarkers = regexp.MustCompile(`(?:\\u)+`)
	underscoreRuns = regexp.MustCompile(`_+`)
	commaRuns      = regexp.MustCompile(`,+`)
	periodRuns     = regexp.MustCompile(`\.{2,}`)
)

// Clean collapses newline runs to single spaces, strips literal \u escape
// markers, and deletes underscore runs, comma runs, and leader-dot runs of
// two or more periods. Single periods survive. Clean is idempotent:
// Clean(Clean(s)) == Clean(s).
func Clean(raw string) string {
	s := newlineRuns.ReplaceAllString(raw, " ")
	s = unicodeMarkers.ReplaceAllString(s, " ")
	s = underscoreRuns.ReplaceAllString(s, "")
	s = commaRuns.ReplaceAllString(s, "")
	s = periodRuns.ReplaceAllString(s, "")
	return s
}
