// Package matcher extracts episode identifiers from canonically named video
// files and locates the matching subtitle file among several loose naming
// conventions.
package matcher

import (
	"fmt"
	"regexp"
)

// DefaultSeason is the season probed when none is configured.
const DefaultSeason = 1

// Extractor derives episode identifiers from template filenames of the form
// "Show - S01E03 - Title.mkv".
type Extractor struct {
	season int
	re     *regexp.Regexp
}

// NewExtractor returns an Extractor for the given season number.
func NewExtractor(season int) *Extractor {
	if season <= 0 {
		season = DefaultSeason
	}
	return &Extractor{
		season: season,
		// Exactly two digits between the season token and the closing " -".
		re: regexp.MustCompile(fmt.Sprintf(`- S%02dE(\d{2}) -`, season)),
	}
}

// Season returns the season number this extractor probes for.
func (e *Extractor) Season() int {
	return e.season
}

// Token returns the season token, e.g. "S01".
func (e *Extractor) Token() string {
	return fmt.Sprintf("S%02d", e.season)
}

// Episode returns the two-digit episode identifier embedded in filename.
// The second return value is false when the filename does not carry the
// "- SxxEnn -" token; callers treat that as a skip, not an error.
func (e *Extractor) Episode(filename string) (string, bool) {
	m := e.re.FindStringSubmatch(filename)
	if m == nil {
		return "", false
	}
	return m[1], true
}
