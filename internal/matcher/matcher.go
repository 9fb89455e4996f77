package matcher

import (
	"os"
	"sort"
)

// Result is the outcome of probing a source directory for one episode.
// Path is empty when no candidate satisfied any shape.
type Result struct {
	Path    string // filename of the chosen subtitle, relative to the directory
	Shape   string // name of the winning shape
	Episode string
}

// Found reports whether a subtitle was located.
func (r Result) Found() bool {
	return r.Path != ""
}

// Finder locates subtitle files for episode identifiers.
type Finder struct {
	formats []string
}

// NewFinder returns a Finder restricted to the given subtitle extensions.
// A nil or empty list falls back to DefaultSubtitleFormats.
func NewFinder(formats []string) *Finder {
	if len(formats) == 0 {
		formats = DefaultSubtitleFormats
	}
	return &Finder{formats: formats}
}

// Find reads dir and probes its subtitle files for ep.
func (f *Finder) Find(dir, ep string) (Result, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Result{}, err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	return f.FindIn(names, ep), nil
}

// FindIn probes the given filenames for ep. The first shape (in priority
// order) with at least one hit wins; within a shape the lexicographically
// first filename wins, so results are deterministic regardless of how the
// directory was listed.
func (f *Finder) FindIn(names []string, ep string) Result {
	candidates := make([]string, 0, len(names))
	for _, n := range names {
		if HasFormat(n, f.formats) {
			candidates = append(candidates, n)
		}
	}
	sort.Strings(candidates)

	for _, s := range Shapes() {
		for _, n := range candidates {
			if s.Matches(n, ep) {
				return Result{Path: n, Shape: s.Name, Episode: ep}
			}
		}
	}
	return Result{Episode: ep}
}
