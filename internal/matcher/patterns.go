package matcher

import (
	"path/filepath"
	"slices"
	"strings"
)

// DefaultSubtitleFormats are the subtitle extensions probed when no
// configuration overrides them.
var DefaultSubtitleFormats = []string{"srt", "ass"}

// Shape is one filename convention an episode number may take inside a
// loosely named subtitle file. Shapes are probed in a fixed priority order.
type Shape struct {
	Name  string
	match func(base, ep string) bool
	glob  func(ep string) string
}

// Glob returns a human-readable glob describing the shape for an episode,
// used in "no match" warnings.
func (s Shape) Glob(ep string) string {
	return s.glob(ep)
}

// Matches reports whether the base filename satisfies the shape for ep.
// Extension filtering happens separately.
func (s Shape) Matches(base, ep string) bool {
	return s.match(base, ep)
}

// Shapes returns the candidate shapes in priority order:
// space-delimited, bracketed, braced, E-token.
func Shapes() []Shape {
	return []Shape{
		{
			Name:  "space",
			match: func(base, ep string) bool { return strings.Contains(base, " "+ep) },
			glob:  func(ep string) string { return "* " + ep + "*" },
		},
		{
			Name:  "brackets",
			match: func(base, ep string) bool { return strings.Contains(base, "["+ep+"]") },
			glob:  func(ep string) string { return "*[" + ep + "]*" },
		},
		{
			Name:  "braces",
			match: func(base, ep string) bool { return strings.Contains(base, "{"+ep+"}") },
			glob:  func(ep string) string { return "*{" + ep + "}*" },
		},
		{
			Name:  "e-token",
			match: func(base, ep string) bool { return strings.Contains(base, "E"+ep) },
			glob:  func(ep string) string { return "*E" + ep + "*" },
		},
	}
}

// ShapeGlobs returns the glob form of every shape for an episode, in
// priority order. Warnings echo these so the user sees what was probed.
func ShapeGlobs(ep string) []string {
	shapes := Shapes()
	globs := make([]string, len(shapes))
	for i, s := range shapes {
		globs[i] = s.Glob(ep)
	}
	return globs
}

// HasFormat reports whether name ends in one of the given extensions
// (specified without the leading dot). Matching is exact: ".SRT" is not
// ".srt".
func HasFormat(name string, formats []string) bool {
	ext := filepath.Ext(name)
	if ext == "" {
		return false
	}
	return slices.Contains(formats, ext[1:])
}
