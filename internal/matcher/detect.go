package matcher

import "regexp"

// Detection pairs a shape with an episode identifier found in a subtitle
// filename.
type Detection struct {
	Shape   string
	Episode string
}

// Glob returns the shape's glob form for the detected episode.
func (d Detection) Glob() string {
	for _, s := range Shapes() {
		if s.Name == d.Shape {
			return s.Glob(d.Episode)
		}
	}
	return d.Shape
}

// Two digits, not part of a longer run.
var detectors = []struct {
	shape string
	re    *regexp.Regexp
}{
	{"space", regexp.MustCompile(` (\d{2})(?:\D|$)`)},
	{"brackets", regexp.MustCompile(`\[(\d{2})\]`)},
	{"braces", regexp.MustCompile(`\{(\d{2})\}`)},
	{"e-token", regexp.MustCompile(`E(\d{2})(?:\D|$)`)},
}

// Detect reports every shape/episode combination present in a filename, in
// shape priority order. Used by the scan command to preview what a run
// would match.
func Detect(name string) []Detection {
	var found []Detection
	seen := make(map[Detection]bool)
	for _, d := range detectors {
		for _, m := range d.re.FindAllStringSubmatch(name, -1) {
			det := Detection{Shape: d.shape, Episode: m[1]}
			if !seen[det] {
				found = append(found, det)
				seen[det] = true
			}
		}
	}
	return found
}
