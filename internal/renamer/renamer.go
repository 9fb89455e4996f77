// Package renamer plans and applies subtitle placements: matched subtitle
// files are copied or moved next to their video files under the video's
// name, with a language tag inserted before the subtitle extension.
package renamer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mydehq/subsort/internal/matcher"
)

// Mode selects how a matched subtitle reaches its target name.
type Mode int

const (
	// ModeMove relocates the subtitle into the video directory.
	ModeMove Mode = iota
	// ModeCopy duplicates the subtitle into the video directory, leaving
	// the original untouched.
	ModeCopy
	// ModeCopyRename duplicates the subtitle into the video directory and
	// additionally renames the original in place inside the source
	// directory, so both sides end up with the same final name.
	ModeCopyRename
)

func (m Mode) String() string {
	switch m {
	case ModeCopy:
		return "copy"
	case ModeCopyRename:
		return "copy+rename"
	default:
		return "move"
	}
}

// Options is the immutable run configuration handed to a Renamer.
type Options struct {
	Season          int
	Lang            string
	Mode            Mode
	DryRun          bool
	SubtitleFormats []string
	VideoFormats    []string
}

// DefaultVideoFormats are the template extensions scanned when no
// configuration overrides them.
var DefaultVideoFormats = []string{"mkv"}

// Operation is one planned subtitle placement.
type Operation struct {
	Episode    string
	Shape      string // matcher shape that located the subtitle
	SourcePath string // original subtitle path
	TargetPath string // new path inside the video directory
	RenamePath string // new path inside the source directory, ModeCopyRename only
}

// Skip records a template file that produced no operation.
type Skip struct {
	Template string
	Episode  string   // empty when no identifier could be extracted
	Globs    []string // shapes probed, set when the episode had no match
}

// Reason describes why the template was skipped, for per-item warnings.
func (s Skip) Reason() string {
	if s.Episode == "" {
		return "no episode identifier"
	}
	return fmt.Sprintf("no subtitle matched %s", strings.Join(s.Globs, ", "))
}

// Plan is the full outcome of matching one video directory against one
// subtitle directory.
type Plan struct {
	Ops     []Operation
	Skipped []Skip
}

// Outcome is the result of applying a single operation.
type Outcome struct {
	Op  Operation
	Err error
}

// Renamer matches subtitle files to video templates and applies the
// resulting file operations.
type Renamer struct {
	opts      Options
	extractor *matcher.Extractor
	finder    *matcher.Finder
}

// New returns a Renamer for the given options.
func New(opts Options) *Renamer {
	if len(opts.VideoFormats) == 0 {
		opts.VideoFormats = DefaultVideoFormats
	}
	return &Renamer{
		opts:      opts,
		extractor: matcher.NewExtractor(opts.Season),
		finder:    matcher.NewFinder(opts.SubtitleFormats),
	}
}

// Options returns the run configuration.
func (r *Renamer) Options() Options {
	return r.opts
}

// Plan scans videoDir for template files and matches each against subDir.
// Templates without an extractable episode or without a matching subtitle
// land in Skipped; they never fail the run.
func (r *Renamer) Plan(subDir, videoDir string) (*Plan, error) {
	entries, err := os.ReadDir(videoDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read video directory: %w", err)
	}

	plan := &Plan{}
	for _, e := range entries {
		if e.IsDir() || !matcher.HasFormat(e.Name(), r.opts.VideoFormats) {
			continue
		}
		template := e.Name()

		ep, ok := r.extractor.Episode(template)
		if !ok {
			plan.Skipped = append(plan.Skipped, Skip{Template: template})
			continue
		}

		res, err := r.finder.Find(subDir, ep)
		if err != nil {
			return nil, fmt.Errorf("failed to read subtitle directory: %w", err)
		}
		if !res.Found() {
			plan.Skipped = append(plan.Skipped, Skip{
				Template: template,
				Episode:  ep,
				Globs:    matcher.ShapeGlobs(ep),
			})
			continue
		}

		newName := taggedName(template, r.opts.Lang, res.Path)
		op := Operation{
			Episode:    ep,
			Shape:      res.Shape,
			SourcePath: filepath.Join(subDir, res.Path),
			TargetPath: filepath.Join(videoDir, newName),
		}
		if r.opts.Mode == ModeCopyRename {
			op.RenamePath = filepath.Join(subDir, newName)
		}
		plan.Ops = append(plan.Ops, op)
	}
	return plan, nil
}

// Apply executes every planned operation. Individual failures are recorded
// per outcome and never abort the rest of the batch. In dry-run mode the
// outcomes are returned without touching the filesystem.
func (r *Renamer) Apply(plan *Plan) []Outcome {
	outcomes := make([]Outcome, 0, len(plan.Ops))
	for _, op := range plan.Ops {
		out := Outcome{Op: op}
		if !r.opts.DryRun {
			out.Err = r.apply(op)
		}
		outcomes = append(outcomes, out)
	}
	return outcomes
}

func (r *Renamer) apply(op Operation) error {
	switch r.opts.Mode {
	case ModeCopy:
		return copyFile(op.SourcePath, op.TargetPath)
	case ModeCopyRename:
		if err := copyFile(op.SourcePath, op.TargetPath); err != nil {
			return err
		}
		if err := os.Rename(op.SourcePath, op.RenamePath); err != nil {
			return fmt.Errorf("failed to rename original: %w", err)
		}
		return nil
	default:
		if err := os.Rename(op.SourcePath, op.TargetPath); err != nil {
			return fmt.Errorf("failed to move subtitle: %w", err)
		}
		return nil
	}
}

// taggedName builds "<template-base>.<lang>.<sub-ext>". The subtitle keeps
// its own extension, which may differ from run to run (.srt vs .ass).
func taggedName(template, lang, subtitle string) string {
	base := strings.TrimSuffix(template, filepath.Ext(template))
	return base + "." + lang + filepath.Ext(subtitle)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open subtitle: %w", err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat subtitle: %w", err)
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("failed to create target: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("failed to copy subtitle: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to finalize target: %w", err)
	}
	return nil
}
