package renamer_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mydehq/subsort/internal/renamer"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, n := range names {
		if err := os.WriteFile(filepath.Join(dir, n), []byte(n), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func exists(t *testing.T, path string) bool {
	t.Helper()
	_, err := os.Stat(path)
	if err != nil && !os.IsNotExist(err) {
		t.Fatal(err)
	}
	return err == nil
}

func TestPlan(t *testing.T) {
	subDir := t.TempDir()
	videoDir := t.TempDir()
	writeFiles(t, subDir,
		"Show 01 [Fansub].ass",
		"Show [02].srt",
	)
	writeFiles(t, videoDir,
		"Show - S01E01 - Pilot.mkv",
		"Show - S01E02 - Second.mkv",
		"Show - S01E05 - Missing.mkv",
		"Show - Special.mkv",
		"cover.jpg",
	)

	r := renamer.New(renamer.Options{Lang: "eng"})
	plan, err := r.Plan(subDir, videoDir)
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}

	if len(plan.Ops) != 2 {
		t.Fatalf("expected 2 operations, got %d", len(plan.Ops))
	}

	wantTargets := map[string]string{
		"01": "Show - S01E01 - Pilot.eng.ass",
		"02": "Show - S01E02 - Second.eng.srt",
	}
	for _, op := range plan.Ops {
		want, ok := wantTargets[op.Episode]
		if !ok {
			t.Errorf("unexpected episode planned: %s", op.Episode)
			continue
		}
		if got := filepath.Base(op.TargetPath); got != want {
			t.Errorf("episode %s target = %q; want %q", op.Episode, got, want)
		}
		if op.RenamePath != "" {
			t.Errorf("episode %s has rename path in move mode", op.Episode)
		}
	}

	// E05 has no subtitle, the special has no episode token.
	if len(plan.Skipped) != 2 {
		t.Fatalf("expected 2 skips, got %d", len(plan.Skipped))
	}
	for _, s := range plan.Skipped {
		switch s.Template {
		case "Show - S01E05 - Missing.mkv":
			if s.Episode != "05" {
				t.Errorf("skip episode = %q; want %q", s.Episode, "05")
			}
			if len(s.Globs) != 4 {
				t.Errorf("skip should record all 4 probed globs, got %v", s.Globs)
			}
			if !strings.Contains(s.Reason(), "* 05*") {
				t.Errorf("skip reason should name probed globs: %q", s.Reason())
			}
		case "Show - Special.mkv":
			if s.Reason() != "no episode identifier" {
				t.Errorf("skip reason = %q", s.Reason())
			}
		default:
			t.Errorf("unexpected skip: %s", s.Template)
		}
	}
}

func TestApply_Move(t *testing.T) {
	subDir := t.TempDir()
	videoDir := t.TempDir()
	writeFiles(t, subDir, "Show 01 [Fansub].ass")
	writeFiles(t, videoDir, "Show - S01E01 - Title.mkv")

	r := renamer.New(renamer.Options{Lang: "eng"})
	plan, err := r.Plan(subDir, videoDir)
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}
	for _, out := range r.Apply(plan) {
		if out.Err != nil {
			t.Fatalf("Apply() error = %v", out.Err)
		}
	}

	if !exists(t, filepath.Join(videoDir, "Show - S01E01 - Title.eng.ass")) {
		t.Error("tagged subtitle missing from video directory")
	}
	if exists(t, filepath.Join(subDir, "Show 01 [Fansub].ass")) {
		t.Error("move mode should remove the original subtitle")
	}

	// Second run: the source file is gone, so the episode is a skip, not a
	// failure.
	plan2, err := r.Plan(subDir, videoDir)
	if err != nil {
		t.Fatalf("second Plan() error = %v", err)
	}
	if len(plan2.Ops) != 0 {
		t.Errorf("second run planned %d operations; want 0", len(plan2.Ops))
	}
	if len(plan2.Skipped) != 1 {
		t.Errorf("second run skipped %d templates; want 1", len(plan2.Skipped))
	}
}

func TestApply_Copy(t *testing.T) {
	subDir := t.TempDir()
	videoDir := t.TempDir()
	writeFiles(t, subDir, "Show 01.srt")
	writeFiles(t, videoDir, "Show - S01E01 - Title.mkv")

	r := renamer.New(renamer.Options{Lang: "ger", Mode: renamer.ModeCopy})
	plan, err := r.Plan(subDir, videoDir)
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}
	for _, out := range r.Apply(plan) {
		if out.Err != nil {
			t.Fatalf("Apply() error = %v", out.Err)
		}
	}

	target := filepath.Join(videoDir, "Show - S01E01 - Title.ger.srt")
	if !exists(t, target) {
		t.Error("tagged subtitle missing from video directory")
	}
	if !exists(t, filepath.Join(subDir, "Show 01.srt")) {
		t.Error("copy mode must leave the original in place")
	}

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "Show 01.srt" {
		t.Errorf("copied content = %q", data)
	}
}

func TestApply_CopyRename(t *testing.T) {
	subDir := t.TempDir()
	videoDir := t.TempDir()
	writeFiles(t, subDir, "Show {03}.ass")
	writeFiles(t, videoDir, "Show - S01E03 - Title.mkv")

	r := renamer.New(renamer.Options{Lang: "jpn", Mode: renamer.ModeCopyRename})
	plan, err := r.Plan(subDir, videoDir)
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}
	for _, out := range r.Apply(plan) {
		if out.Err != nil {
			t.Fatalf("Apply() error = %v", out.Err)
		}
	}

	want := "Show - S01E03 - Title.jpn.ass"
	if !exists(t, filepath.Join(videoDir, want)) {
		t.Error("tagged subtitle missing from video directory")
	}
	if !exists(t, filepath.Join(subDir, want)) {
		t.Error("copy+rename mode must rename the original in place")
	}
	if exists(t, filepath.Join(subDir, "Show {03}.ass")) {
		t.Error("original subtitle name should no longer exist")
	}
}

func TestApply_DryRun(t *testing.T) {
	subDir := t.TempDir()
	videoDir := t.TempDir()
	writeFiles(t, subDir, "Show 01.srt")
	writeFiles(t, videoDir, "Show - S01E01 - Title.mkv")

	r := renamer.New(renamer.Options{Lang: "eng", DryRun: true})
	plan, err := r.Plan(subDir, videoDir)
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}
	outcomes := r.Apply(plan)
	if len(outcomes) != 1 {
		t.Fatalf("expected 1 outcome, got %d", len(outcomes))
	}
	if outcomes[0].Err != nil {
		t.Errorf("dry-run outcome error = %v", outcomes[0].Err)
	}

	if exists(t, filepath.Join(videoDir, "Show - S01E01 - Title.eng.srt")) {
		t.Error("dry run must not write files")
	}
	if !exists(t, filepath.Join(subDir, "Show 01.srt")) {
		t.Error("dry run must not move files")
	}
}

func TestApply_ContinuesAfterFailure(t *testing.T) {
	subDir := t.TempDir()
	videoDir := t.TempDir()
	writeFiles(t, subDir, "Show 01.srt", "Show 02.srt")
	writeFiles(t, videoDir,
		"Show - S01E01 - One.mkv",
		"Show - S01E02 - Two.mkv",
	)

	r := renamer.New(renamer.Options{Lang: "eng"})
	plan, err := r.Plan(subDir, videoDir)
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}
	if len(plan.Ops) != 2 {
		t.Fatalf("expected 2 operations, got %d", len(plan.Ops))
	}

	// Sabotage the first operation after planning.
	if err := os.Remove(plan.Ops[0].SourcePath); err != nil {
		t.Fatal(err)
	}

	outcomes := r.Apply(plan)
	if outcomes[0].Err == nil {
		t.Error("expected first outcome to fail")
	}
	if outcomes[1].Err != nil {
		t.Errorf("second outcome should still succeed, got %v", outcomes[1].Err)
	}
	if !exists(t, outcomes[1].Op.TargetPath) {
		t.Error("second operation should have been applied despite first failing")
	}
}

func TestPlan_MissingVideoDir(t *testing.T) {
	r := renamer.New(renamer.Options{Lang: "eng"})
	if _, err := r.Plan(t.TempDir(), filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("Plan() should fail on a missing video directory")
	}
}

func TestModeString(t *testing.T) {
	cases := map[renamer.Mode]string{
		renamer.ModeMove:       "move",
		renamer.ModeCopy:       "copy",
		renamer.ModeCopyRename: "copy+rename",
	}
	for mode, want := range cases {
		if got := mode.String(); got != want {
			t.Errorf("Mode(%d).String() = %q; want %q", mode, got, want)
		}
	}
}
