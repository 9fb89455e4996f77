package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/mydehq/subsort/internal/config"
	"github.com/mydehq/subsort/internal/renamer"
	"github.com/spf13/cobra"
)

func runSort(cmd *cobra.Command, subDir, videoDir, lang string) error {
	subDir, err := requireDir(subDir)
	if err != nil {
		return err
	}
	videoDir, err = requireDir(videoDir)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	season := cfg.Season
	if cmd.Flags().Changed("season") {
		season = flagSeason
	}

	mode := renamer.ModeMove
	if flagCopy {
		mode = renamer.ModeCopy
	}
	if flagRename {
		mode = renamer.ModeCopyRename
	}

	r := renamer.New(renamer.Options{
		Season:          season,
		Lang:            lang,
		Mode:            mode,
		DryRun:          flagDryRun,
		SubtitleFormats: cfg.SubtitleFormats,
		VideoFormats:    cfg.VideoFormats,
	})

	printHeader(r.Options(), subDir, videoDir)

	plan, err := r.Plan(subDir, videoDir)
	if err != nil {
		return err
	}

	for _, s := range plan.Skipped {
		logger.Warn(colorizeEvent(fmt.Sprintf("Skipped: %s", s.Template)), "reason", s.Reason())
	}

	if len(plan.Ops) == 0 {
		logger.Info("Nothing to do")
		return nil
	}

	if flagInteractive && !flagDryRun {
		ok, err := confirmPlan(plan)
		if err != nil {
			return err
		}
		if !ok {
			logger.Info(StyleDim.Render("Cancelled"))
			return nil
		}
	}

	outcomes := r.Apply(plan)

	var placed, failed int
	for _, out := range outcomes {
		if out.Err != nil {
			failed++
			logger.Error(colorizeEvent(fmt.Sprintf("Failed: %s", filepath.Base(out.Op.SourcePath))), "error", out.Err)
			continue
		}
		placed++
		label := "Placed"
		if flagDryRun {
			label = "Would place"
		}
		logger.Info(colorizeEvent(fmt.Sprintf("%s: %s → %s",
			label, filepath.Base(out.Op.SourcePath), filepath.Base(out.Op.TargetPath))))
	}

	fmt.Println()
	fmt.Println(summaryTable(outcomes, plan.Skipped))
	logger.Info(fmt.Sprintf("Done: %d placed, %d skipped, %d failed", placed, len(plan.Skipped), failed))
	return nil
}

// requireDir resolves path and fails when it does not name an existing
// directory. Validation errors are fatal and happen before any mutation.
func requireDir(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path %q: %w", path, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("directory %q does not exist", path)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%q is not a directory", path)
	}
	return abs, nil
}

func printHeader(opts renamer.Options, subDir, videoDir string) {
	fmt.Println()
	fmt.Println(StyleHeader.Render("Subsort"))
	if opts.DryRun {
		fmt.Println(styleFlag.Render("  [DRY RUN]"))
	}
	fmt.Printf("  %s %s\n", StyleDim.Render("Subtitles:"), StylePath.Render(subDir))
	fmt.Printf("  %s %s\n", StyleDim.Render("Videos:   "), StylePath.Render(videoDir))
	fmt.Printf("  %s %s\n", StyleDim.Render("Language: "), StyleCommand.Render(opts.Lang))
	fmt.Printf("  %s %s\n", StyleDim.Render("Season:   "), StyleCommand.Render(fmt.Sprintf("S%02d", opts.Season)))
	fmt.Printf("  %s %s\n", StyleDim.Render("Mode:     "), StyleCommand.Render(opts.Mode.String()))
	fmt.Println()
}

// confirmPlan lists the planned operations and asks for confirmation.
func confirmPlan(plan *renamer.Plan) (bool, error) {
	for _, op := range plan.Ops {
		fmt.Printf(" %s %s\n", StyleDim.Render("-"),
			colorizeEvent(fmt.Sprintf("%s → %s", filepath.Base(op.SourcePath), filepath.Base(op.TargetPath))))
	}
	fmt.Println()

	confirmed := false
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Apply %d operations?", len(plan.Ops))).
				Value(&confirmed),
		),
	).WithTheme(huh.ThemeCatppuccin()).Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}
	return confirmed, nil
}
