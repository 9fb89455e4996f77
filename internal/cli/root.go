// Package cli implements the subsort command line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
})

var (
	flagCopy        bool
	flagRename      bool
	flagSeason      int
	flagDryRun      bool
	flagInteractive bool
)

// RootCmd is the subsort root command.
var RootCmd = &cobra.Command{
	Use:   "subsort [flags] <subtitle_dir> <video_dir> <lang_iso>",
	Short: "Match loosely named subtitle files to canonically named videos",
	Long: `Subsort matches subtitle files to video files by episode number and
renames them after the video, inserting a language tag before the
subtitle extension:

  Show 01 [Fansub].ass  →  Show - S01E01 - Title.eng.ass

The video directory provides the naming template ("... - SxxEnn - ...");
the subtitle directory is probed with several loose naming conventions
(trailing number, [nn], {nn}, Enn). By default matched subtitles are
moved into the video directory; see --copy and --rename-original.`,
	Args:         cobra.ExactArgs(3),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSort(cmd, args[0], args[1], args[2])
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the subsort version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("subsort", Version)
	},
}

func init() {
	RootCmd.Flags().BoolVarP(&flagCopy, "copy", "c", false, "copy subtitles instead of moving them")
	RootCmd.Flags().BoolVarP(&flagRename, "rename-original", "r", false, "also rename the original subtitle in place (implies copy)")
	RootCmd.Flags().IntVarP(&flagSeason, "season", "s", 0, "season number of the video templates (default from config, else 1)")
	RootCmd.Flags().BoolVarP(&flagDryRun, "dry-run", "n", false, "show what would happen without touching any file")
	RootCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "show the plan and ask for confirmation before applying")

	RootCmd.AddCommand(versionCmd)
}

// Execute runs the root command and exits non-zero on configuration or
// validation errors. Per-episode issues never reach this path.
func Execute() {
	configureStyles()
	// Flag and argument errors still get cobra's usage output; run errors
	// are reported once through the logger.
	RootCmd.SilenceErrors = true
	RootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, cmd.UsageString())
		os.Exit(1)
		return nil
	})
	if err := RootCmd.Execute(); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}
