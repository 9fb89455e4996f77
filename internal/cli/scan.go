package cli

import (
	"fmt"

	"github.com/mydehq/subsort/internal/config"
	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan [path]",
	Short: "Scan a directory and show detected episode shapes",
	Long:  "Scans the specified directory for subtitle files and prints the episode numbers and naming shapes detected in each filename, without touching any file.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "."
		if len(args) > 0 {
			path = args[0]
		}
		return runScan(path)
	},
}

func init() {
	RootCmd.AddCommand(scanCmd)
}

func runScan(path string) error {
	absPath, err := requireDir(path)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	result, err := config.Scan(absPath, cfg.SubtitleFormats)
	if err != nil {
		return fmt.Errorf("failed to scan directory: %w", err)
	}

	if !result.HasSubtitles {
		fmt.Printf("No subtitle files found in: %s\n", StylePath.Render(absPath))
		return nil
	}

	fmt.Printf("%s in: %s\n", StyleHeader.Render("Detected shapes"), StylePath.Render(absPath))
	for _, f := range result.Files {
		fmt.Printf(" %s %s\n", StyleDim.Render("-"), StylePath.Render(f.Name))
		if len(f.Detections) == 0 {
			fmt.Printf("     %s\n", StyleDim.Render("no episode shape detected"))
			continue
		}
		for _, d := range f.Detections {
			fmt.Printf("     %s\n", StylePattern.Render(fmt.Sprintf("%s → episode %s", d.Glob(), d.Episode)))
		}
	}
	return nil
}
