package config

import (
	"os"
	"sort"

	"github.com/mydehq/subsort/internal/matcher"
)

// ScannedFile is one subtitle file with the episode shapes detected in its
// name.
type ScannedFile struct {
	Name       string
	Detections []matcher.Detection
}

// ScanResult holds the results of scanning a subtitle directory.
type ScanResult struct {
	Files        []ScannedFile
	TotalFiles   int
	HasSubtitles bool
}

// Scan scans a directory for subtitle files and reports which candidate
// shapes each filename satisfies. It uses the provided formats list to
// identify relevant files.
func Scan(dir string, formats []string) (*ScanResult, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	result := &ScanResult{
		TotalFiles: len(entries),
	}

	for _, e := range entries {
		if e.IsDir() || !matcher.HasFormat(e.Name(), formats) {
			continue
		}
		result.HasSubtitles = true
		result.Files = append(result.Files, ScannedFile{
			Name:       e.Name(),
			Detections: matcher.Detect(e.Name()),
		})
	}

	sort.Slice(result.Files, func(i, j int) bool {
		return result.Files[i].Name < result.Files[j].Name
	})
	return result, nil
}
