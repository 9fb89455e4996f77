// Package config loads the optional global configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	configDirName  = "subsort"
	configFileName = "config.yml"
)

// Config is the global configuration (~/.config/subsort/config.yml).
// Every field is optional; command-line flags take precedence.
type Config struct {
	Season          int      `yaml:"season,omitempty"`
	SubtitleFormats []string `yaml:"subtitle_formats,flow,omitempty"`
	VideoFormats    []string `yaml:"video_formats,flow,omitempty"`
}

// GetDefaults returns the built-in configuration.
func GetDefaults() Config {
	return Config{
		Season:          1,
		SubtitleFormats: []string{"srt", "ass"},
		VideoFormats:    []string{"mkv"},
	}
}

// Path returns the global config file location.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve config directory: %w", err)
	}
	return filepath.Join(dir, configDirName, configFileName), nil
}

// Load reads the global config, falling back to defaults for a missing file
// or any unset field.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return GetDefaults(), err
	}
	return LoadFile(path)
}

// LoadFile reads a config file from an explicit path.
func LoadFile(path string) (Config, error) {
	cfg := GetDefaults()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}

	if fileCfg.Season > 0 {
		cfg.Season = fileCfg.Season
	}
	if len(fileCfg.SubtitleFormats) > 0 {
		cfg.SubtitleFormats = fileCfg.SubtitleFormats
	}
	if len(fileCfg.VideoFormats) > 0 {
		cfg.VideoFormats = fileCfg.VideoFormats
	}
	return cfg, nil
}
