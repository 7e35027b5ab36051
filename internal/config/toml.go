// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Wheel    WheelConfig       `toml:"wheel"`
	Editor   EditorConfig      `toml:"editor"`
	UI       UIConfig          `toml:"ui"`
	History  HistoryConfig     `toml:"history"`
	Messages map[string]string `toml:"messages"`
	LogFile  *string           `toml:"log-file"`
}

// WheelConfig maps spin and canvas settings.
type WheelConfig struct {
	DurationMs *int `toml:"duration-ms"`
	FrameMs    *int `toml:"frame-ms"`
	MaxSize    *int `toml:"max-size"`
}

// EditorConfig maps live editor settings.
type EditorConfig struct {
	DebounceMs *int `toml:"debounce-ms"`
}

// UIConfig maps presentation settings.
type UIConfig struct {
	Locale *string `toml:"locale"`
}

// HistoryConfig maps spin history settings.
type HistoryConfig struct {
	Enabled *bool `toml:"enabled"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}
