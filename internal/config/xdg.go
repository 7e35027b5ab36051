// Package config provides XDG path helpers.
package config

import (
	"os"
	"path/filepath"
)

const appDir = "tuispin"

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	return xdgHome("XDG_CONFIG_HOME", ".config")
}

// XDGDataHome returns the XDG data home or a default fallback.
func XDGDataHome() string {
	return xdgHome("XDG_DATA_HOME", filepath.Join(".local", "share"))
}

func xdgHome(env, fallback string) string {
	if v := os.Getenv(env); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, fallback)
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), appDir, "config.toml")
}

// DefaultDBPath returns the default path for the spin history database.
func DefaultDBPath() string {
	return filepath.Join(XDGDataHome(), appDir, "tuispin.db")
}

// DefaultLogPath returns the default log file used while the TUI runs.
func DefaultLogPath() string {
	return filepath.Join(XDGDataHome(), appDir, "tuispin.log")
}
