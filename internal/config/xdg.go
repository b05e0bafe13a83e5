// Package config provides XDG path helpers.
package config

import (
	"os"
	"path/filepath"
)

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), "termitype", "config.toml")
}

// DefaultLanguagesDir returns the default directory for language catalogs.
// A local ./languages directory takes precedence so a checkout runs as-is.
func DefaultLanguagesDir() string {
	if info, err := os.Stat("languages"); err == nil && info.IsDir() {
		return "languages"
	}
	return filepath.Join(XDGConfigHome(), "termitype", "languages")
}
