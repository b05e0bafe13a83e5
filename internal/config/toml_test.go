package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("missing file must not be an error: %v", err)
	}
	if cfg.Test.Language != nil || cfg.Test.Words != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	if _, err := LoadConfig(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestLoadConfigValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[test]\nlanguage = \"spanish\"\nwords = 50\nwidth = 100\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Test.Language == nil || *cfg.Test.Language != "spanish" {
		t.Fatalf("expected spanish, got %+v", cfg.Test.Language)
	}
	if cfg.Test.Words == nil || *cfg.Test.Words != 50 {
		t.Fatalf("expected 50 words, got %+v", cfg.Test.Words)
	}
	if cfg.Test.Width == nil || *cfg.Test.Width != 100 {
		t.Fatalf("expected width 100, got %+v", cfg.Test.Width)
	}
	if cfg.Test.LanguagesDir != nil {
		t.Fatalf("absent key must stay nil, got %+v", cfg.Test.LanguagesDir)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[test\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected error for malformed config")
	}
}
