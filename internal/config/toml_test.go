package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if cfg.UI.TickMs != nil || cfg.Corpus.Path != nil {
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
	body := `
[ui]
tick-ms = 30
correct-color = "#00FF00"
header-bg = "#FF00FF"

[corpus]
path = "/tmp/quotes.json.gz"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.UI.TickMs == nil || *cfg.UI.TickMs != 30 {
		t.Fatalf("tick-ms not parsed: %+v", cfg.UI)
	}
	if cfg.UI.CorrectColor == nil || *cfg.UI.CorrectColor != "#00FF00" {
		t.Fatalf("correct-color not parsed: %+v", cfg.UI)
	}
	if cfg.UI.HeaderBg == nil || *cfg.UI.HeaderBg != "#FF00FF" {
		t.Fatalf("header-bg not parsed: %+v", cfg.UI)
	}
	if cfg.Corpus.Path == nil || *cfg.Corpus.Path != "/tmp/quotes.json.gz" {
		t.Fatalf("corpus path not parsed: %+v", cfg.Corpus)
	}
}

func TestLoadConfigInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[ui\ntick-ms ="), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected error for invalid TOML")
	}
}
