// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	UI     UIConfig     `toml:"ui"`
	Corpus CorpusConfig `toml:"corpus"`
}

// UIConfig maps rendering-related settings.
type UIConfig struct {
	TickMs       *int    `toml:"tick-ms"`
	CorrectColor *string `toml:"correct-color"`
	PendingColor *string `toml:"pending-color"`
	ErrorFg      *string `toml:"error-fg"`
	ErrorBg      *string `toml:"error-bg"`
	HeaderFg     *string `toml:"header-fg"`
	HeaderBg     *string `toml:"header-bg"`
}

// CorpusConfig maps corpus-related settings.
type CorpusConfig struct {
	Path *string `toml:"path"`
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
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
