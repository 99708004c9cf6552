// Package config loads and saves the obratrack TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all obratrack configuration.
type Config struct {
	General GeneralConfig `toml:"general"`
	Rates   RatesConfig   `toml:"rates"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	DatabasePath string `toml:"database_path,omitempty"`
}

// RatesConfig holds the default hourly rates applied when a new project is
// created without explicit rates.
type RatesConfig struct {
	Profissional float64 `toml:"profissional"`
	Servente     float64 `toml:"servente"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Rates: RatesConfig{
			Profissional: 50,
			Servente:     35,
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "obratrack")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "obratrack")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DefaultDBPath returns the database location: the configured override when
// set, otherwise obratrack.db next to the config file.
func (c Config) DefaultDBPath() string {
	if c.General.DatabasePath != "" {
		return c.General.DatabasePath
	}
	return filepath.Join(ConfigDir(), "obratrack.db")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
