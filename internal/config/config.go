// Package config loads the optional TOML configuration file. A missing file
// yields defaults; command-line flags override whatever is loaded.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config is the application configuration.
type Config struct {
	Data    DataConfig    `toml:"data"`
	Display DisplayConfig `toml:"display"`
}

// DataConfig names the input sources.
type DataConfig struct {
	// Sources are the score CSV files, parsed in order. The first clears
	// state; the rest append, so duplicates across files are suppressed.
	Sources []string `toml:"sources"`
	// Accolades is the optional tournament awards CSV.
	Accolades string `toml:"accolades"`
}

// DisplayConfig holds presentation defaults.
type DisplayConfig struct {
	MinGames  int  `toml:"min_games"`  // default minimum games filter
	GameLimit int  `toml:"game_limit"` // default game-log page size
	Debug     bool `toml:"debug"`      // enable debug logging
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Data: DataConfig{
			Sources: []string{"data/scores.csv"},
		},
		Display: DisplayConfig{
			MinGames:  1,
			GameLimit: 20,
		},
	}
}

func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(home, ".foostats", "config.toml"), nil
}

// Load reads the config file from ~/.foostats/config.toml, falling back to
// defaults when the file does not exist.
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads a config file from an explicit path.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	if cfg.Display.MinGames < 1 {
		cfg.Display.MinGames = 1
	}
	if cfg.Display.GameLimit < 1 {
		cfg.Display.GameLimit = 20
	}
	return cfg, nil
}
