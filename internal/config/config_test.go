package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFrom_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Data.Sources) != 1 || cfg.Data.Sources[0] != "data/scores.csv" {
		t.Errorf("default sources: got %v", cfg.Data.Sources)
	}
	if cfg.Display.MinGames != 1 || cfg.Display.GameLimit != 20 {
		t.Errorf("default display: got %+v", cfg.Display)
	}
}

func TestLoadFrom_ParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `[data]
sources = ["a.csv", "b.csv"]
accolades = "awards.csv"

[display]
min_games = 3
game_limit = 50
debug = true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if len(cfg.Data.Sources) != 2 || cfg.Data.Sources[1] != "b.csv" {
		t.Errorf("sources: got %v", cfg.Data.Sources)
	}
	if cfg.Data.Accolades != "awards.csv" {
		t.Errorf("accolades: got %q", cfg.Data.Accolades)
	}
	if cfg.Display.MinGames != 3 || cfg.Display.GameLimit != 50 || !cfg.Display.Debug {
		t.Errorf("display: got %+v", cfg.Display)
	}
}

func TestLoadFrom_ClampsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `[display]
min_games = 0
game_limit = -5
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Display.MinGames != 1 {
		t.Errorf("min_games clamp: got %d", cfg.Display.MinGames)
	}
	if cfg.Display.GameLimit != 20 {
		t.Errorf("game_limit clamp: got %d", cfg.Display.GameLimit)
	}
}

func TestLoadFrom_BadTOMLIsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("not = [valid"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Fatal("expected parse error")
	}
}
