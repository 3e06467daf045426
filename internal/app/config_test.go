package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestConfigDefaults(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
	if cfg.Cols() != 50 || cfg.Rows() != 30 {
		t.Fatalf("default grid %dx%d, expected 50x30", cfg.Cols(), cfg.Rows())
	}
}

func TestConfigValidation(t *testing.T) {
	cases := []struct {
		name string
		edit func(*Config)
	}{
		{"zero screen", func(c *Config) { c.ScreenWidth = 0 }},
		{"negative screen", func(c *Config) { c.ScreenHeight = -1 }},
		{"zero cell", func(c *Config) { c.CellSize = 0 }},
		{"cell larger than screen", func(c *Config) { c.CellSize = 1000 }},
		{"zero scale", func(c *Config) { c.WindowScale = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := NewConfig()
			tc.edit(cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected a validation error")
			}
		})
	}
}

func TestConfigLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cgol.json")
	body := `{"screen_width": 160, "screen_height": 120, "cell_size": 4, "step_interval": 100000000, "empty": true}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := NewConfig()
	if err := cfg.Load(path); err != nil {
		t.Fatal(err)
	}
	if cfg.Cols() != 40 || cfg.Rows() != 30 {
		t.Fatalf("loaded grid %dx%d, expected 40x30", cfg.Cols(), cfg.Rows())
	}
	if cfg.StepInterval != 100*time.Millisecond {
		t.Fatalf("step interval %v, expected 100ms", cfg.StepInterval)
	}
	if !cfg.Empty {
		t.Fatal("empty flag not loaded")
	}
	if cfg.WindowScale != 2 {
		t.Fatal("fields absent from the file must keep their defaults")
	}
}

func TestConfigLoadErrors(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected an error for a missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := cfg.Load(path); err == nil {
		t.Fatal("expected an error for malformed JSON")
	}
}
