package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseMusou(defaultMusouYAML)
	if err != nil {
		t.Fatalf("embedded defaults failed to parse: %v", err)
	}
	if cfg != DefaultMusouConfig() {
		t.Errorf("embedded defaults differ from DefaultMusouConfig():\n%+v\n%+v", cfg, DefaultMusouConfig())
	}
}

func TestLoadMusouCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "musou.yaml")
	data := []byte("score:\n  start: 500\nbeam:\n  fan_count: 3\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := LoadMusou(path)
	if err != nil {
		t.Fatalf("LoadMusou() failed: %v", err)
	}
	if cfg.Score.Start != 500 {
		t.Errorf("Score.Start = %d, expected 500", cfg.Score.Start)
	}
	if cfg.Beam.FanCount != 3 {
		t.Errorf("Beam.FanCount = %d, expected 3", cfg.Beam.FanCount)
	}
	// Keys not present in the file keep their defaults
	if cfg.Hyper.Cost != 100 {
		t.Errorf("Hyper.Cost = %d, expected default 100", cfg.Hyper.Cost)
	}
}

func TestLoadMusouMissingFile(t *testing.T) {
	_, err := LoadMusou(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("LoadMusou() should fail for a missing custom file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error should wrap os.ErrNotExist, got %v", err)
	}
}

func TestLoadMusouInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	data := []byte("enemy:\n  min_interval: 400\n  max_interval: 100\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	_, err := LoadMusou(path)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("LoadMusou() error = %v, expected ErrInvalid", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*MusouConfig)
		valid  bool
	}{
		{"defaults", func(*MusouConfig) {}, true},
		{"zero arena", func(c *MusouConfig) { c.Arena.Width = 0 }, false},
		{"zero spawn cadence", func(c *MusouConfig) { c.Enemy.SpawnEvery = 0 }, false},
		{"stop below half", func(c *MusouConfig) { c.Enemy.StopMin = 400 }, false},
		{"no beams", func(c *MusouConfig) { c.Beam.FanCount = 0 }, false},
		{"negative cost", func(c *MusouConfig) { c.Gravity.Cost = -1 }, false},
		{"free abilities", func(c *MusouConfig) { c.Shield.Cost = 0 }, true},
		{"negative gravity life", func(c *MusouConfig) { c.Gravity.Life = -5 }, false},
		{"negative shield life", func(c *MusouConfig) { c.Shield.Life = -1 }, false},
		{"negative hyper duration", func(c *MusouConfig) { c.Hyper.Duration = -1 }, false},
		{"negative explosion", func(c *MusouConfig) { c.Effects.BombExplosion = -1 }, false},
		{"negative triumph", func(c *MusouConfig) { c.Effects.TriumphTicks = -1 }, false},
		{"negative min balance", func(c *MusouConfig) { c.Shield.MinBalance = -1 }, false},
		{"start outside arena", func(c *MusouConfig) { c.Player.StartX = 5000 }, false},
		{"start over left edge", func(c *MusouConfig) { c.Player.StartX = 10 }, false},
		{"start over bottom edge", func(c *MusouConfig) { c.Player.StartY = 640 }, false},
		{"start touching edge", func(c *MusouConfig) { c.Player.StartX = 45 }, true},
		{"zero gravity life", func(c *MusouConfig) { c.Gravity.Life = 0 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultMusouConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err == nil) != tc.valid {
				t.Errorf("Validate() = %v, expected valid=%v", err, tc.valid)
			}
		})
	}
}

func TestMarshalRoundTripsThroughParse(t *testing.T) {
	cfg := DefaultMusouConfig()
	cfg.Gravity.Life = 123

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	got, err := parseMusou(data)
	if err != nil {
		t.Fatalf("parseMusou() failed: %v", err)
	}
	if got.Gravity.Life != 123 {
		t.Errorf("Gravity.Life = %d, expected 123", got.Gravity.Life)
	}
}
