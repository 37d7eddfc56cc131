package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultMatchesBuiltin(t *testing.T) {
	cfg, err := Parse(DefaultYAML(), "embedded")
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != DefaultTappy() {
		t.Errorf("embedded default differs from DefaultTappy():\n got %+v\nwant %+v", cfg, DefaultTappy())
	}
}

func TestDefaultIsValid(t *testing.T) {
	if err := Validate(DefaultTappy()); err != nil {
		t.Errorf("default config should be valid, got %v", err)
	}
}

func TestParsePartialOverride(t *testing.T) {
	data := []byte("physics:\n  speed: 5\nobstacles:\n  spawn_every: 100\n")
	cfg, err := Parse(data, "test")
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if cfg.Physics.Speed != 5 {
		t.Errorf("Speed = %g, expected 5", cfg.Physics.Speed)
	}
	if cfg.Obstacles.SpawnEvery != 100 {
		t.Errorf("SpawnEvery = %d, expected 100", cfg.Obstacles.SpawnEvery)
	}
	// Untouched fields keep defaults
	if cfg.Physics.Jump != 85 {
		t.Errorf("Jump = %g, expected default 85", cfg.Physics.Jump)
	}
	if cfg.World.Height != 900 {
		t.Errorf("World.Height = %g, expected default 900", cfg.World.Height)
	}
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse([]byte("world: [not, a, map"), "broken.yaml")
	if err == nil {
		t.Fatal("Parse() should fail on malformed YAML")
	}
	if !strings.Contains(err.Error(), "broken.yaml") {
		t.Errorf("error should name the source, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Tappy)
		field  string
	}{
		{"min width above max", func(c *Tappy) { c.Obstacles.MinWidth = 100; c.Obstacles.MaxWidth = 50 }, "obstacles.max_width"},
		{"min gap above max", func(c *Tappy) { c.Obstacles.MinGap = 500; c.Obstacles.MaxGap = 300 }, "obstacles.max_gap"},
		{"gap taller than world", func(c *Tappy) { c.Obstacles.MaxGap = 1000 }, "obstacles.max_gap"},
		{"zero spawn cadence", func(c *Tappy) { c.Obstacles.SpawnEvery = 0 }, "obstacles.spawn_every"},
		{"zero interval", func(c *Tappy) { c.Physics.TickInterval = 0 }, "physics.tick_interval"},
		{"zero world", func(c *Tappy) { c.World.Width = 0 }, "world.width"},
		{"start on ceiling", func(c *Tappy) { c.Agent.StartY = 0 }, "agent.start_y"},
		{"start below floor", func(c *Tappy) { c.Agent.StartY = 880 }, "agent.start_y"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultTappy()
			tc.mutate(&cfg)

			err := Validate(cfg)
			if err == nil {
				t.Fatal("Validate() should fail")
			}

			var ve ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("error should wrap ValidationError, got %T", err)
			}
			if !strings.Contains(err.Error(), tc.field) {
				t.Errorf("error should mention %s, got %v", tc.field, err)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("agent:\n  size: 20\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Agent.Size != 20 {
		t.Errorf("Agent.Size = %g, expected 20", cfg.Agent.Size)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	data := []byte("obstacles:\n  min_width: 90\n  max_width: 40\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() should reject min_width > max_width")
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("Load() should fail for a missing custom path")
	}
}

func TestMarshalRoundTripsThroughParse(t *testing.T) {
	cfg := DefaultTappy()
	cfg.Physics.Speed = 4.5

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "tick_interval") {
		t.Errorf("marshalled YAML should use snake_case keys, got:\n%s", data)
	}

	back, err := Parse(data, "marshalled")
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if back != cfg {
		t.Errorf("round trip changed config: got %+v", back)
	}
}
