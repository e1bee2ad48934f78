package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	want := DefaultGravityConfig()

	if cfg.Field != want.Field || cfg.Physics != want.Physics || cfg.Player != want.Player ||
		cfg.Platforms != want.Platforms || cfg.Score != want.Score {
		t.Errorf("embedded default diverged from DefaultGravityConfig:\n got %+v\nwant %+v", cfg, want)
	}
	if len(cfg.Background.Layers) != 2 {
		t.Errorf("expected two background layers, got %v", cfg.Background.Layers)
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gravity.yaml")
	data := "physics:\n  gravity: 2.5\nplatforms:\n  gap_height: 0\n  gap_margin: 0\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Physics.Gravity != 2.5 {
		t.Errorf("gravity = %v, expected 2.5", cfg.Physics.Gravity)
	}
	if cfg.Platforms.GapHeight != 0 {
		t.Errorf("gap = %d, expected 0", cfg.Platforms.GapHeight)
	}
	// Untouched fields keep defaults
	if cfg.Field.Width != 480 || cfg.Physics.Tolerance != 10 {
		t.Errorf("defaults not preserved: %+v", cfg)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing custom config")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GravityConfig)
		errSub string
	}{
		{"default is valid", func(*GravityConfig) {}, ""},
		{"zero gravity", func(c *GravityConfig) { c.Physics.Gravity = 0 }, "gravity"},
		{"platform wider than field", func(c *GravityConfig) { c.Platforms.Width = 480 }, "platform width"},
		{"gap too tall", func(c *GravityConfig) { c.Platforms.GapHeight = 700 }, "does not fit"},
		{"divisor zero", func(c *GravityConfig) { c.Score.Divisor = 0 }, "divisor"},
		{"no frames", func(c *GravityConfig) { c.Player.Frames = 0 }, "frame"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultGravityConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.errSub == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.errSub) {
				t.Fatalf("error = %v, expected mention of %q", err, tc.errSub)
			}
		})
	}
}

func TestClassicRemovesGap(t *testing.T) {
	cfg := DefaultGravityConfig()
	classic := cfg.Classic()

	if classic.Platforms.GapHeight != 0 || classic.Platforms.GapMargin != 0 {
		t.Errorf("classic should have no gap, got %+v", classic.Platforms)
	}
	if cfg.Platforms.GapHeight == 0 {
		t.Error("Classic must not modify the receiver")
	}
	classic.Background.Layers[0] = 9
	if cfg.Background.Layers[0] == 9 {
		t.Error("Classic must not share the layers slice")
	}
}
