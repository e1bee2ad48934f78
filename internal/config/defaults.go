package config

import (
	_ "embed"
)

//go:embed defaults/gravity.yaml
var defaultGravityYAML []byte

// DefaultGravityConfig returns the hardcoded tuning, used when the embedded
// YAML cannot be parsed.
func DefaultGravityConfig() GravityConfig {
	return GravityConfig{
		Field: FieldConfig{
			Width:  480,
			Height: 720,
		},
		Physics: PhysicsConfig{
			Gravity:     1.0,
			ScrollSpeed: 4,
			Tolerance:   10,
		},
		Player: PlayerConfig{
			StartX:    160,
			StartY:    360,
			Size:      40,
			Frames:    3,
			AnimSpeed: 0.2,
		},
		Platforms: PlatformConfig{
			Width:     60,
			Spacing:   60,
			GapHeight: 240,
			GapMargin: 80,
		},
		Background: BackgroundConfig{
			Layers: []float64{0.25, 0.5},
		},
		Score: ScoreConfig{
			Divisor: 10,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultGravityYAML
}
