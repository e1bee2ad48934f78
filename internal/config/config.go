// Package config provides YAML-based tuning for the gravity runner with an
// embedded default and a user/local override search path.
package config

import (
	"errors"
	"fmt"
)

// GravityConfig contains all tuning for one gravity runner variant.
type GravityConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Player     PlayerConfig     `yaml:"player"`
	Platforms  PlatformConfig   `yaml:"platforms"`
	Background BackgroundConfig `yaml:"background"`
	Score      ScoreConfig      `yaml:"score"`
}

// FieldConfig is the logical play-field size.
type FieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PhysicsConfig defines the per-tick motion constants.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`      // Velocity added per tick, scaled by direction
	ScrollSpeed float64 `yaml:"scroll_speed"` // Leftward platform movement per tick
	Tolerance   int     `yaml:"tolerance"`    // Landing window in logical units
}

// PlayerConfig defines the player sprite and its spawn point.
type PlayerConfig struct {
	StartX    int     `yaml:"start_x"` // Center X
	StartY    int     `yaml:"start_y"` // Center Y
	Size      int     `yaml:"size"`
	Frames    int     `yaml:"frames"`
	AnimSpeed float64 `yaml:"anim_speed"` // Frame index advance per tick
}

// PlatformConfig defines the scrolling columns.
type PlatformConfig struct {
	Width     int `yaml:"width"`
	Spacing   int `yaml:"spacing"`    // Scroll distance between spawns
	GapHeight int `yaml:"gap_height"` // 0 means full-height walls
	GapMargin int `yaml:"gap_margin"` // Minimum solid height above and below a gap
}

// BackgroundConfig defines the parallax layers as fractions of scroll speed.
type BackgroundConfig struct {
	Layers []float64 `yaml:"layers"`
}

// ScoreConfig defines how the raw tick score is shown.
type ScoreConfig struct {
	Divisor int `yaml:"divisor"`
}

// Validate checks that the config describes a playable field.
func (c GravityConfig) Validate() error {
	var errs []error
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		errs = append(errs, fmt.Errorf("field must be positive, got %dx%d", c.Field.Width, c.Field.Height))
	}
	if c.Physics.Gravity <= 0 {
		errs = append(errs, fmt.Errorf("gravity must be positive, got %v", c.Physics.Gravity))
	}
	if c.Physics.ScrollSpeed <= 0 {
		errs = append(errs, fmt.Errorf("scroll_speed must be positive, got %v", c.Physics.ScrollSpeed))
	}
	if c.Physics.Tolerance < 0 {
		errs = append(errs, fmt.Errorf("tolerance must not be negative, got %d", c.Physics.Tolerance))
	}
	if c.Player.Size <= 0 || c.Player.Frames < 1 {
		errs = append(errs, fmt.Errorf("player needs a size and at least one frame"))
	}
	if c.Platforms.Width <= 0 || c.Platforms.Width >= c.Field.Width {
		errs = append(errs, fmt.Errorf("platform width must be in (0, %d), got %d", c.Field.Width, c.Platforms.Width))
	}
	if c.Platforms.Spacing <= 0 {
		errs = append(errs, fmt.Errorf("platform spacing must be positive, got %d", c.Platforms.Spacing))
	}
	if c.Platforms.GapHeight < 0 || c.Platforms.GapHeight+2*c.Platforms.GapMargin > c.Field.Height {
		errs = append(errs, fmt.Errorf("gap %d with margin %d does not fit the field", c.Platforms.GapHeight, c.Platforms.GapMargin))
	}
	if c.Score.Divisor < 1 {
		errs = append(errs, fmt.Errorf("score divisor must be >= 1, got %d", c.Score.Divisor))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid gravity config: %w", errors.Join(errs...))
	}
	return nil
}

// Classic returns a copy with the passable gap removed, matching the
// full-height wall chain of the reference game.
func (c GravityConfig) Classic() GravityConfig {
	c.Platforms.GapHeight = 0
	c.Platforms.GapMargin = 0
	c.Background.Layers = append([]float64(nil), c.Background.Layers...)
	return c
}
