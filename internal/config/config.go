// Package config provides YAML-based configuration loading, validation and
// difficulty presets for the simulation.
package config

import (
	"errors"
	"fmt"
)

// Config contains every tunable of the simulation. All values are in world
// units (not terminal cells); the platform layer projects them onto cells.
type Config struct {
	Arena  ArenaConfig  `yaml:"arena"`
	Paddle PaddleConfig `yaml:"paddle"`
	Ball   BallConfig   `yaml:"ball"`
	Bricks BrickConfig  `yaml:"bricks"`
	Sim    SimConfig    `yaml:"sim"`
}

// ArenaConfig defines the play-field bounds and the enclosing wall thickness.
// Y grows upward: Top must be above Bottom, Right must be right of Left.
type ArenaConfig struct {
	Left          float64 `yaml:"left"`
	Right         float64 `yaml:"right"`
	Top           float64 `yaml:"top"`
	Bottom        float64 `yaml:"bottom"`
	WallThickness float64 `yaml:"wall_thickness"`
}

// Width returns the horizontal extent of the arena.
func (a ArenaConfig) Width() float64 {
	return a.Right - a.Left
}

// Height returns the vertical extent of the arena.
func (a ArenaConfig) Height() float64 {
	return a.Top - a.Bottom
}

// PaddleConfig defines paddle geometry and movement.
type PaddleConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Speed    float64 `yaml:"speed"`     // world units per second
	Padding  float64 `yaml:"padding"`   // clearance kept from the side walls
	FloorGap float64 `yaml:"floor_gap"` // distance above the bottom wall
}

// BallConfig defines ball geometry and launch parameters.
type BallConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Speed      float64 `yaml:"speed"` // world units per second
	StartX     float64 `yaml:"start_x"`
	StartY     float64 `yaml:"start_y"`
	DirectionX float64 `yaml:"direction_x"`
	DirectionY float64 `yaml:"direction_y"`
}

// BrickConfig defines brick geometry and the gaps the grid generator uses.
type BrickConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Gap        float64 `yaml:"gap"`         // gap between neighboring bricks
	SideGap    float64 `yaml:"side_gap"`    // gap between the grid and each side wall
	CeilingGap float64 `yaml:"ceiling_gap"` // gap between the grid and the top wall
	PaddleGap  float64 `yaml:"paddle_gap"`  // gap between the paddle and the lowest row
}

// SimConfig defines the fixed-timestep schedule.
type SimConfig struct {
	TickRate int `yaml:"tick_rate"` // ticks per second; dt = 1/TickRate
}

// Timestep returns the fixed simulation timestep in seconds.
func (s SimConfig) Timestep() float64 {
	return 1.0 / float64(s.TickRate)
}

// Validate checks every fail-fast precondition of the layout generator and
// scheduler. A non-nil error means the configuration is unusable; callers are
// expected to abort, not to recover.
func (c Config) Validate() error {
	var errs []error

	if c.Arena.Width() <= 0 {
		errs = append(errs, fmt.Errorf("config: arena width must be positive, got %v", c.Arena.Width()))
	}
	if c.Arena.Height() <= 0 {
		errs = append(errs, fmt.Errorf("config: arena height must be positive, got %v", c.Arena.Height()))
	}
	if c.Arena.WallThickness <= 0 {
		errs = append(errs, fmt.Errorf("config: wall thickness must be positive, got %v", c.Arena.WallThickness))
	}
	if c.Paddle.Width <= 0 || c.Paddle.Height <= 0 {
		errs = append(errs, fmt.Errorf("config: paddle size must be positive, got %vx%v", c.Paddle.Width, c.Paddle.Height))
	}
	if c.Paddle.Speed <= 0 {
		errs = append(errs, fmt.Errorf("config: paddle speed must be positive, got %v", c.Paddle.Speed))
	}
	if c.Ball.Width <= 0 || c.Ball.Height <= 0 {
		errs = append(errs, fmt.Errorf("config: ball size must be positive, got %vx%v", c.Ball.Width, c.Ball.Height))
	}
	if c.Ball.Speed <= 0 {
		errs = append(errs, fmt.Errorf("config: ball speed must be positive, got %v", c.Ball.Speed))
	}
	if c.Ball.DirectionX == 0 && c.Ball.DirectionY == 0 {
		errs = append(errs, errors.New("config: ball direction must be non-zero"))
	}
	if c.Bricks.Width <= 0 || c.Bricks.Height <= 0 {
		errs = append(errs, fmt.Errorf("config: brick size must be positive, got %vx%v", c.Bricks.Width, c.Bricks.Height))
	}
	if c.Bricks.Gap < 0 {
		errs = append(errs, fmt.Errorf("config: brick gap must be non-negative, got %v", c.Bricks.Gap))
	}
	if c.Sim.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("config: tick rate must be positive, got %d", c.Sim.TickRate))
	}

	return errors.Join(errs...)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ApplyPreset adjusts the config for a difficulty preset. The normal preset
// leaves the config untouched; unknown presets are ignored.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Paddle.Width *= 1.5
		cfg.Ball.Speed *= 0.75
	case DifficultyHard:
		cfg.Paddle.Width *= 0.75
		cfg.Ball.Speed *= 1.5
	}
}
