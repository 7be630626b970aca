// Package config provides YAML-based configuration loading for the snake
// game: board geometry, snake parameters and food placement policy.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// SnakeConfig contains all configuration for a snake session.
type SnakeConfig struct {
	Grid  GridConfig  `yaml:"grid"`
	Snake SnakeParams `yaml:"snake"`
	Food  FoodConfig  `yaml:"food"`
}

// GridConfig defines the board geometry.
type GridConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	CellSize int `yaml:"cell_size"`
}

// SnakeParams defines the snake's spawn and pacing.
type SnakeParams struct {
	InitialLength int           `yaml:"initial_length"`
	StepInterval  time.Duration `yaml:"step_interval"`
}

// FoodConfig defines the food placement policy.
type FoodConfig struct {
	MaxAttempts int `yaml:"max_attempts"` // 0 = width*height
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Geometry returns the board as a core.Grid.
func (c SnakeConfig) Geometry() core.Grid {
	return core.NewGrid(c.Grid.Width, c.Grid.Height, c.Grid.CellSize)
}

// Validate checks that the configuration describes a playable board.
func (c SnakeConfig) Validate() error {
	switch {
	case c.Grid.Width <= 0:
		return fmt.Errorf("%w: grid.width must be positive, got %d", ErrInvalidConfig, c.Grid.Width)
	case c.Grid.Height <= 0:
		return fmt.Errorf("%w: grid.height must be positive, got %d", ErrInvalidConfig, c.Grid.Height)
	case c.Grid.CellSize <= 0:
		return fmt.Errorf("%w: grid.cell_size must be positive, got %d", ErrInvalidConfig, c.Grid.CellSize)
	case c.Snake.InitialLength <= 0:
		return fmt.Errorf("%w: snake.initial_length must be positive, got %d", ErrInvalidConfig, c.Snake.InitialLength)
	case c.Snake.InitialLength > c.Grid.Width:
		return fmt.Errorf("%w: snake.initial_length %d does not fit grid.width %d",
			ErrInvalidConfig, c.Snake.InitialLength, c.Grid.Width)
	case c.Snake.StepInterval <= 0:
		return fmt.Errorf("%w: snake.step_interval must be positive, got %s", ErrInvalidConfig, c.Snake.StepInterval)
	case c.Food.MaxAttempts < 0:
		return fmt.Errorf("%w: food.max_attempts must not be negative, got %d", ErrInvalidConfig, c.Food.MaxAttempts)
	}
	return nil
}

// SpeedPreset names a fixed step interval.
type SpeedPreset string

const (
	SpeedSlow   SpeedPreset = "slow"
	SpeedNormal SpeedPreset = "normal"
	SpeedFast   SpeedPreset = "fast"
)

// StepIntervalForPreset returns the step interval for a preset.
func StepIntervalForPreset(preset SpeedPreset) (time.Duration, error) {
	switch preset {
	case SpeedSlow:
		return 250 * time.Millisecond, nil
	case SpeedNormal:
		return 150 * time.Millisecond, nil
	case SpeedFast:
		return 90 * time.Millisecond, nil
	default:
		return 0, fmt.Errorf("%w: unknown speed preset %q (want slow, normal or fast)", ErrInvalidConfig, preset)
	}
}

// ApplySpeedPreset overrides the step interval. An empty preset keeps the
// configured value.
func ApplySpeedPreset(cfg *SnakeConfig, preset SpeedPreset) error {
	if preset == "" {
		return nil
	}
	interval, err := StepIntervalForPreset(preset)
	if err != nil {
		return err
	}
	cfg.Snake.StepInterval = interval
	return nil
}
