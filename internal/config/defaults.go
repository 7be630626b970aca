package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Width:    30,
			Height:   20,
			CellSize: 24,
		},
		Snake: SnakeParams{
			InitialLength: 3,
			StepInterval:  150 * time.Millisecond,
		},
		Food: FoodConfig{
			MaxAttempts: 0,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
