package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, DefaultSnakeConfig(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadSnakeCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	data := []byte("grid:\n  width: 12\n  height: 9\nsnake:\n  step_interval: 200ms\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := LoadSnake(path)
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.Grid.Width)
	assert.Equal(t, 9, cfg.Grid.Height)
	assert.Equal(t, 200*time.Millisecond, cfg.Snake.StepInterval)
	// Unset fields keep their defaults
	assert.Equal(t, 24, cfg.Grid.CellSize)
	assert.Equal(t, 3, cfg.Snake.InitialLength)
}

func TestLoadSnakeCustomPathErrors(t *testing.T) {
	_, err := LoadSnake(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("grid: [1, 2"), 0o600))
	_, err = LoadSnake(bad)
	assert.Error(t, err)

	invalid := filepath.Join(t.TempDir(), "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("grid:\n  width: 0\n"), 0o600))
	_, err = LoadSnake(invalid)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadSnakeSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	// Nothing on disk: embedded default
	cfg, err := LoadSnake("")
	require.NoError(t, err)
	assert.Equal(t, DefaultSnakeConfig(), cfg)

	// Local configs directory
	require.NoError(t, os.MkdirAll(filepath.Join(work, "configs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(work, "configs", "snake.yaml"),
		[]byte("grid:\n  width: 15\n"), 0o600))
	cfg, err = LoadSnake("")
	require.NoError(t, err)
	assert.Equal(t, 15, cfg.Grid.Width)

	// User directory wins over the local one
	userDir := filepath.Join(home, ".snake", "configs")
	require.NoError(t, os.MkdirAll(userDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(userDir, "snake.yaml"),
		[]byte("grid:\n  width: 40\n"), 0o600))
	cfg, err = LoadSnake("")
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.Grid.Width)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SnakeConfig)
	}{
		{"zero width", func(c *SnakeConfig) { c.Grid.Width = 0 }},
		{"negative height", func(c *SnakeConfig) { c.Grid.Height = -1 }},
		{"zero cell size", func(c *SnakeConfig) { c.Grid.CellSize = 0 }},
		{"no snake", func(c *SnakeConfig) { c.Snake.InitialLength = 0 }},
		{"snake wider than board", func(c *SnakeConfig) { c.Snake.InitialLength = c.Grid.Width + 1 }},
		{"zero interval", func(c *SnakeConfig) { c.Snake.StepInterval = 0 }},
		{"negative attempts", func(c *SnakeConfig) { c.Food.MaxAttempts = -1 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestSpeedPresets(t *testing.T) {
	cfg := DefaultSnakeConfig()

	require.NoError(t, ApplySpeedPreset(&cfg, ""))
	assert.Equal(t, 150*time.Millisecond, cfg.Snake.StepInterval)

	require.NoError(t, ApplySpeedPreset(&cfg, SpeedFast))
	assert.Equal(t, 90*time.Millisecond, cfg.Snake.StepInterval)

	require.NoError(t, ApplySpeedPreset(&cfg, SpeedSlow))
	assert.Equal(t, 250*time.Millisecond, cfg.Snake.StepInterval)

	err := ApplySpeedPreset(&cfg, "ludicrous")
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Equal(t, 250*time.Millisecond, cfg.Snake.StepInterval)
}

func TestMarshalIsLoadable(t *testing.T) {
	cfg := DefaultSnakeConfig()
	cfg.Grid.Width = 21
	cfg.Snake.StepInterval = 120 * time.Millisecond

	data, err := Marshal(cfg)
	require.NoError(t, err)

	back, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}

func TestGeometry(t *testing.T) {
	g := DefaultSnakeConfig().Geometry()
	assert.Equal(t, 30, g.Width)
	assert.Equal(t, 20, g.Height)
	assert.Equal(t, 24, g.CellSize)
}
