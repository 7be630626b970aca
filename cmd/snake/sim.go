package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/headless"
)

var (
	flagFrames      int
	flagTurnChance  float64
	flagAutoRestart bool
	flagOut         string
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless session with random input",
	Long: `Run the simulation without a terminal. Direction changes are drawn
from a seeded random stream, so equal seeds give equal reports.
The store invariants are checked after every frame.

The YAML report is written to stdout (or --out); logs go to stderr.

Examples:
  snake sim
  snake sim --frames 10000 --seed 42
  snake sim --auto-restart --out report.yaml`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagFrames, "frames", 3600, "Number of frames to simulate")
	simCmd.Flags().Float64Var(&flagTurnChance, "turn-chance", headless.DefaultTurnChance, "Per-frame probability of a direction press")
	simCmd.Flags().BoolVar(&flagAutoRestart, "auto-restart", false, "Restart after game over instead of stopping")
	simCmd.Flags().StringVar(&flagOut, "out", "", "Write the report to this file instead of stdout")
}

func runSim(cmd *cobra.Command, args []string) {
	logger, err := newLogger(os.Stderr, "snake-sim")
	if err != nil {
		fail("%v", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}
	if flagFrames <= 0 {
		fail("--frames must be positive, got %d", flagFrames)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("simulation started", "seed", seed, "frames", flagFrames,
		"width", cfg.Grid.Width, "height", cfg.Grid.Height)

	report, err := headless.Run(snake.New(cfg), headless.Options{
		Frames:      flagFrames,
		TickRate:    flagFPS,
		Seed:        seed,
		TurnChance:  flagTurnChance,
		AutoRestart: flagAutoRestart,
	}, logger)
	if err != nil {
		logger.Error("invariant violated", "error", err)
		fail("%v", err)
	}

	data, err := yaml.Marshal(report)
	if err != nil {
		fail("cannot encode report: %v", err)
	}

	if flagOut == "" {
		fmt.Print(string(data))
		return
	}
	if err := os.WriteFile(flagOut, data, 0o644); err != nil {
		fail("cannot write report: %v", err)
	}
	logger.Info("report written", "path", flagOut)
}
