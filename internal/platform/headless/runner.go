// Package headless drives a snake session without a terminal, feeding it
// a seeded stream of random direction changes. It is used by the sim
// command and for soak-testing the simulation invariants.
package headless

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// DefaultTurnChance is the per-frame probability of a direction press.
const DefaultTurnChance = 0.1

// Game is the part of a snake session the runner drives.
type Game interface {
	ID() string
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	Snapshot() snake.Snapshot
	Validate() error
}

// Options configures a headless run.
type Options struct {
	Frames      int     // frames to simulate
	TickRate    int     // simulated frames per second
	Seed        int64   // seeds both the game and the input stream
	TurnChance  float64 // <= 0 means DefaultTurnChance
	AutoRestart bool    // restart after game over instead of stopping
}

// Report summarizes a headless run.
type Report struct {
	Game      string         `yaml:"game"`
	Seed      int64          `yaml:"seed"`
	Frames    int            `yaml:"frames"`
	Rounds    int            `yaml:"rounds"`
	GameOvers int            `yaml:"game_overs"`
	MaxLength int            `yaml:"max_length"`
	Final     snake.Snapshot `yaml:"final"`
}

var directions = [...]core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight}

// Run plays opts.Frames frames of game and checks the store invariants
// after every frame. A nil logger discards events.
func Run(game Game, opts Options, logger *log.Logger) (Report, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	chance := opts.TurnChance
	if chance <= 0 {
		chance = DefaultTurnChance
	}
	tickRate := opts.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}

	game.Reset(core.RuntimeConfig{TickRate: tickRate, Seed: opts.Seed})
	inputs := rand.New(rand.NewSource(opts.Seed + 1))

	report := Report{Game: game.ID(), Seed: opts.Seed, Rounds: 1}
	var state core.GameState

	for report.Frames < opts.Frames {
		in := core.NewInputFrame()
		if state.GameOver {
			if !opts.AutoRestart {
				break
			}
			in.Set(core.ActionRestart)
		} else if inputs.Float64() < chance {
			in.Set(directions[inputs.Intn(len(directions))])
		}

		prev := state
		state = game.Step(in).State
		report.Frames++

		if err := game.Validate(); err != nil {
			return report, fmt.Errorf("frame %d: %w", report.Frames, err)
		}

		report.MaxLength = max(report.MaxLength, state.Score)
		switch {
		case !prev.GameOver && state.GameOver:
			report.GameOvers++
			logger.Debug("game over", "round", report.Rounds, "length", state.Score, "frame", report.Frames)
		case prev.GameOver && !state.GameOver:
			report.Rounds++
		}
	}

	report.Final = game.Snapshot()
	logger.Info("simulation finished",
		"frames", report.Frames,
		"rounds", report.Rounds,
		"game_overs", report.GameOvers,
		"max_length", report.MaxLength,
	)
	return report, nil
}
