// Package snake implements the snake simulation: a segmented snake moving
// on a toroidal grid, eating food to grow, ending on self-collision.
//
// One call to Step is one frame. Within a frame the systems run in a fixed
// order: restart and pause handling, the start-signal initializers,
// direction intent, movement, food overlap and finally the game-over
// check.
package snake

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Game is one snake session.
type Game struct {
	cfg   config.SnakeConfig
	grid  core.Grid
	rng   *rand.Rand
	frame time.Duration // simulated time per Step
	tick  uint64        // frames since Reset
	moves uint64        // movement steps since the last start

	store  *Store
	state  State
	placer foodPlacer

	start     StartSignal
	snakeInit SignalReader
	foodInit  SignalReader
}

// New creates a game using the given configuration. Call Reset before Step.
func New(cfg config.SnakeConfig) *Game {
	return &Game{
		cfg:   cfg,
		grid:  cfg.Geometry(),
		store: NewStore(),
		state: NewState(cfg.Snake.StepInterval),
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset starts a new session: fresh RNG, empty board, running state and
// a start signal for the initializers to pick up on the next Step.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.placer = foodPlacer{rng: g.rng, maxAttempts: g.cfg.Food.MaxAttempts}

	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	g.frame = time.Second / time.Duration(tickRate)
	g.tick = 0

	g.store = NewStore()
	g.state = NewState(g.cfg.Snake.StepInterval)
	g.start = StartSignal{}
	g.snakeInit = g.start.Reader()
	g.foodInit = g.start.Reader()
	g.Restart()
}

// Restart clears the snake and food, resets heading, growth and timer,
// and emits a start signal. The board is rebuilt on the next Step.
func (g *Game) Restart() {
	g.store.ClearSegments()
	g.store.RemoveFood()
	g.state.reset()
	g.moves = 0
	g.start.Emit()
}

// Step advances the simulation by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionRestart) && g.state.Status == StatusGameOver {
		g.Restart()
	}
	if in.Has(core.ActionPause) && g.state.Running() {
		g.state.Paused = !g.state.Paused
	}

	g.runInitializers()

	if !g.state.Running() || g.state.Paused {
		return core.StepResult{State: g.State()}
	}

	if dir, ok := intentFrom(in); ok {
		applyIntent(&g.state, dir)
	}

	out := stepMovement(&g.state, g.store, g.grid, g.frame)
	if out.Moved {
		g.moves++
		// Food only ever overlaps the head right after a step; checking
		// between steps would re-queue growth for food that could not move.
		eatFood(&g.state, g.store, g.grid, &g.placer)
	}

	g.state.observe(out)

	return core.StepResult{State: g.State()}
}

// runInitializers lets the snake and food initializers react to a
// pending start signal.
func (g *Game) runInitializers() {
	initSnake(&g.snakeInit, g.store, g.grid, g.cfg.Snake.InitialLength)
	initFood(&g.foodInit, g.store, g.grid, &g.placer)
}

// initSnake spawns the snake on a start signal: the head at the board
// centre and the body extending to the left, wrapping if needed.
func initSnake(reader *SignalReader, store *Store, grid core.Grid, length int) bool {
	if !reader.Consume() {
		return false
	}
	store.ClearSegments()
	center := grid.Center()
	for i := range length {
		store.AddSegment(grid.Wrap(core.Pos{X: center.X - i, Y: center.Y}))
	}
	return true
}

// State returns the platform-facing game state. Score is the snake length.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.store.SegmentCount(),
		GameOver: g.state.Status == StatusGameOver,
		Paused:   g.state.Paused,
	}
}

// Status returns the state machine's current state.
func (g *Game) Status() Status {
	return g.state.Status
}

// Grid returns the board geometry.
func (g *Game) Grid() core.Grid {
	return g.grid
}

// Entities returns every grid-occupying entity for presentation.
func (g *Game) Entities() []Entity {
	return g.store.Entities()
}

// Validate checks the store invariants and that every entity is on the board.
func (g *Game) Validate() error {
	if err := g.store.Validate(); err != nil {
		return err
	}
	for _, e := range g.store.Entities() {
		if !g.grid.InBounds(e.Pos) {
			return fmt.Errorf("%w: %s %d at %s", ErrOutOfBounds, e.Kind, e.ID, e.Pos)
		}
	}
	return nil
}
