package snake

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func newPlacer(seed int64, maxAttempts int) *foodPlacer {
	return &foodPlacer{rng: rand.New(rand.NewSource(seed)), maxAttempts: maxAttempts}
}

// fillBoard covers every cell of grid except the ones in free.
func fillBoard(grid core.Grid, free ...core.Pos) *Store {
	skip := make(map[core.Pos]bool, len(free))
	for _, p := range free {
		skip[p] = true
	}
	s := NewStore()
	for y := range grid.Height {
		for x := range grid.Width {
			if p := core.P(x, y); !skip[p] {
				s.AddSegment(p)
			}
		}
	}
	return s
}

func TestPlaceNeverHitsSnake(t *testing.T) {
	grid := core.NewGrid(6, 6, 24)
	store := storeWith(core.P(0, 0), core.P(1, 0), core.P(2, 0), core.P(3, 0), core.P(4, 0), core.P(5, 0))
	placer := newPlacer(3, 0)

	for range 200 {
		pos, ok := placer.place(grid, store)
		require.True(t, ok)
		assert.True(t, grid.InBounds(pos))
		assert.False(t, store.Occupied(pos))
	}
}

func TestPlaceFindsLastFreeCell(t *testing.T) {
	grid := core.NewGrid(3, 3, 24)
	store := fillBoard(grid, core.P(2, 1))
	// Generous budget so the single free cell is found
	placer := newPlacer(9, 1000)

	pos, ok := placer.place(grid, store)
	require.True(t, ok)
	assert.Equal(t, core.P(2, 1), pos)
}

func TestPlaceGivesUpOnFullBoard(t *testing.T) {
	grid := core.NewGrid(3, 3, 24)
	store := fillBoard(grid)
	placer := newPlacer(1, 0)

	_, ok := placer.place(grid, store)
	assert.False(t, ok)
	assert.Equal(t, 9, placer.attempts(grid))
}

func TestInitFoodWaitsForSnake(t *testing.T) {
	grid := core.NewGrid(5, 5, 24)
	var sig StartSignal
	reader := sig.Reader()
	store := NewStore()
	placer := newPlacer(1, 0)

	sig.Emit()
	assert.False(t, initFood(&reader, store, grid, placer))
	assert.True(t, reader.Pending(), "signal kept until the snake exists")

	store.AddSegment(core.P(2, 2))
	assert.True(t, initFood(&reader, store, grid, placer))
	assert.False(t, reader.Pending())

	food, ok := store.Food()
	require.True(t, ok)
	assert.NotEqual(t, core.P(2, 2), food.Pos)

	assert.False(t, initFood(&reader, store, grid, placer), "no second spawn without a new signal")
}

func TestInitFoodRetriesWhenBoardIsFull(t *testing.T) {
	grid := core.NewGrid(3, 3, 24)
	store := fillBoard(grid)
	var sig StartSignal
	reader := sig.Reader()
	placer := newPlacer(5, 0)

	sig.Emit()
	assert.False(t, initFood(&reader, store, grid, placer))
	assert.True(t, reader.Pending())
	_, ok := store.Food()
	assert.False(t, ok)

	// Free a cell: the retry on the next frame succeeds
	store.ClearSegments()
	store.AddSegment(core.P(0, 0))
	placer.maxAttempts = 1000
	assert.True(t, initFood(&reader, store, grid, placer))
	_, ok = store.Food()
	assert.True(t, ok)
}

func TestEatFoodRelocatesAndGrows(t *testing.T) {
	grid := core.NewGrid(8, 8, 24)
	store := storeWith(core.P(4, 4), core.P(3, 4))
	store.SpawnFood(core.P(4, 4))
	st := NewState(time.Second)
	placer := newPlacer(11, 0)

	require.True(t, eatFood(&st, store, grid, placer))
	assert.Equal(t, 1, st.Growth)

	food, ok := store.Food()
	require.True(t, ok)
	assert.False(t, store.Occupied(food.Pos))
}

func TestEatFoodIgnoresMiss(t *testing.T) {
	grid := core.NewGrid(8, 8, 24)
	store := storeWith(core.P(4, 4))
	store.SpawnFood(core.P(0, 0))
	st := NewState(time.Second)

	assert.False(t, eatFood(&st, store, grid, newPlacer(1, 0)))
	assert.Equal(t, 0, st.Growth)
	food, _ := store.Food()
	assert.Equal(t, core.P(0, 0), food.Pos)
}

func TestEatFoodOnSaturatedBoard(t *testing.T) {
	grid := core.NewGrid(2, 2, 24)
	store := fillBoard(grid)
	head, _ := store.Head()
	store.SpawnFood(head.Pos)
	st := NewState(time.Second)

	require.True(t, eatFood(&st, store, grid, newPlacer(2, 0)))
	assert.Equal(t, 1, st.Growth, "growth is queued even when the food cannot move")

	food, ok := store.Food()
	require.True(t, ok)
	assert.Equal(t, head.Pos, food.Pos)
}
