package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// foodPlacer samples random free cells for the food item.
type foodPlacer struct {
	rng         *rand.Rand
	maxAttempts int // <= 0 means one attempt per board cell
}

func (p *foodPlacer) attempts(grid core.Grid) int {
	if p.maxAttempts > 0 {
		return p.maxAttempts
	}
	return grid.Cells()
}

// place draws uniformly random cells until one is not covered by the
// snake. It gives up after the attempt budget and reports false.
func (p *foodPlacer) place(grid core.Grid, store *Store) (core.Pos, bool) {
	if grid.Cells() <= 0 {
		return core.Pos{}, false
	}
	for range p.attempts(grid) {
		pos := grid.At(p.rng.Intn(grid.Cells()))
		if !store.Occupied(pos) {
			return pos, true
		}
	}
	return core.Pos{}, false
}

// initFood is the food initializer. It consumes a start signal only once
// the snake exists and a free cell was found, so a failed attempt is
// retried on the next frame.
func initFood(reader *SignalReader, store *Store, grid core.Grid, placer *foodPlacer) bool {
	if !reader.Pending() || store.SegmentCount() == 0 {
		return false
	}
	pos, ok := placer.place(grid, store)
	if !ok {
		return false
	}
	reader.Consume()
	store.SpawnFood(pos)
	return true
}

// eatFood checks the head against the food. On overlap the food is
// recreated on a free cell and one unit of growth is queued for the
// movement engine. When no free cell is found the food stays put.
func eatFood(st *State, store *Store, grid core.Grid, placer *foodPlacer) bool {
	head, ok := store.Head()
	if !ok {
		return false
	}
	food, ok := store.Food()
	if !ok || food.Pos != head.Pos {
		return false
	}

	if pos, found := placer.place(grid, store); found {
		store.RemoveFood()
		store.SpawnFood(pos)
	}
	st.Growth++
	return true
}
