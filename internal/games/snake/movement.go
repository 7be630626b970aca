package snake

import (
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// MoveOutcome reports what one movement pass did.
type MoveOutcome struct {
	Moved    bool // the snake advanced one cell
	Grew     bool // a tail segment was spawned
	Collided bool // the head landed on a body segment
}

// applyIntent turns a directional intent into a new heading.
// Reversals and repeats of the current heading are rejected; an accepted
// change requests an immediate step.
func applyIntent(st *State, dir Direction) bool {
	if dir == st.Heading || dir == st.Heading.Opposite() {
		return false
	}
	st.Heading = dir
	st.ForceStep = true
	return true
}

// stepMovement runs the movement engine for one frame of length dt.
// A forced step fires regardless of the timer and restarts its period,
// so a heading change never produces two steps in one frame.
func stepMovement(st *State, store *Store, grid core.Grid, dt time.Duration) MoveOutcome {
	if !st.Running() {
		return MoveOutcome{}
	}

	fired := st.Timer.Tick(dt)
	if st.ForceStep {
		st.ForceStep = false
		st.Timer.Reset()
		fired = true
	}
	if !fired {
		return MoveOutcome{}
	}
	return advance(st, store, grid)
}

// advance moves the snake one cell along the heading.
//
// Every position is computed from the pre-step snapshot: the head steps
// (with wraparound), segment i takes the old position of segment i-1.
// A pending growth unit spawns a segment at the old tail position.
// Collision is checked after movement and growth.
func advance(st *State, store *Store, grid core.Grid) MoveOutcome {
	segs := store.Segments()
	if len(segs) == 0 {
		return MoveOutcome{}
	}

	dx, dy := st.Heading.Delta()
	next := make([]core.Pos, len(segs))
	next[0] = grid.Step(segs[0].Pos, dx, dy)
	for i := 1; i < len(segs); i++ {
		next[i] = segs[i-1].Pos
	}
	store.MoveSegments(next)

	out := MoveOutcome{Moved: true}

	if st.Growth > 0 {
		store.AddSegment(segs[len(segs)-1].Pos)
		st.Growth--
		out.Grew = true
	}

	out.Collided = headCollides(store)
	return out
}

// headCollides reports whether the head shares a cell with any body segment.
func headCollides(store *Store) bool {
	segs := store.Segments()
	if len(segs) < 2 {
		return false
	}
	head := segs[0].Pos
	for _, seg := range segs[1:] {
		if seg.Pos == head {
			return true
		}
	}
	return false
}
