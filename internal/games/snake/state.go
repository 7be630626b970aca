package snake

import "time"

// Status is the game state machine's state.
type Status int

const (
	StatusRunning Status = iota
	StatusGameOver
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// State is the simulation state shared by the per-frame systems.
// Each system receives it explicitly and touches only its own fields.
type State struct {
	Heading   Direction
	ForceStep bool // set by a heading change, consumed by the next movement pass
	Timer     StepTimer
	Growth    int // pending segments to spawn, never negative
	Status    Status
	Paused    bool
}

// NewState returns the state at session start.
func NewState(stepInterval time.Duration) State {
	return State{
		Heading: DefaultHeading,
		Timer:   NewStepTimer(stepInterval),
		Status:  StatusRunning,
	}
}

// reset restores everything restart is responsible for.
func (st *State) reset() {
	st.Heading = DefaultHeading
	st.ForceStep = false
	st.Growth = 0
	st.Timer.Reset()
	st.Status = StatusRunning
	st.Paused = false
}

// Running reports whether input and movement are live.
func (st *State) Running() bool {
	return st.Status == StatusRunning
}

// observe applies the outcome of the frame's movement pass.
// Self-collision is the only way into GameOver.
func (st *State) observe(out MoveOutcome) {
	if st.Status == StatusRunning && out.Collided {
		st.Status = StatusGameOver
		st.ForceStep = false
	}
}
