package snake

// GameStateType is the snapshot's summary of the game state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StatePaused   GameStateType = "paused"
	StateGameOver GameStateType = "game_over"
)

// Snapshot captures the simulation state for determinism testing and the
// headless report.
type Snapshot struct {
	Tick    uint64        `yaml:"tick"`
	Moves   uint64        `yaml:"moves"`
	Length  int           `yaml:"length"`
	HeadX   int           `yaml:"head_x"`
	HeadY   int           `yaml:"head_y"`
	Dir     string        `yaml:"direction"`
	HasFood bool          `yaml:"has_food"`
	FoodX   int           `yaml:"food_x"`
	FoodY   int           `yaml:"food_y"`
	Growth  int           `yaml:"pending_growth"`
	State   GameStateType `yaml:"state"`
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.state.Status == StatusGameOver:
		state = StateGameOver
	case g.state.Paused:
		state = StatePaused
	}

	snap := Snapshot{
		Tick:   g.tick,
		Moves:  g.moves,
		Length: g.store.SegmentCount(),
		Dir:    g.state.Heading.String(),
		FoodX:  -1,
		FoodY:  -1,
		Growth: g.state.Growth,
		State:  state,
	}
	if head, ok := g.store.Head(); ok {
		snap.HeadX, snap.HeadY = head.Pos.X, head.Pos.Y
	}
	if food, ok := g.store.Food(); ok {
		snap.HasFood = true
		snap.FoodX, snap.FoodY = food.Pos.X, food.Pos.Y
	}
	return snap
}
