package snake

// Snapshot is a flat summary of a State for logging and determinism checks.
type Snapshot struct {
	Tick     uint64
	Status   string
	Cause    StopCause
	Score    int
	Energy   float64
	SnakeLen int
	HeadX    int
	HeadY    int
	Dir      Direction
	FoodX    int
	FoodY    int
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	return s.state.Snapshot()
}

// Snapshot summarizes the state.
func (s State) Snapshot() Snapshot {
	var head Cell
	if s.Snake.Len() > 0 {
		head = s.Snake.Head()
	}

	return Snapshot{
		Tick:     s.Ticks,
		Status:   s.Status.String(),
		Cause:    s.Cause,
		Score:    s.Score,
		Energy:   s.Energy,
		SnakeLen: s.Snake.Len(),
		HeadX:    head.X,
		HeadY:    head.Y,
		Dir:      s.Direction,
		FoodX:    s.Food.X,
		FoodY:    s.Food.Y,
	}
}

// LogValues returns the snapshot as alternating key/value pairs for a
// structured logger.
func (s Snapshot) LogValues() []any {
	return []any{
		"tick", s.Tick,
		"status", s.Status,
		"cause", string(s.Cause),
		"score", s.Score,
		"energy", s.Energy,
		"length", s.SnakeLen,
		"head", [2]int{s.HeadX, s.HeadY},
		"dir", s.Dir.String(),
	}
}
