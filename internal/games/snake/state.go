// Package snake implements the energy snake game: a fixed-tick state machine
// that moves the snake, resolves food, detects collisions, and drains energy.
//
// The package is pure. It knows nothing about terminals or timers; the
// platform drives a Session and renders the States it hands out.
package snake

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// Status is the lifecycle state of the tick processor.
type Status int

const (
	Stopped Status = iota
	Running
)

func (s Status) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// StopCause records why the game last left Running.
type StopCause string

const (
	CauseNone      StopCause = ""
	CausePaused    StopCause = "paused"
	CauseWall      StopCause = "wall"
	CauseSelf      StopCause = "self"
	CauseExhausted StopCause = "exhausted"
)

// GameOver reports whether the cause ends the run (as opposed to a pause).
func (c StopCause) GameOver() bool {
	return c == CauseWall || c == CauseSelf || c == CauseExhausted
}

// Rules are the constants fixed at initialization.
type Rules struct {
	GridSize           int           // Cells along each edge of the square grid
	TickInterval       time.Duration // Time between ticks
	MaxEnergy          float64       // Energy at spawn and after eating
	EnergyDecreaseRate float64       // Energy lost per tick
	SpawnMargin        int           // Minimum cells between spawn and any edge
}

// DefaultRules returns the rules of the default configuration.
func DefaultRules() Rules {
	return RulesFromConfig(config.DefaultSnakeConfig())
}

// RulesFromConfig derives the game rules from a loaded configuration.
func RulesFromConfig(cfg config.SnakeConfig) Rules {
	return Rules{
		GridSize:           cfg.GridSize(),
		TickInterval:       cfg.TickInterval(),
		MaxEnergy:          cfg.Energy.Initial,
		EnergyDecreaseRate: cfg.Energy.DecreaseRate,
		SpawnMargin:        cfg.Spawn.Margin,
	}
}

// State is the complete game state. It is a value: Tick and Steer return
// updated copies and never modify their input.
type State struct {
	Snake     Body
	Food      Cell
	Direction Direction
	Score     int
	Energy    float64
	Status    Status
	Cause     StopCause
	Ticks     uint64
}

// NewState builds a fresh, stopped game: a one-cell snake at a random spot at
// least SpawnMargin cells from every edge, a random heading, fresh food,
// zero score and full energy.
func NewState(rules Rules, rng *rand.Rand, food FoodSource) State {
	span := max(rules.GridSize-2*rules.SpawnMargin, 1)
	head := Cell{
		X: rng.Intn(span) + rules.SpawnMargin,
		Y: rng.Intn(span) + rules.SpawnMargin,
	}

	return State{
		Snake:     NewBody(head),
		Direction: spawnDirections[rng.Intn(len(spawnDirections))],
		Food:      food.Next(rules.GridSize),
		Energy:    rules.MaxEnergy,
		Status:    Stopped,
	}
}

// Steer changes the heading unless d points straight back at the current one.
func (s State) Steer(d Direction) State {
	if d == s.Direction.Opposite() {
		return s
	}
	s.Direction = d
	return s
}

// Running reports whether ticks are being processed.
func (s State) Running() bool {
	return s.Status == Running
}
