package snake

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Session owns the single mutable game: its state, the tick clock and the
// random source. All commands and ticks go through it, and it is not safe
// for concurrent use; the platform calls it from one update loop.
type Session struct {
	rules Rules
	rng   *rand.Rand
	food  FoodSource
	clock *core.Clock
	state State
}

// NewSession creates a stopped game seeded with seed.
func NewSession(rules Rules, seed int64) *Session {
	rng := rand.New(rand.NewSource(seed))
	return NewSessionWithFood(rules, rng, NewRandomFood(rng))
}

// NewSessionWithFood creates a stopped game with an explicit food source.
func NewSessionWithFood(rules Rules, rng *rand.Rand, food FoodSource) *Session {
	return &Session{
		rules: rules,
		rng:   rng,
		food:  food,
		clock: core.NewClock(rules.TickInterval),
		state: NewState(rules, rng, food),
	}
}

// Rules returns the rules the session was built with.
func (s *Session) Rules() Rules {
	return s.rules
}

// State returns a copy of the current state.
func (s *Session) State() State {
	return s.state
}

// Running reports whether the game is ticking.
func (s *Session) Running() bool {
	return s.state.Running()
}

// Interval returns the time between ticks.
func (s *Session) Interval() time.Duration {
	return s.clock.Interval()
}

// Start begins ticking. It returns the epoch of the new tick stream and
// false when the game was already running.
//
// Starting after a game over resumes the finished state as it is; the next
// tick ends it again. Use Restart for a new game.
func (s *Session) Start() (uint64, bool) {
	epoch, ok := s.clock.Start()
	if !ok {
		return epoch, false
	}
	s.state.Status = Running
	s.state.Cause = CauseNone
	return epoch, true
}

// Pause halts ticking and keeps the state so Start can resume it.
func (s *Session) Pause() bool {
	if !s.state.Running() {
		return false
	}
	s.clock.Stop()
	s.state = s.state.stop(CausePaused)
	return true
}

// Restart stops any tick stream, builds a brand-new state and starts it.
// It returns the epoch of the new stream.
func (s *Session) Restart() uint64 {
	epoch := s.clock.Restart()
	s.state = NewState(s.rules, s.rng, s.food)
	s.state.Status = Running
	return epoch
}

// SetDirection steers with a W/A/S/D key. Unknown keys and reversals are
// ignored. It reports whether the heading changed.
func (s *Session) SetDirection(key string) bool {
	d, ok := DirectionForKey(key)
	if !ok {
		return false
	}
	before := s.state.Direction
	s.state = s.state.Steer(d)
	return s.state.Direction != before
}

// Advance processes one tick of the stream identified by epoch. Ticks from a
// stopped or superseded stream are dropped and report false. When the tick
// ends the game the clock is stopped, so no further ticks are accepted.
func (s *Session) Advance(epoch uint64) (Events, bool) {
	if !s.clock.Accept(epoch) {
		return nil, false
	}

	var events Events
	s.state, events = Tick(s.state, s.rules, s.food)
	if !s.state.Running() {
		s.clock.Stop()
	}
	return events, true
}
