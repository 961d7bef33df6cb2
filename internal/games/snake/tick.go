package snake

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventAte EventKind = iota
	EventWallCollision
	EventSelfCollision
	EventExhausted
	EventRedraw // State is ready to be rendered
)

func (k EventKind) String() string {
	switch k {
	case EventAte:
		return "ate"
	case EventWallCollision:
		return "wall_collision"
	case EventSelfCollision:
		return "self_collision"
	case EventExhausted:
		return "exhausted"
	case EventRedraw:
		return "redraw"
	default:
		return "unknown"
	}
}

// Event is a single tick outcome. At is the head cell for movement events.
type Event struct {
	Kind EventKind
	At   Cell
}

// Events is the ordered list of outcomes of one tick.
type Events []Event

// Has reports whether an event of the given kind occurred.
func (e Events) Has(kind EventKind) bool {
	for _, ev := range e {
		if ev.Kind == kind {
			return true
		}
	}
	return false
}

// Tick advances a running game by one step. A stopped state is returned
// unchanged with no events.
//
// Food is resolved before collisions, so a head that eats and crashes in the
// same tick still scores. A fatal tick keeps the moved body, score and food;
// only the energy drain and the redraw are skipped.
func Tick(s State, rules Rules, food FoodSource) (State, Events) {
	if s.Status != Running {
		return s, nil
	}

	var events Events
	s.Ticks++

	body, head := s.Snake.Advance(s.Direction)
	if head == s.Food {
		s.Score++
		s.Food = food.Next(rules.GridSize)
		s.Energy = rules.MaxEnergy
		events = append(events, Event{Kind: EventAte, At: head})
	} else {
		body = body.Retract()
	}
	s.Snake = body

	switch {
	case !head.InBounds(rules.GridSize):
		return s.stop(CauseWall), append(events, Event{Kind: EventWallCollision, At: head})
	case body.DetectSelfCollision(head):
		return s.stop(CauseSelf), append(events, Event{Kind: EventSelfCollision, At: head})
	}

	s.Energy -= rules.EnergyDecreaseRate
	if s.Energy <= 0 {
		s = s.stop(CauseExhausted)
		events = append(events, Event{Kind: EventExhausted, At: head})
	}

	return s, append(events, Event{Kind: EventRedraw, At: head})
}

func (s State) stop(cause StopCause) State {
	s.Status = Stopped
	s.Cause = cause
	return s
}
