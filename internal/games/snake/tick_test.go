package snake

import (
	"reflect"
	"testing"
	"time"
)

// scriptedFood hands out a fixed sequence of cells, then repeats the last one.
type scriptedFood struct {
	cells []Cell
	calls int
}

func (f *scriptedFood) Next(int) Cell {
	i := min(f.calls, len(f.cells)-1)
	f.calls++
	return f.cells[i]
}

// farFood never lands near the test snakes.
func farFood() *scriptedFood {
	return &scriptedFood{cells: []Cell{{X: 9, Y: 9}}}
}

func testRules() Rules {
	return Rules{
		GridSize:           10,
		TickInterval:       100 * time.Millisecond,
		MaxEnergy:          100,
		EnergyDecreaseRate: 1.0,
		SpawnMargin:        3,
	}
}

func running(body Body, dir Direction, food Cell) State {
	return State{
		Snake:     body,
		Food:      food,
		Direction: dir,
		Energy:    100,
		Status:    Running,
	}
}

func TestTickEatsFood(t *testing.T) {
	food := &scriptedFood{cells: []Cell{{X: 2, Y: 2}}}
	s := running(Body{{X: 5, Y: 5}}, DirRight, Cell{X: 6, Y: 5})
	s.Energy = 40

	next, events := Tick(s, testRules(), food)

	if next.Score != 1 {
		t.Errorf("Score = %d, expected 1", next.Score)
	}
	// Energy resets to full, then this tick's drain still applies
	if next.Energy != 99 {
		t.Errorf("Energy = %g, expected 99 (reset to 100 then drained)", next.Energy)
	}
	want := Body{{X: 6, Y: 5}, {X: 5, Y: 5}}
	if !reflect.DeepEqual(next.Snake, want) {
		t.Errorf("Snake = %v, expected %v", next.Snake, want)
	}
	if next.Food != (Cell{X: 2, Y: 2}) {
		t.Errorf("Food = %+v, expected regenerated (2,2)", next.Food)
	}
	if !events.Has(EventAte) || !events.Has(EventRedraw) {
		t.Errorf("events = %v, expected ate and redraw", events)
	}
	if !next.Running() {
		t.Error("game should keep running after eating")
	}
}

func TestTickMovesWithoutEating(t *testing.T) {
	s := running(Body{{X: 5, Y: 5}}, DirRight, Cell{X: 0, Y: 0})

	next, events := Tick(s, testRules(), farFood())

	want := Body{{X: 6, Y: 5}}
	if !reflect.DeepEqual(next.Snake, want) {
		t.Errorf("Snake = %v, expected %v", next.Snake, want)
	}
	if next.Energy != 99 {
		t.Errorf("Energy = %g, expected 99", next.Energy)
	}
	if next.Score != 0 {
		t.Errorf("Score = %d, expected 0", next.Score)
	}
	if events.Has(EventAte) {
		t.Error("should not report eating")
	}
	if next.Ticks != 1 {
		t.Errorf("Ticks = %d, expected 1", next.Ticks)
	}
}

func TestTickLengthUnchangedWithoutFood(t *testing.T) {
	s := running(Body{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}}, DirDown, Cell{X: 0, Y: 0})

	next, _ := Tick(s, testRules(), farFood())

	if next.Snake.Len() != 3 {
		t.Errorf("len = %d, expected 3", next.Snake.Len())
	}
	if next.Snake.Head() != (Cell{X: 5, Y: 6}) {
		t.Errorf("head = %+v, expected (5,6)", next.Snake.Head())
	}
}

func TestTickWallCollisionKeepsMutation(t *testing.T) {
	s := running(Body{{X: 0, Y: 0}}, DirLeft, Cell{X: 5, Y: 5})

	next, events := Tick(s, testRules(), farFood())

	if next.Status != Stopped || next.Cause != CauseWall {
		t.Fatalf("Status = %v cause %q, expected stopped by wall", next.Status, next.Cause)
	}
	// The grown body is kept even though the tick was fatal
	want := Body{{X: -1, Y: 0}}
	if !reflect.DeepEqual(next.Snake, want) {
		t.Errorf("Snake = %v, expected %v", next.Snake, want)
	}
	if next.Energy != 100 {
		t.Errorf("Energy = %g, expected untouched 100", next.Energy)
	}
	if !events.Has(EventWallCollision) {
		t.Error("expected wall collision event")
	}
	if events.Has(EventRedraw) {
		t.Error("fatal collision should not request a redraw")
	}
}

func TestTickWallBoundaries(t *testing.T) {
	rules := testRules()
	last := rules.GridSize - 1

	tests := []struct {
		name string
		head Cell
		dir  Direction
	}{
		{"x == -1", Cell{X: 0, Y: 4}, DirLeft},
		{"x == gridSize", Cell{X: last, Y: 4}, DirRight},
		{"y == -1", Cell{X: 4, Y: 0}, DirUp},
		{"y == gridSize", Cell{X: 4, Y: last}, DirDown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := running(Body{tc.head}, tc.dir, Cell{X: 5, Y: 5})
			next, _ := Tick(s, rules, farFood())
			if next.Running() || next.Cause != CauseWall {
				t.Errorf("head %+v moving %v: status %v cause %q, expected wall stop",
					tc.head, tc.dir, next.Status, next.Cause)
			}
		})
	}

	// One step short of the wall is fine
	s := running(Body{{X: 1, Y: 4}}, DirLeft, Cell{X: 5, Y: 5})
	if next, _ := Tick(s, rules, farFood()); !next.Running() {
		t.Error("moving onto column 0 should not stop the game")
	}
}

func TestTickSelfCollision(t *testing.T) {
	// Moving right puts the head on (6,5), which the body still occupies
	body := Body{{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 6, Y: 6}, {X: 6, Y: 5}, {X: 6, Y: 4}}
	s := running(body, DirRight, Cell{X: 0, Y: 0})

	next, events := Tick(s, testRules(), farFood())

	if next.Running() || next.Cause != CauseSelf {
		t.Errorf("status %v cause %q, expected self stop", next.Status, next.Cause)
	}
	if !events.Has(EventSelfCollision) {
		t.Error("expected self collision event")
	}
}

func TestTickMovingIntoVacatedTailIsSafe(t *testing.T) {
	// A square loop: the head steps onto the tail cell, which is retracted first
	body := Body{{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 6, Y: 6}, {X: 6, Y: 5}}
	s := running(body, DirRight, Cell{X: 0, Y: 0})

	next, _ := Tick(s, testRules(), farFood())

	if !next.Running() {
		t.Errorf("chasing the tail should be safe, got cause %q", next.Cause)
	}
}

func TestTickEatThenCollideStillScores(t *testing.T) {
	// Food sits on the snake's own body: eating it also kills the snake
	body := Body{{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 6, Y: 6}, {X: 6, Y: 5}}
	food := &scriptedFood{cells: []Cell{{X: 1, Y: 1}}}
	s := running(body, DirRight, Cell{X: 6, Y: 5})
	s.Energy = 10

	next, events := Tick(s, testRules(), food)

	if next.Score != 1 {
		t.Errorf("Score = %d, expected 1", next.Score)
	}
	if next.Energy != 100 {
		t.Errorf("Energy = %g, expected reset to 100 and not drained", next.Energy)
	}
	if next.Running() || next.Cause != CauseSelf {
		t.Errorf("status %v cause %q, expected self stop", next.Status, next.Cause)
	}
	if next.Snake.Len() != 5 {
		t.Errorf("len = %d, expected 5 (growth kept)", next.Snake.Len())
	}
	if !events.Has(EventAte) || !events.Has(EventSelfCollision) {
		t.Errorf("events = %v", events)
	}
}

func TestTickEnergyDecay(t *testing.T) {
	rules := testRules()
	rules.GridSize = 1000
	s := running(Body{{X: 0, Y: 500}}, DirRight, Cell{X: 0, Y: 0})
	food := farFood()

	for n := 1; n <= 99; n++ {
		var events Events
		s, events = Tick(s, rules, food)
		want := rules.MaxEnergy - float64(n)*rules.EnergyDecreaseRate
		if s.Energy != want {
			t.Fatalf("after %d ticks Energy = %g, expected %g", n, s.Energy, want)
		}
		if !s.Running() {
			t.Fatalf("stopped early at tick %d", n)
		}
		if events.Has(EventExhausted) {
			t.Fatalf("exhausted early at tick %d", n)
		}
	}

	s, events := Tick(s, rules, food)
	if s.Running() || s.Cause != CauseExhausted {
		t.Errorf("status %v cause %q, expected exhaustion at tick 100", s.Status, s.Cause)
	}
	if s.Energy != 0 {
		t.Errorf("Energy = %g, expected 0", s.Energy)
	}
	if !events.Has(EventExhausted) || !events.Has(EventRedraw) {
		t.Errorf("events = %v, expected exhausted and redraw", events)
	}
}

func TestTickStoppedIsNoop(t *testing.T) {
	s := running(Body{{X: 5, Y: 5}}, DirRight, Cell{X: 6, Y: 5})
	s.Status = Stopped

	next, events := Tick(s, testRules(), farFood())

	if !reflect.DeepEqual(next, s) {
		t.Errorf("Tick() on stopped state changed it: %+v", next)
	}
	if len(events) != 0 {
		t.Errorf("events = %v, expected none", events)
	}
}

func TestTickDoesNotMutateInput(t *testing.T) {
	body := Body{{X: 5, Y: 5}, {X: 4, Y: 5}}
	s := running(body, DirRight, Cell{X: 0, Y: 0})

	Tick(s, testRules(), farFood())

	if !reflect.DeepEqual(s.Snake, Body{{X: 5, Y: 5}, {X: 4, Y: 5}}) {
		t.Errorf("input body changed: %v", s.Snake)
	}
	if s.Energy != 100 || s.Ticks != 0 {
		t.Errorf("input state changed: %+v", s)
	}
}

func TestSteerRejectsReversal(t *testing.T) {
	s := running(Body{{X: 5, Y: 5}}, DirRight, Cell{})

	if got := s.Steer(DirLeft).Direction; got != DirRight {
		t.Errorf("Steer(left) from right = %v, expected right", got)
	}
	if got := s.Steer(DirUp).Direction; got != DirUp {
		t.Errorf("Steer(up) from right = %v, expected up", got)
	}
	if got := s.Steer(DirDown).Direction; got != DirDown {
		t.Errorf("Steer(down) from right = %v, expected down", got)
	}
}
