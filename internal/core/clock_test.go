package core

import (
	"testing"
	"time"
)

func TestClockStartIsIdempotent(t *testing.T) {
	c := NewClock(100 * time.Millisecond)

	if c.Running() {
		t.Fatal("new clock should be stopped")
	}

	epoch, ok := c.Start()
	if !ok {
		t.Fatal("Start() on stopped clock should succeed")
	}

	again, ok := c.Start()
	if ok {
		t.Error("second Start() should be a no-op")
	}
	if again != epoch {
		t.Errorf("second Start() changed epoch: %d vs %d", again, epoch)
	}
	if !c.Accept(epoch) {
		t.Error("live epoch should be accepted")
	}
}

func TestClockStopDropsInFlightTick(t *testing.T) {
	c := NewClock(100 * time.Millisecond)
	epoch, _ := c.Start()

	c.Stop()
	if c.Accept(epoch) {
		t.Error("tick from a stopped stream should be rejected")
	}

	// Stopping twice does not disturb anything
	c.Stop()
	if c.Running() {
		t.Error("clock should stay stopped")
	}
}

func TestClockRestartLeavesSingleStream(t *testing.T) {
	c := NewClock(100 * time.Millisecond)
	first, _ := c.Start()
	second := c.Restart()

	if first == second {
		t.Fatal("Restart() should begin a new epoch")
	}
	if c.Accept(first) {
		t.Error("old stream should be rejected after restart")
	}
	if !c.Accept(second) {
		t.Error("new stream should be accepted after restart")
	}

	// Restart from stopped also starts
	c.Stop()
	third := c.Restart()
	if !c.Running() || !c.Accept(third) {
		t.Error("Restart() from stopped should start a live stream")
	}
}

func TestClockInterval(t *testing.T) {
	c := NewClock(250 * time.Millisecond)
	if c.Interval() != 250*time.Millisecond {
		t.Errorf("Interval() = %v, expected 250ms", c.Interval())
	}
}
