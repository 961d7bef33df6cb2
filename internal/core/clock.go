package core

import "time"

// Clock tracks the lifecycle of a fixed-interval tick stream.
//
// The clock itself never sleeps or spawns goroutines. The platform schedules
// one tick at a time tagged with the epoch returned by Start or Restart and
// asks Accept before processing it. Stop bumps the epoch, so a tick that was
// already in flight when the stream was stopped or restarted is discarded and
// at most one stream is ever alive.
type Clock struct {
	interval time.Duration
	running  bool
	epoch    uint64
}

// NewClock creates a stopped clock with the given tick interval.
func NewClock(interval time.Duration) *Clock {
	return &Clock{interval: interval}
}

// Interval returns the time between ticks.
func (c *Clock) Interval() time.Duration {
	return c.interval
}

// Running reports whether ticks are currently being scheduled.
func (c *Clock) Running() bool {
	return c.running
}

// Epoch returns the identifier of the current tick stream.
func (c *Clock) Epoch() uint64 {
	return c.epoch
}

// Start begins a new tick stream. It is a no-op returning false when the
// clock is already running.
func (c *Clock) Start() (uint64, bool) {
	if c.running {
		return c.epoch, false
	}
	c.running = true
	c.epoch++
	return c.epoch, true
}

// Stop halts the current tick stream. Calling Stop on a stopped clock is a no-op.
func (c *Clock) Stop() {
	if !c.running {
		return
	}
	c.running = false
	c.epoch++
}

// Restart cancels any running stream and starts a fresh one.
func (c *Clock) Restart() uint64 {
	c.Stop()
	epoch, _ := c.Start()
	return epoch
}

// Accept reports whether a tick tagged with epoch belongs to the live stream.
func (c *Clock) Accept(epoch uint64) bool {
	return c.running && epoch == c.epoch
}
