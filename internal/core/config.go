package core

import "time"

// RuntimeConfig contains configuration passed to the platform at startup.
type RuntimeConfig struct {
	ScreenW int   // Terminal width in characters
	ScreenH int   // Terminal height in characters
	Seed    int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time
	}
}

// ResolveSeed returns the configured seed, or one derived from the current
// time when the seed is 0.
func (c RuntimeConfig) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
