package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the hardcoded default configuration.
// It mirrors defaults/snake.yaml and is used when the embedded file is unusable.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			SurfaceSize: 400,
			CellSize:    20,
		},
		Timing: TimingConfig{
			TickIntervalMs: 100,
		},
		Energy: EnergyConfig{
			Initial:      100,
			DecreaseRate: 1.0,
		},
		Spawn: SpawnConfig{
			Margin: 3,
		},
	}
}
