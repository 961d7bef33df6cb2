// Package config provides YAML-based game configuration loading for the
// snake game. Values are read once at startup and are not runtime-tunable.
package config

import (
	"errors"
	"fmt"
	"time"
)

// SnakeConfig contains all configuration for the game.
type SnakeConfig struct {
	Grid   GridConfig   `yaml:"grid"`
	Timing TimingConfig `yaml:"timing"`
	Energy EnergyConfig `yaml:"energy"`
	Spawn  SpawnConfig  `yaml:"spawn"`
}

// GridConfig defines the playfield geometry.
type GridConfig struct {
	SurfaceSize int `yaml:"surface_size"` // Square drawing surface edge, in pixels
	CellSize    int `yaml:"cell_size"`    // Pixels per cell
}

// TimingConfig defines the tick rate.
type TimingConfig struct {
	TickIntervalMs int `yaml:"tick_interval_ms"`
}

// EnergyConfig defines the energy resource.
type EnergyConfig struct {
	Initial      float64 `yaml:"initial"`       // Energy at spawn and after eating
	DecreaseRate float64 `yaml:"decrease_rate"` // Energy lost per tick
}

// SpawnConfig defines where a fresh snake may appear.
type SpawnConfig struct {
	Margin int `yaml:"margin"` // Minimum cells between spawn point and any edge
}

// GridSize returns the number of cells along each edge of the square grid.
func (c SnakeConfig) GridSize() int {
	if c.Grid.CellSize <= 0 {
		return 0
	}
	return c.Grid.SurfaceSize / c.Grid.CellSize
}

// TickInterval returns the configured tick interval as a duration.
func (c SnakeConfig) TickInterval() time.Duration {
	return time.Duration(c.Timing.TickIntervalMs) * time.Millisecond
}

// Validate reports every value that would make the game unplayable.
func (c SnakeConfig) Validate() error {
	var errs []error

	if c.Grid.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("grid.cell_size must be positive, got %d", c.Grid.CellSize))
	}
	if c.Grid.SurfaceSize <= 0 {
		errs = append(errs, fmt.Errorf("grid.surface_size must be positive, got %d", c.Grid.SurfaceSize))
	}
	if c.Timing.TickIntervalMs <= 0 {
		errs = append(errs, fmt.Errorf("timing.tick_interval_ms must be positive, got %d", c.Timing.TickIntervalMs))
	}
	if c.Energy.Initial <= 0 {
		errs = append(errs, fmt.Errorf("energy.initial must be positive, got %g", c.Energy.Initial))
	}
	if c.Energy.DecreaseRate <= 0 {
		errs = append(errs, fmt.Errorf("energy.decrease_rate must be positive, got %g", c.Energy.DecreaseRate))
	}
	if c.Spawn.Margin < 0 {
		errs = append(errs, fmt.Errorf("spawn.margin must not be negative, got %d", c.Spawn.Margin))
	}
	if grid := c.GridSize(); c.Grid.CellSize > 0 && grid <= 2*c.Spawn.Margin {
		errs = append(errs, fmt.Errorf("grid of %d cells leaves no room for a spawn margin of %d", grid, c.Spawn.Margin))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid snake config: %w", errors.Join(errs...))
	}
	return nil
}
