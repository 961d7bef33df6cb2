package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := decode(defaultSnakeYAML)
	if err != nil {
		t.Fatalf("decode(embedded) failed: %v", err)
	}
	if cfg != DefaultSnakeConfig() {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, DefaultSnakeConfig())
	}
}

func TestDefaultDerivedValues(t *testing.T) {
	cfg := DefaultSnakeConfig()

	if got := cfg.GridSize(); got != 20 {
		t.Errorf("GridSize() = %d, expected 20", got)
	}
	if got := cfg.TickInterval(); got != 100*time.Millisecond {
		t.Errorf("TickInterval() = %v, expected 100ms", got)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() on defaults failed: %v", err)
	}
}

func TestLoadSnakeFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadSnake("")
	if err != nil {
		t.Fatalf("LoadSnake(\"\") failed: %v", err)
	}
	if cfg != DefaultSnakeConfig() {
		t.Errorf("LoadSnake(\"\") = %+v, expected defaults", cfg)
	}
}

func TestLoadSnakeUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".snake")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("timing:\n  tick_interval_ms: 50\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSnake("")
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if cfg.Timing.TickIntervalMs != 50 {
		t.Errorf("TickIntervalMs = %d, expected 50", cfg.Timing.TickIntervalMs)
	}
}

func TestLoadSnakeCustomPathPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	data := "grid:\n  surface_size: 600\nenergy:\n  decrease_rate: 2.5\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}

	if cfg.GridSize() != 30 {
		t.Errorf("GridSize() = %d, expected 30", cfg.GridSize())
	}
	if cfg.Energy.DecreaseRate != 2.5 {
		t.Errorf("DecreaseRate = %g, expected 2.5", cfg.Energy.DecreaseRate)
	}
	// Unspecified values keep their defaults
	if cfg.Energy.Initial != 100 || cfg.Spawn.Margin != 3 {
		t.Errorf("defaults not preserved: %+v", cfg)
	}
}

func TestLoadSnakeCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad yaml", "grid: [unterminated", "failed to parse"},
		{"zero cell size", "grid:\n  cell_size: 0\n", "cell_size"},
		{"negative rate", "energy:\n  decrease_rate: -1\n", "decrease_rate"},
		{"grid too small for margin", "grid:\n  surface_size: 100\n", "spawn margin"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tc.name, " ", "_")+".yaml")
			if err := os.WriteFile(path, []byte(tc.content), 0o600); err != nil {
				t.Fatal(err)
			}

			_, err := LoadSnake(path)
			if err == nil {
				t.Fatal("LoadSnake() should fail")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoadSnakeMissingCustomPath(t *testing.T) {
	_, err := LoadSnake(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("LoadSnake() with a missing file should fail")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultSnakeConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "tick_interval_ms: 100") {
		t.Errorf("Marshal() output missing tick interval:\n%s", data)
	}
}
