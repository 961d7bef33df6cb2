// snake is a terminal snake game with an energy meter.
//
// Usage:
//
//	snake play      - Play in this terminal
//	snake serve     - Start SSH server for remote play
//	snake config    - Print the effective configuration
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Load configuration from a YAML file
//	--log-level <level>  - debug, info, warn or error (default: info)
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - steer, eat and keep your energy up",
	Long: `Snake is a terminal snake game. The snake loses energy every tick and
refills it by eating; running out of energy, hitting a wall or biting
yourself ends the run.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  snake play
  snake play --seed 42
  snake play --config ./snake.yaml
  snake serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadRules loads the configuration named by --config and derives the rules.
func loadRules() (config.SnakeConfig, snake.Rules, error) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return cfg, snake.Rules{}, err
	}
	return cfg, snake.RulesFromConfig(cfg), nil
}

// newLogger builds the logger described by --log-level and --log-file.
// Without a log file, output goes to fallback. The returned function closes
// the log file, if any.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	out := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if openErr != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", openErr)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		Level:           level,
		Prefix:          prefix,
		ReportTimestamp: true,
	})
	return logger, closeFn, nil
}
