package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, as YAML.

The configuration is looked up in this order: --config, ~/.snake/config.yaml,
configs/snake.yaml, then the built-in defaults. Missing keys keep their
default values.

Examples:
  snake config
  snake config --config ./snake.yaml
  snake config > ~/.snake/config.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, rules, err := loadRules()
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	if _, err := os.Stdout.Write(data); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "# grid %dx%d cells, tick every %v\n", rules.GridSize, rules.GridSize, rules.TickInterval)
	return nil
}
