package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neatza-runners/internal/config"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective runner config",
	Long: `Print the runner config as YAML, after the search order and
--difficulty have been applied. Save the output to
~/.arcade/configs/runner.yaml or ./configs/runner.yaml to tune the game.

Examples:
  neatza config
  neatza config --difficulty hard
  neatza config --defaults > ~/.arcade/configs/runner.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in defaults instead")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagConfigDefaults {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	logger := newLogger(os.Stderr, "neatza")
	cfg := loadRunnerConfig(logger)

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
