// neatza is a three-lane endless runner played in the terminal.
//
// Usage:
//
//	neatza play [character]  - Pick a runner and play
//	neatza list              - List the runners
//	neatza scores            - Show top runs, the profile and recent deaths
//	neatza serve             - Start SSH server for remote play
//	neatza sim               - Run a headless autopilot game
//	neatza config            - Print the effective game config
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/neatza.db)
//	--config <path>       - Use a custom runner YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--player <name>       - Profile to play and record under
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/neatza-runners/internal/config"
	"github.com/vovakirdan/neatza-runners/internal/core"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagPlayer     string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "neatza",
	Short: "Neatza Runners - a three-lane endless runner in your terminal",
	Long: `Neatza Runners is a terminal endless runner. Dodge the rest of the
crew across three lanes, collect coins and grab power-ups.

Available commands:
  play     - Pick a runner and play
  list     - Show all runners and their specials
  scores   - View top runs, your profile and recent deaths
  serve    - Start SSH server for remote play
  sim      - Headless autopilot run for benchmarks and seed replays
  config   - Print the effective game config

Examples:
  neatza play
  neatza play cuza --difficulty hard
  neatza serve --ssh :2222
  neatza sim --seed 42 --profile cpu`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/neatza.db", "Path to runs database (empty = no persistence)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", defaultPlayer(), "Profile name scores are stored under")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// defaultPlayer names the local profile after the OS user.
func defaultPlayer() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return core.DefaultConfig().Player
}

// loadRunnerConfig resolves the runner config and applies --difficulty.
// A broken custom file is reported and the defaults are used.
func loadRunnerConfig(logger *log.Logger) config.RunnerConfig {
	cfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		logger.Warn("using default runner config", "error", err)
	}

	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			logger.Warn("unknown difficulty preset, ignoring", "difficulty", flagDifficulty)
		}
		config.ApplyRunnerPreset(&cfg, preset)
	}
	return cfg
}

// newLogger creates a logger writing to w at the --log-level level.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}
