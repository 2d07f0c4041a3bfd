package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/neatza-runners/internal/core"
	"github.com/vovakirdan/neatza-runners/internal/platform/tui"
	"github.com/vovakirdan/neatza-runners/internal/registry"
	"github.com/vovakirdan/neatza-runners/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [character]",
	Short: "Pick a runner and play",
	Long: `Start the character select, or jump straight into a run when a
character is given.

Controls:
  Left/Right, A/D   - Change lane
  Up/W/Space        - Jump
  Down/S            - Slide
  P                 - Pause
  Enter             - Run again (after game over)
  R/Esc             - Back to character select (after game over or paused)
  Tab               - Scores (on character select)
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Start at the base speed, longer obstacle gaps
  normal - Start at 20% difficulty, progresses to max
  hard   - Start at 50% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  neatza play
  neatza play dani
  neatza play ramona --difficulty hard
  neatza play --config ./my-runner.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	// The alt screen owns stdout, so logs go to a file.
	logFile, logPath := openLogFile()
	if logFile != nil {
		defer logFile.Close()
	}
	var logOut io.Writer = io.Discard
	if logFile != nil {
		logOut = logFile
	}
	logger := newLogger(logOut, "neatza")

	var start *registry.Character
	if len(args) == 1 {
		ch, err := registry.Get(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintln(os.Stderr, "Run 'neatza list' to see available runners.")
			os.Exit(1)
		}
		start = &ch
	}

	runnerCfg := loadRunnerConfig(logger)

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Player:   flagPlayer,
	}

	store := openStore(logger)

	model := tui.NewSessionModel(store, runnerCfg, cfg, logger)
	if start != nil {
		model = model.StartWith(*start)
	}

	logger.Info("session started", "player", cfg.Player, "seed", cfg.Seed)
	runErr := tui.RunSession(model)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		if logPath != "" {
			fmt.Fprintf(os.Stderr, "See %s for details.\n", logPath)
		}
		os.Exit(1)
	}
}

// openStore opens the runs database, or returns nil when --db is empty or
// the database cannot be opened. The game still works without storage.
func openStore(logger *log.Logger) *storage.Store {
	if flagDBPath == "" {
		return nil
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		logger.Warn("could not open runs database", "error", err)
		return nil
	}
	return store
}

// openLogFile opens ~/.arcade/neatza.log for appending.
func openLogFile() (*os.File, string) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, ""
	}
	dir := filepath.Join(home, ".arcade")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, ""
	}
	path := filepath.Join(dir, "neatza.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, ""
	}
	return f, path
}
