package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/neatza-runners/internal/games/runner"
	"github.com/vovakirdan/neatza-runners/internal/registry"
	"github.com/vovakirdan/neatza-runners/internal/storage"
)

var (
	flagSimCharacter  string
	flagSimRuns       int
	flagSimMaxTicks   int
	flagSimProfile    string
	flagSimProfileDir string
	flagSimRecord     bool
	flagSimPowerUp    string
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run headless autopilot games",
	Long: `Play runs without a terminal, steered by a simple lane-dodging
autopilot. A fixed --seed replays the same runs exactly, which makes this
useful for benchmarks, profiling and reproducing a death.

Run n uses seed+n. Death reports are logged to stderr; with --record the
runs are also saved to the database under --player.

Examples:
  neatza sim --seed 42
  neatza sim --seed 42 --runs 20 --character cuza
  neatza sim --seed 7 --profile cpu --profile-dir ./prof
  neatza sim --seed 7 --log-level debug
  neatza sim --seed 7 --powerup shield`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagSimCharacter, "character", "dani", "Runner to play")
	simCmd.Flags().IntVar(&flagSimRuns, "runs", 1, "Number of runs")
	simCmd.Flags().IntVar(&flagSimMaxTicks, "max-ticks", 216000, "Tick limit per run (one hour at 60 FPS)")
	simCmd.Flags().StringVar(&flagSimProfile, "profile", "", "Write a pprof profile: cpu or mem")
	simCmd.Flags().StringVar(&flagSimProfileDir, "profile-dir", ".", "Directory for profile output")
	simCmd.Flags().BoolVar(&flagSimRecord, "record", false, "Save runs and deaths to the database")
	simCmd.Flags().StringVar(&flagSimPowerUp, "powerup", "", "Start every run with this power-up active")
}

func runSim(_ *cobra.Command, _ []string) {
	logger := newLogger(os.Stderr, "neatza-sim")

	ch, err := registry.Get(flagSimCharacter)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	startPowerUp := runner.PowerUpCount
	if flagSimPowerUp != "" {
		pt, ok := runner.ParsePowerUp(flagSimPowerUp)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown power-up %q\n", flagSimPowerUp)
			os.Exit(1)
		}
		startPowerUp = pt
	}

	var mode func(*profile.Profile)
	switch flagSimProfile {
	case "":
	case "cpu":
		mode = profile.CPUProfile
	case "mem":
		mode = profile.MemProfileAllocs
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown profile %q (want cpu or mem)\n", flagSimProfile)
		os.Exit(1)
	}

	cfg := loadRunnerConfig(logger)

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var store *storage.Store
	if flagSimRecord {
		store = openStore(logger)
		if store != nil {
			defer store.Close()
		}
	}

	if mode != nil {
		p := profile.Start(mode, profile.ProfilePath(flagSimProfileDir), profile.NoShutdownHook)
		defer p.Stop()
	}

	pilot := runner.NewAutopilot(cfg)
	var totalTicks int
	started := time.Now()

	fmt.Printf("  %-4s  %-20s  %-8s  %-6s  %-9s  %s\n", "Run", "Seed", "Score", "Coins", "Distance", "Ticks")
	for i := 0; i < flagSimRuns; i++ {
		runSeed := seed + int64(i)

		hooks := runner.Hooks{Logger: logger}
		sinks := runner.MultiSink{runner.LogSink{Logger: logger}}
		if store != nil {
			p := store.Profile(flagPlayer)
			hooks.Profile = p
			sinks = append(sinks, p)
		} else {
			hooks.Profile = &runner.MemoryProfile{}
		}
		hooks.Deaths = sinks

		engine := runner.NewEngine(cfg, rand.New(rand.NewSource(runSeed)), hooks)
		world := engine.NewWorld(ch)
		engine.Grant(world, startPowerUp)

		ticks := 0
		for ticks < flagSimMaxTicks && world.Playing() {
			engine.Step(world, pilot.Decide(world.Snapshot()))
			ticks++
		}
		totalTicks += ticks

		ended := ""
		if world.Playing() {
			ended = " (tick limit)"
		}
		fmt.Printf("  %-4d  %-20d  %-8d  %-6d  %-9.0f  %d%s\n",
			i+1, runSeed, world.Stats.Score, world.Stats.Coins, world.Stats.Distance, ticks, ended)

		if store != nil {
			//nolint:errcheck // Best-effort save, the summary is printed regardless
			store.SaveRun(storage.RunEntry{
				Player:    flagPlayer,
				Character: ch.ID,
				Score:     world.Stats.Score,
				Coins:     world.Stats.Coins,
				Distance:  world.Stats.Distance,
			})
		}
	}

	elapsed := time.Since(started)
	fmt.Println()
	fmt.Printf("%d ticks in %s (%.0f ticks/s)\n", totalTicks, elapsed.Round(time.Millisecond),
		float64(totalTicks)/max(elapsed.Seconds(), 1e-9))
}
