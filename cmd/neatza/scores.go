package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/neatza-runners/internal/platform/tui"
	"github.com/vovakirdan/neatza-runners/internal/registry"
	"github.com/vovakirdan/neatza-runners/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresTUI   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show top runs, your profile and recent deaths",
	Long: `Display the top runs on this machine, the high score and coin total
of the current profile, and the obstacles that ended its last runs.

Examples:
  neatza scores
  neatza scores --player ana --limit 20
  neatza scores --tui
  neatza scores --player ana --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse the boards interactively")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the recorded runs of --player")
}

func runScores(cmd *cobra.Command, args []string) {
	if flagDBPath == "" {
		fmt.Fprintln(os.Stderr, "Error: scores need a database, --db is empty")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearRuns(flagPlayer); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared the runs of %s.\n", flagPlayer)
		return
	}

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if _, err := tui.RunScoreboard(store, flagPlayer, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	runs, err := store.TopRuns("", flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	fmt.Println("Top Runs - Neatza Runners")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'neatza play' to set the first high score!")
	} else {
		fmt.Printf("  %-4s  %-12s  %-10s  %-8s  %-6s  %s\n", "Rank", "Player", "Runner", "Score", "Coins", "Date")
		fmt.Printf("  %-4s  %-12s  %-10s  %-8s  %-6s  %s\n", "----", "------", "------", "-----", "-----", "----")
		for i, r := range runs {
			dateStr := r.CreatedAt.Format("2006-01-02 15:04")
			fmt.Printf("  %-4d  %-12s  %-10s  %-8d  %-6d  %s\n", i+1, r.Player, displayName(r.Character), r.Score, r.Coins, dateStr)
		}
	}

	// Profile of the current player
	fmt.Println()
	rec, err := store.ProfileRecord(flagPlayer)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving profile: %v\n", err)
		return
	}
	fmt.Printf("Profile %s: best %d, %d coins\n", flagPlayer, rec.HighScore, rec.TotalCoins)

	if stats, err := store.GetRunStats(flagPlayer); err == nil && stats.RunsCount > 0 {
		fmt.Printf("  %d runs, average score %.0f, last played %s\n",
			stats.RunsCount, stats.AvgScore, stats.LastPlayed.Format("2006-01-02 15:04"))
	}

	deaths, err := store.RecentDeaths(flagPlayer, 5)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving deaths: %v\n", err)
		return
	}
	if len(deaths) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Recent deaths:")
	for _, d := range deaths {
		state := "running"
		switch {
		case d.Jumping:
			state = "jumping"
		case d.Sliding:
			state = "sliding"
		}
		fmt.Printf("  %s  %s hit by %s in lane %d while %s (score %d, frame %d)\n",
			d.CreatedAt.Format("2006-01-02 15:04"), displayName(d.Character), displayName(d.Killer),
			d.Lane+1, state, d.Score, d.Frame)
		for _, o := range d.Obstacles {
			fmt.Printf("      %-10s lane %d  x=%.0f y=%.0f  %.0fx%.0f\n",
				displayName(o.Character), o.Lane+1, o.X, o.Y, o.Width, o.Height)
		}
	}
}

// displayName returns the short name of a character ID.
func displayName(id string) string {
	if ch, err := registry.Get(id); err == nil {
		return ch.Name
	}
	return id
}
