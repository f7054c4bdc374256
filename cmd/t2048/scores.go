package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresRecent bool
	flagInteractive  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show finished games and the best score",
	Long: `Display the best finished games of a profile.

Examples:
  t2048 scores
  t2048 scores --limit 20
  t2048 scores --recent
  t2048 scores --profile ssh:alice
  t2048 scores -i`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of games to show")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "Show the most recent games instead of the best")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse the scoreboard in the terminal UI")
}

func runScores(cmd *cobra.Command, _ []string) {
	cfg := loadConfig(cmd)
	profile := cfg.Storage.Profile

	store := mustOpenStore(cfg)
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, profile, width, height); err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	title := "High Scores"
	var (
		games []storage.GameRecord
		err   error
	)
	if flagScoresRecent {
		title = "Recent Games"
		games, err = store.RecentGames(profile, flagScoresLimit)
	} else {
		games, err = store.TopGames(profile, flagScoresLimit)
	}
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving games: %v\n", err)
		os.Exit(1)
	}

	// Display games
	fmt.Printf("%s - 2048 (%s)\n", title, profile)
	fmt.Println()

	if len(games) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Play 't2048' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-9s  %s\n", "#", "Score", "Tile", "Moves", "Result", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-9s  %s\n", "-", "-----", "----", "-----", "------", "----")

	for i, g := range games {
		dateStr := g.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-6d  %-6d  %-9s  %s\n", i+1, g.Score, g.MaxTile(), g.Moves, result(g), dateStr)
	}

	// Show best score and totals
	fmt.Println()
	if best, err := store.BestScore(profile); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
	if stats, err := store.Stats(profile); err == nil && stats.GamesCount > 0 {
		fmt.Printf("Games: %d, won: %d, average: %.0f\n", stats.GamesCount, stats.Wins, stats.AvgScore)
	}
}

func result(g storage.GameRecord) string {
	switch {
	case g.Won:
		return "won"
	case g.Outcome == storage.OutcomeAbandoned:
		return "abandoned"
	default:
		return "over"
	}
}
