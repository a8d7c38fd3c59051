package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/qsnake/internal/platform/tui"
	"github.com/vovakirdan/qsnake/internal/storage"
)

var flagScoresTUI bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best recorded episodes",
	Long: `Display the top 10 episodes recorded by play and train sessions.

Examples:
  qsnake scores
  qsnake scores --tui`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Show an interactive scoreboard")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening episodes database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresTUI {
		height := 24
		if _, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			height = h
		}
		if tuiErr := tui.RunScoreboard(store, height); tuiErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", tuiErr)
			os.Exit(1)
		}
		return
	}

	episodes, err := store.TopEpisodes(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving episodes: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Top Episodes - Snake (Q-learning)")
	fmt.Println()

	if len(episodes) == 0 {
		fmt.Println("No episodes recorded yet.")
		fmt.Println()
		fmt.Println("Run 'qsnake play' or 'qsnake train' to record the first one!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-7s  %-7s  %-7s  %-8s  %s\n", "Rank", "Score", "Steps", "Length", "Epsilon", "Date")
	fmt.Printf("  %-4s  %-7s  %-7s  %-7s  %-8s  %s\n", "----", "-----", "-----", "------", "-------", "----")

	for i, e := range episodes {
		dateStr := e.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-7d  %-7d  %-7d  %-8.3f  %s\n", i+1, e.Score, e.Steps, e.SnakeLen, e.Epsilon, dateStr)
	}

	stats, err := store.Stats()
	if err == nil && stats.Episodes > 0 {
		fmt.Println()
		fmt.Printf("Episodes: %d  Best: %d  Avg score: %.1f  Avg steps: %.1f\n",
			stats.Episodes, stats.HighScore, stats.AvgScore, stats.AvgSteps)
	}
}
