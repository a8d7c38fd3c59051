// qsnake is a terminal Snake game played by a tabular Q-learning agent.
//
// Usage:
//
//	qsnake play              - Watch (or steer) the agent in the terminal
//	qsnake train             - Train the agent headless for N episodes
//	qsnake scores            - Show top episodes
//	qsnake serve             - Start SSH server for remote play
//
// Global flags:
//
//	--db <path>      - Episodes database (default: ~/.qsnake/episodes.db)
//	--qtable <path>  - Q-table snapshot (default: ~/.qsnake/qtable.json)
//	--config <path>  - Custom game config YAML
//	--seed <value>   - RNG seed for reproducible runs
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagDBPath string
	flagQTable string
	flagConfig string
	flagSeed   int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "qsnake",
	Short: "Snake driven by a tabular Q-learning agent",
	Long: `qsnake is a terminal Snake game where a Q-learning agent learns to
play across episodes. The learned Q-table persists between runs, so the
agent keeps improving every time you launch it.

Available commands:
  play     - Watch the agent play (press t to take over manually)
  train    - Train headless at full speed for a number of episodes
  scores   - View the best recorded episodes
  serve    - Start SSH server for remote play

Examples:
  qsnake play
  qsnake train --episodes 500
  qsnake scores --tui
  qsnake serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.qsnake/episodes.db", "Path to episodes database")
	rootCmd.PersistentFlags().StringVar(&flagQTable, "qtable", "~/.qsnake/qtable.json", "Path to Q-table snapshot")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(trainCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
