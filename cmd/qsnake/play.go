package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/qsnake/internal/config"
	"github.com/vovakirdan/qsnake/internal/core"
	"github.com/vovakirdan/qsnake/internal/game/snake"
	"github.com/vovakirdan/qsnake/internal/platform/tui"
	"github.com/vovakirdan/qsnake/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Watch the agent play in the terminal",
	Long: `Start the game with the Q-learning agent in control. The agent loads
its Q-table from disk, keeps learning while it plays, and saves the table
at every episode boundary and on quit.

Controls:
  T            - Toggle training (agent) / manual control
  Arrows/WASD  - Steer the snake in manual mode
  1/2/3        - Slow / normal / fast speed
  P/Esc        - Pause
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit

Examples:
  qsnake play
  qsnake play --seed 42
  qsnake play --qtable ./qtable.json --config ./my-qsnake.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Terminal size for the initial layout; resizes are handled live
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}

	game := snake.New(cfg)
	game.Reset(rt)

	qtablePath := expandHome(flagQTable)
	if qtablePath != "" {
		if loadErr := game.Agent().Load(qtablePath); loadErr != nil {
			log.Warn("could not load Q-table, starting fresh", "error", loadErr)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open episodes database", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, qtablePath, rt)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// expandHome expands a leading ~/ to the user's home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
