package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/qsnake/internal/config"
	"github.com/vovakirdan/qsnake/internal/core"
	"github.com/vovakirdan/qsnake/internal/game/snake"
	"github.com/vovakirdan/qsnake/internal/storage"
)

var (
	flagEpisodes int
	flagLogEvery int
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train the agent headless",
	Long: `Run training episodes at full speed without rendering. The Q-table is
loaded before training, saved at regular checkpoints, and saved again when
the run finishes. Episode results are recorded to the database so they show
up in 'qsnake scores'.

Examples:
  qsnake train --episodes 500
  qsnake train --episodes 2000 --log-every 100
  qsnake train --episodes 100 --seed 42 --qtable ./qtable.json`,
	Args: cobra.NoArgs,
	Run:  runTrain,
}

func init() {
	trainCmd.Flags().IntVar(&flagEpisodes, "episodes", 100, "Number of episodes to train")
	trainCmd.Flags().IntVar(&flagLogEvery, "log-every", 10, "Log progress every N episodes")
}

func runTrain(_ *cobra.Command, _ []string) {
	if flagEpisodes < 1 {
		fmt.Fprintln(os.Stderr, "Error: --episodes must be at least 1")
		os.Exit(1)
	}
	logEvery := flagLogEvery
	if logEvery < 1 {
		logEvery = 1
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "qsnake-train",
	})

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// Headless: the screen only needs to fit the field so stepping is not
	// blocked by the too-small guard.
	rt := core.RuntimeConfig{
		ScreenW: cfg.Grid.Width + 2,
		ScreenH: cfg.Grid.Height + 4,
		Seed:    seed,
	}

	game := snake.New(cfg)
	game.Reset(rt)

	qtablePath := expandHome(flagQTable)
	if qtablePath != "" {
		if loadErr := game.Agent().Load(qtablePath); loadErr != nil {
			logger.Warn("could not load Q-table, starting fresh", "error", loadErr)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open episodes database", "error", err)
		store = nil
	}

	logger.Info("training started",
		"episodes", flagEpisodes,
		"seed", seed,
		"epsilon", game.Agent().Epsilon(),
		"states", game.Agent().Known(),
	)

	start := time.Now()
	frame := core.NewInputFrame()
	best := 0

	for done := 0; done < flagEpisodes; {
		result := game.Step(frame)
		frame.Clear()

		if !result.EpisodeEnded {
			continue
		}
		done++
		// Skip the game-over delay on the next tick
		frame.Set(core.ActionRestart)

		if result.Episode.Score > best {
			best = result.Episode.Score
		}
		if store != nil {
			//nolint:errcheck // Best-effort save, training continues regardless
			store.SaveEpisode(result.Episode)
		}

		if done%logEvery == 0 {
			logger.Info("progress",
				"episode", done,
				"score", result.Episode.Score,
				"steps", result.Episode.Steps,
				"epsilon", fmt.Sprintf("%.3f", result.Episode.Epsilon),
				"states", result.Episode.States,
			)
			if qtablePath != "" {
				if saveErr := game.Agent().Save(qtablePath); saveErr != nil {
					logger.Warn("could not save Q-table checkpoint", "error", saveErr)
				}
			}
		}
	}

	if qtablePath != "" {
		if saveErr := game.Agent().Save(qtablePath); saveErr != nil {
			logger.Error("could not save Q-table", "error", saveErr)
		}
	}
	if store != nil {
		store.Close()
	}

	logger.Info("training complete",
		"episodes", flagEpisodes,
		"best", best,
		"epsilon", fmt.Sprintf("%.3f", game.Agent().Epsilon()),
		"states", game.Agent().Known(),
		"elapsed", time.Since(start).Round(time.Millisecond),
	)
}
