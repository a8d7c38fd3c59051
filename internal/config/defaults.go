package config

import (
	_ "embed"
)

//go:embed defaults/qsnake.yaml
var defaultYAML []byte

// Default returns the stock configuration: a 35x30 grid, alpha 0.1,
// gamma 0.9, epsilon 0.5 decaying by 0.99 to a 0.01 floor, and the
// food/death/step reward constants the agent was tuned with.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Width:  35,
			Height: 30,
		},
		Learning: LearningConfig{
			Alpha:        0.1,
			Gamma:        0.9,
			Epsilon:      0.5,
			EpsilonDecay: 0.99,
			EpsilonMin:   0.01,
		},
		Rewards: RewardConfig{
			Food:    20,
			Death:   -100,
			Step:    -0.1,
			Closer:  0.5,
			Farther: -0.5,
		},
		Distance: DistanceConfig{
			Near:   5,
			Medium: 10,
			Far:    15,
		},
		Game: GameConfig{
			ScorePerFood:   10,
			RestartDelayMS: 2000,
			InitialSpeed:   "normal",
		},
		Speeds: SpeedConfig{
			Slow:   200,
			Normal: 100,
			Fast:   50,
		},
	}
}
