// Package config provides YAML-based configuration loading for qsnake:
// grid geometry, learning hyperparameters, reward shaping, and game pacing.
package config

// Config is the full qsnake configuration.
type Config struct {
	Grid     GridConfig     `yaml:"grid"`
	Learning LearningConfig `yaml:"learning"`
	Rewards  RewardConfig   `yaml:"rewards"`
	Distance DistanceConfig `yaml:"distance"`
	Game     GameConfig     `yaml:"game"`
	Speeds   SpeedConfig    `yaml:"speeds"`
}

// GridConfig defines the board size in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// LearningConfig defines the Q-learning hyperparameters.
type LearningConfig struct {
	Alpha        float64 `yaml:"alpha"`
	Gamma        float64 `yaml:"gamma"`
	Epsilon      float64 `yaml:"epsilon"`
	EpsilonDecay float64 `yaml:"epsilon_decay"`
	EpsilonMin   float64 `yaml:"epsilon_min"`
}

// RewardConfig defines the per-transition reward constants. The closer and
// farther bonuses are combined additively with the step cost each tick.
type RewardConfig struct {
	Food    float64 `yaml:"food"`
	Death   float64 `yaml:"death"`
	Step    float64 `yaml:"step"`
	Closer  float64 `yaml:"closer"`
	Farther float64 `yaml:"farther"`
}

// DistanceConfig defines the Manhattan-distance thresholds (in cells) for
// the near/medium/far state flags. Comparisons are strict, and the flags are
// cumulative: near implies medium implies far.
type DistanceConfig struct {
	Near   int `yaml:"near"`
	Medium int `yaml:"medium"`
	Far    int `yaml:"far"`
}

// GameConfig defines scoring and episode pacing.
type GameConfig struct {
	ScorePerFood   int    `yaml:"score_per_food"`
	RestartDelayMS int    `yaml:"restart_delay_ms"`
	InitialSpeed   string `yaml:"initial_speed"` // "slow", "normal", "fast"
}

// SpeedConfig defines the selectable tick intervals in milliseconds.
type SpeedConfig struct {
	Slow   int `yaml:"slow"`
	Normal int `yaml:"normal"`
	Fast   int `yaml:"fast"`
}
