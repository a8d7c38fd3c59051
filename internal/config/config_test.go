package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultValues(t *testing.T) {
	cfg := Default()

	if cfg.Grid.Width != 35 || cfg.Grid.Height != 30 {
		t.Errorf("Default grid = %dx%d, expected 35x30", cfg.Grid.Width, cfg.Grid.Height)
	}
	if cfg.Learning.Alpha != 0.1 || cfg.Learning.Gamma != 0.9 {
		t.Errorf("Default alpha/gamma = %v/%v, expected 0.1/0.9", cfg.Learning.Alpha, cfg.Learning.Gamma)
	}
	if cfg.Learning.Epsilon != 0.5 || cfg.Learning.EpsilonDecay != 0.99 || cfg.Learning.EpsilonMin != 0.01 {
		t.Errorf("Default epsilon schedule = %+v", cfg.Learning)
	}
	if cfg.Rewards.Food != 20 || cfg.Rewards.Death != -100 {
		t.Errorf("Default food/death rewards = %v/%v, expected 20/-100", cfg.Rewards.Food, cfg.Rewards.Death)
	}
	if cfg.Rewards.Step != -0.1 || cfg.Rewards.Closer != 0.5 || cfg.Rewards.Farther != -0.5 {
		t.Errorf("Default shaping rewards = %+v", cfg.Rewards)
	}
	if cfg.Distance.Near != 5 || cfg.Distance.Medium != 10 || cfg.Distance.Far != 15 {
		t.Errorf("Default distance thresholds = %+v", cfg.Distance)
	}
	if cfg.Game.ScorePerFood != 10 {
		t.Errorf("Default score per food = %d, expected 10", cfg.Game.ScorePerFood)
	}
	if cfg.Speeds.Slow != 200 || cfg.Speeds.Normal != 100 || cfg.Speeds.Fast != 50 {
		t.Errorf("Default speeds = %+v", cfg.Speeds)
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		t.Fatalf("Embedded YAML does not parse: %v", err)
	}

	if cfg != Default() {
		t.Errorf("Embedded defaults drifted from Default():\n%+v\nvs\n%+v", cfg, Default())
	}
}

func TestLoadCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "custom.yaml")

	custom := `
grid:
  width: 20
  height: 15
learning:
  alpha: 0.2
  gamma: 0.8
  epsilon: 0.9
  epsilon_decay: 0.95
  epsilon_min: 0.05
rewards:
  food: 10
  death: -50
  step: -0.2
  closer: 1.0
  farther: -1.0
distance:
  near: 3
  medium: 6
  far: 9
game:
  score_per_food: 5
  restart_delay_ms: 1000
  initial_speed: fast
speeds:
  slow: 300
  normal: 150
  fast: 75
`
	if err := os.WriteFile(path, []byte(custom), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Grid.Width != 20 || cfg.Grid.Height != 15 {
		t.Errorf("Grid = %dx%d, expected 20x15", cfg.Grid.Width, cfg.Grid.Height)
	}
	if cfg.Learning.Alpha != 0.2 {
		t.Errorf("Alpha = %v, expected 0.2", cfg.Learning.Alpha)
	}
	if cfg.Rewards.Death != -50 {
		t.Errorf("Death = %v, expected -50", cfg.Rewards.Death)
	}
	if cfg.Game.InitialSpeed != "fast" {
		t.Errorf("InitialSpeed = %q, expected fast", cfg.Game.InitialSpeed)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("Load() with an explicit missing path should fail")
	}
}

func TestLoadBadYAML(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "bad.yaml")
	if err := os.WriteFile(path, []byte("grid: [not: a map"), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() with malformed YAML should fail")
	}
}
