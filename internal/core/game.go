package core

import "time"

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for deterministic simulation
}

// DefaultRuntimeConfig returns a RuntimeConfig with sensible defaults.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in the driver layer
	}
}

// GameState represents the current state of the game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int     // Current episode score
	HighScore int     // Best episode score this session
	Episode   int     // Completed episode count
	Epsilon   float64 // Agent exploration rate
	Training  bool    // Whether the agent is driving the snake
	GameOver  bool    // Whether the current episode has ended
	Paused    bool    // Whether the simulation is paused
}

// EpisodeResult summarizes one completed episode (reset to game over).
type EpisodeResult struct {
	Score    int     // Final episode score
	Steps    int     // Ticks survived
	SnakeLen int     // Final snake length
	Epsilon  float64 // Exploration rate after the end-of-episode decay
	States   int     // Distinct states in the Q-table
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// EpisodeEnded is true on the tick that transitioned to game over.
	// Episode holds the summary for the driver to persist.
	EpisodeEnded bool
	Episode      EpisodeResult
}

// Game is the interface the platform drives. The game contains pure logic
// with no terminal dependencies; the platform handles input mapping, timing,
// and display.
type Game interface {
	// ID returns a unique identifier used for storage and file naming.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the session.
	// Called once at start; episodes restart internally without Reset.
	Reset(cfg RuntimeConfig)

	// Step advances the simulation by one tick.
	Step(in InputFrame) StepResult

	// Render draws the current state into the provided screen buffer.
	Render(dst *Screen)

	// State returns the current game state.
	State() GameState

	// TickInterval returns the delay before the next tick should fire.
	// The driver reschedules after every tick, so runtime speed changes
	// take effect immediately.
	TickInterval() time.Duration
}
