// Package snake implements the Snake environment: it owns the snake and
// food state, advances the simulation one tick at a time, computes rewards,
// and drives the Q-learning agent. Rendering and timing live in the
// platform layer.
package snake

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/qsnake/internal/agent"
	"github.com/vovakirdan/qsnake/internal/config"
	"github.com/vovakirdan/qsnake/internal/core"
)

// Point represents a cell coordinate on the grid.
type Point struct {
	X, Y int
}

func (p Point) add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// manhattan returns the Manhattan distance between two cells.
func manhattan(p, q Point) int {
	return core.Abs(p.X-q.X) + core.Abs(p.Y-q.Y)
}

// delta returns the unit step for a movement direction.
func delta(a agent.Action) Point {
	switch a {
	case agent.Left:
		return Point{X: -1}
	case agent.Right:
		return Point{X: 1}
	case agent.Up:
		return Point{Y: -1}
	case agent.Down:
		return Point{Y: 1}
	default:
		return Point{}
	}
}

// isOpposite reports whether two directions are opposite.
func isOpposite(a, b agent.Action) bool {
	return (a == agent.Left && b == agent.Right) ||
		(a == agent.Right && b == agent.Left) ||
		(a == agent.Up && b == agent.Down) ||
		(a == agent.Down && b == agent.Up)
}

// Speed selects the tick interval.
type Speed int

const (
	SpeedSlow Speed = iota
	SpeedNormal
	SpeedFast
)

// String returns the speed name.
func (s Speed) String() string {
	switch s {
	case SpeedSlow:
		return "slow"
	case SpeedFast:
		return "fast"
	default:
		return "normal"
	}
}

// SpeedFromName parses a speed name, defaulting to normal.
func SpeedFromName(name string) Speed {
	switch name {
	case "slow":
		return SpeedSlow
	case "fast":
		return SpeedFast
	default:
		return SpeedNormal
	}
}

// Game implements the Snake environment with a Q-learning driver.
// It satisfies core.Game for the platform layer.
type Game struct {
	cfg config.Config
	rng *rand.Rand
	ai  *agent.Agent

	tick  uint64
	score int
	high  int
	steps int

	// Snake state, head at index 0
	snake     []Point
	direction agent.Action
	nextDir   agent.Action // Buffered direction for manual mode
	food      Point

	width  int
	height int

	training      bool
	paused        bool
	gameOver      bool
	gameOverTicks int
	speed         Speed

	// Screen layout
	screenW    int
	screenH    int
	hudHeight  int
	mapOffsetX int
	mapOffsetY int
	tooSmall   bool
}

var _ core.Game = (*Game)(nil)

// New creates a Snake game with the given configuration. Training mode
// starts enabled; the agent is created on Reset.
func New(cfg config.Config) *Game {
	if cfg.Grid.Width < 9 || cfg.Grid.Height < 7 {
		cfg.Grid = config.Default().Grid
	}
	return &Game{
		cfg:      cfg,
		width:    cfg.Grid.Width,
		height:   cfg.Grid.Height,
		training: true,
		speed:    SpeedFromName(cfg.Game.InitialSpeed),
	}
}

// ID returns the game identifier used for storage and file naming.
func (g *Game) ID() string {
	return "qsnake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake (Q-learning)"
}

// Agent returns the learning agent. Available after Reset. The caller may
// use it for Q-table persistence but must not mutate it mid-tick.
func (g *Game) Agent() *agent.Agent {
	return g.ai
}

// Reset initializes the session: RNG, agent, layout, and the first episode.
// Episode restarts after game over happen internally without Reset, so the
// learned table survives.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	if g.ai == nil {
		g.ai = agent.New(agent.Params{
			Alpha:        g.cfg.Learning.Alpha,
			Gamma:        g.cfg.Learning.Gamma,
			Epsilon:      g.cfg.Learning.Epsilon,
			EpsilonDecay: g.cfg.Learning.EpsilonDecay,
			EpsilonMin:   g.cfg.Learning.EpsilonMin,
		}, g.rng)
	}
	g.tick = 0
	g.high = 0
	g.hudHeight = 2
	g.Resize(cfg.ScreenW, cfg.ScreenH)
	g.resetEpisode()
}

// Resize updates the screen layout without disturbing the episode.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height

	// Field box is the grid plus a one-cell border.
	requiredW := g.width + 2
	requiredH := g.height + 2 + g.hudHeight
	if g.screenW < requiredW || g.screenH < requiredH {
		g.tooSmall = true
		return
	}
	g.tooSmall = false
	g.mapOffsetX = (g.screenW-requiredW)/2 + 1
	g.mapOffsetY = g.hudHeight + 1
}

// resetEpisode starts a fresh episode: score reset, 3-segment snake heading
// right, new food. The agent and high score carry over.
func (g *Game) resetEpisode() {
	g.score = 0
	g.steps = 0
	g.gameOver = false
	g.gameOverTicks = 0
	g.snake = []Point{
		{X: 5, Y: 5}, // Head
		{X: 4, Y: 5},
		{X: 3, Y: 5},
	}
	g.direction = agent.Right
	g.nextDir = agent.Right
	g.spawnFood()
}

// spawnFood places food at a random cell not occupied by the snake.
func (g *Game) spawnFood() {
	var empty []Point
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			p := Point{X: x, Y: y}
			if !g.isSnakeAt(p) {
				empty = append(empty, p)
			}
		}
	}
	if len(empty) == 0 {
		// Snake fills the board
		g.food = Point{X: -1, Y: -1}
		return
	}
	g.food = empty[g.rng.Intn(len(empty))]
}

// isSnakeAt checks if any snake segment occupies the given cell.
func (g *Game) isSnakeAt(p Point) bool {
	for _, seg := range g.snake {
		if seg == p {
			return true
		}
	}
	return false
}

// outOfBounds checks if a cell lies outside the grid.
func (g *Game) outOfBounds(p Point) bool {
	return p.X < 0 || p.X >= g.width || p.Y < 0 || p.Y >= g.height
}

// Training reports whether the agent is driving the snake.
func (g *Game) Training() bool {
	return g.training
}

// SetTraining switches between agent and manual control.
func (g *Game) SetTraining(on bool) {
	g.training = on
	if !on {
		// Manual control resumes from the current heading
		g.nextDir = g.direction
	}
}

// TickInterval returns the delay before the next tick at the current speed.
func (g *Game) TickInterval() time.Duration {
	var ms int
	switch g.speed {
	case SpeedSlow:
		ms = g.cfg.Speeds.Slow
	case SpeedFast:
		ms = g.cfg.Speeds.Fast
	default:
		ms = g.cfg.Speeds.Normal
	}
	if ms <= 0 {
		ms = 100
	}
	return time.Duration(ms) * time.Millisecond
}

// restartDelayTicks converts the fixed restart delay to ticks at the
// current speed.
func (g *Game) restartDelayTicks() int {
	interval := int(g.TickInterval() / time.Millisecond)
	ticks := g.cfg.Game.RestartDelayMS / interval
	if ticks < 1 {
		ticks = 1
	}
	return ticks
}

// Step advances the game by one tick. Ticking is strictly sequential; each
// call runs to completion before the driver schedules the next.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionTraining) {
		g.SetTraining(!g.training)
	}
	switch {
	case in.Has(core.ActionSpeedSlow):
		g.speed = SpeedSlow
	case in.Has(core.ActionSpeedNormal):
		g.speed = SpeedNormal
	case in.Has(core.ActionSpeedFast):
		g.speed = SpeedFast
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.gameOver {
		if in.Has(core.ActionRestart) {
			g.resetEpisode()
			return core.StepResult{State: g.State()}
		}
		// Episode boundary: fresh episode after the fixed delay
		g.gameOverTicks++
		if g.gameOverTicks >= g.restartDelayTicks() {
			g.resetEpisode()
		}
		return core.StepResult{State: g.State()}
	}

	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if !g.training {
		g.processInput(in)
	}

	return g.advance()
}

// processInput buffers manual direction changes, rejecting instant
// reversals. Only reachable when training mode is off.
func (g *Game) processInput(in core.InputFrame) {
	newDir := g.nextDir
	switch {
	case in.Has(core.ActionLeft):
		newDir = agent.Left
	case in.Has(core.ActionRight):
		newDir = agent.Right
	case in.Has(core.ActionUp):
		newDir = agent.Up
	case in.Has(core.ActionDown):
		newDir = agent.Down
	}
	if !isOpposite(newDir, g.direction) {
		g.nextDir = newDir
	}
}

// advance runs the per-tick protocol: encode, select, move, collide, eat,
// reward, learn.
func (g *Game) advance() core.StepResult {
	state := g.encodeState()

	if g.training {
		g.direction = g.ai.ChooseAction(state)
	} else {
		g.direction = g.nextDir
	}
	action := g.direction

	// Advance the snake: new head in front, tail popped. The just-vacated
	// tail cell is re-appended below when growth triggers, which is what
	// makes moving into it legal in the collision check.
	newHead := g.snake[0].add(delta(g.direction))
	g.snake = append([]Point{newHead}, g.snake...)
	tail := g.snake[len(g.snake)-1]
	g.snake = g.snake[:len(g.snake)-1]

	died := g.outOfBounds(newHead)
	if !died {
		for _, seg := range g.snake[1:] {
			if seg == newHead {
				died = true
				break
			}
		}
	}

	ate := false
	if !died && newHead == g.food {
		ate = true
		g.snake = append(g.snake, tail) // skip the pop: length +1
		g.score += g.cfg.Game.ScorePerFood
		g.spawnFood()
	}
	g.steps++

	if died {
		g.gameOver = true
		g.gameOverTicks = 0
	}

	if g.training {
		reward := g.reward(died, ate)
		next := g.encodeState()
		g.ai.Learn(state, action, reward, next)
	}

	result := core.StepResult{}
	if died {
		if g.score > g.high {
			g.high = g.score
		}
		g.ai.EndEpisode()
		result.EpisodeEnded = true
		result.Episode = core.EpisodeResult{
			Score:    g.score,
			Steps:    g.steps,
			SnakeLen: len(g.snake),
			Epsilon:  g.ai.Epsilon(),
			States:   g.ai.Known(),
		}
	}
	result.State = g.State()
	return result
}

// reward computes the scalar for the transition that just completed. Death
// dominates; otherwise the step cost combines additively with the
// closer/farther shaping (previous head vs. new head against the current
// food) and the food bonus.
func (g *Game) reward(died, ate bool) float64 {
	if died {
		return g.cfg.Rewards.Death
	}

	head := g.snake[0]
	prev := head
	if len(g.snake) > 1 {
		prev = g.snake[1]
	}

	r := g.cfg.Rewards.Step
	current := manhattan(head, g.food)
	before := manhattan(prev, g.food)
	if current < before {
		r += g.cfg.Rewards.Closer
	} else if current > before {
		r += g.cfg.Rewards.Farther
	}
	if ate {
		r += g.cfg.Rewards.Food
	}
	return r
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Score:     g.score,
		HighScore: g.high,
		Training:  g.training,
		GameOver:  g.gameOver,
		Paused:    g.paused,
	}
	if g.ai != nil {
		st.Episode = g.ai.Episodes()
		st.Epsilon = g.ai.Epsilon()
	}
	return st
}
