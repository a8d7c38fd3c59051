package snake

// Phase represents the current episode phase.
type Phase string

const (
	PhasePlaying     Phase = "playing"
	PhaseGameOver    Phase = "game_over"
	PhasePaused      Phase = "paused"
	PhasePausedSmall Phase = "paused_small_window"
)

// Snapshot captures the observable game state for determinism testing.
type Snapshot struct {
	Tick      uint64
	Episode   int
	Score     int
	HighScore int
	SnakeLen  int
	HeadX     int
	HeadY     int
	Dir       string
	FoodX     int
	FoodY     int
	Epsilon   float64
	Training  bool
	Speed     string
	Phase     Phase
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	phase := PhasePlaying
	switch {
	case g.tooSmall:
		phase = PhasePausedSmall
	case g.gameOver:
		phase = PhaseGameOver
	case g.paused:
		phase = PhasePaused
	}

	headX, headY := 0, 0
	if len(g.snake) > 0 {
		headX = g.snake[0].X
		headY = g.snake[0].Y
	}

	snap := Snapshot{
		Tick:      g.tick,
		Score:     g.score,
		HighScore: g.high,
		SnakeLen:  len(g.snake),
		HeadX:     headX,
		HeadY:     headY,
		Dir:       g.direction.String(),
		FoodX:     g.food.X,
		FoodY:     g.food.Y,
		Training:  g.training,
		Speed:     g.speed.String(),
		Phase:     phase,
	}
	if g.ai != nil {
		snap.Episode = g.ai.Episodes()
		snap.Epsilon = g.ai.Epsilon()
	}
	return snap
}
