package agent

import (
	"math/rand"
)

// QTable maps a State to one estimated value per action. Unseen states read
// as zero vectors. The table grows unboundedly with unique states
// encountered; there is no eviction.
type QTable map[State][NumActions]float64

// Params holds the learning hyperparameters.
type Params struct {
	Alpha        float64 // Learning rate
	Gamma        float64 // Discount factor
	Epsilon      float64 // Initial exploration rate
	EpsilonDecay float64 // Multiplicative decay per episode
	EpsilonMin   float64 // Exploration floor, never reached zero
}

// DefaultParams returns the stock hyperparameters.
func DefaultParams() Params {
	return Params{
		Alpha:        0.1,
		Gamma:        0.9,
		Epsilon:      0.5,
		EpsilonDecay: 0.99,
		EpsilonMin:   0.01,
	}
}

// Agent is a tabular Q-learning agent. It owns the Q-table exclusively and
// is not safe for concurrent use; the simulation drives it from a single
// logical thread.
type Agent struct {
	table QTable
	rng   *rand.Rand

	alpha        float64
	gamma        float64
	epsilon      float64
	epsilonDecay float64
	epsilonMin   float64
	episodes     int
}

// New creates an agent with the given parameters and RNG.
// A nil rng selects the shared global source.
func New(p Params, rng *rand.Rand) *Agent {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Agent{
		table:        make(QTable),
		rng:          rng,
		alpha:        p.Alpha,
		gamma:        p.Gamma,
		epsilon:      p.Epsilon,
		epsilonDecay: p.EpsilonDecay,
		epsilonMin:   p.EpsilonMin,
	}
}

// ValidActions returns the actions whose danger flag is false.
// When every direction is dangerous there is no non-lethal move; all four
// are returned and the caller accepts the lethal tick.
func (a *Agent) ValidActions(s State) []Action {
	valid := make([]Action, 0, NumActions)
	for _, act := range Actions {
		if !s.Danger(act) {
			valid = append(valid, act)
		}
	}
	if len(valid) == 0 {
		return Actions[:]
	}
	return valid
}

// ChooseAction selects an action with an epsilon-greedy policy over the
// valid-action set. Exploration picks uniformly among valid actions. A state
// with no Q-table row also falls back to a uniform pick, since every value
// is tied at zero; otherwise the first maximal valid action in table order
// wins.
func (a *Agent) ChooseAction(s State) Action {
	valid := a.ValidActions(s)

	if a.rng.Float64() < a.epsilon {
		return valid[a.rng.Intn(len(valid))]
	}

	row, ok := a.table[s]
	if !ok {
		return valid[a.rng.Intn(len(valid))]
	}

	best := valid[0]
	bestQ := row[best]
	for _, act := range valid[1:] {
		if row[act] > bestQ {
			best = act
			bestQ = row[act]
		}
	}
	return best
}

// Learn applies the one-step Q-learning update:
//
//	Q[s][a] += alpha * (reward + gamma*max(Q[s']) - Q[s][a])
//
// Missing rows are treated as zero vectors and the full row is written back.
// Must be called exactly once per tick in training mode, after next already
// reflects the tick's consequences.
func (a *Agent) Learn(s State, act Action, reward float64, next State) {
	row := a.table[s]
	current := row[act]
	target := reward + a.gamma*a.maxQ(next)
	row[act] = current + a.alpha*(target-current)
	a.table[s] = row
}

// maxQ returns the maximum value in the row for a state, zero when unseen.
func (a *Agent) maxQ(s State) float64 {
	row, ok := a.table[s]
	if !ok {
		return 0
	}
	max := row[0]
	for _, q := range row[1:] {
		if q > max {
			max = q
		}
	}
	return max
}

// EndEpisode records an episode boundary: the episode counter advances and
// epsilon decays multiplicatively toward the floor, preserving lifelong
// exploration.
func (a *Agent) EndEpisode() {
	a.episodes++
	a.epsilon *= a.epsilonDecay
	if a.epsilon < a.epsilonMin {
		a.epsilon = a.epsilonMin
	}
}

// Epsilon returns the current exploration rate.
func (a *Agent) Epsilon() float64 {
	return a.epsilon
}

// Episodes returns the number of completed episodes, including those
// restored from a snapshot.
func (a *Agent) Episodes() int {
	return a.episodes
}

// Q returns the table row for a state, a zero vector when unseen.
func (a *Agent) Q(s State) [NumActions]float64 {
	return a.table[s]
}

// Known returns the number of distinct states in the table.
func (a *Agent) Known() int {
	return len(a.table)
}
