package agent

import (
	"math"
	"math/rand"
	"testing"
)

func newTestAgent(epsilon float64, seed int64) *Agent {
	p := DefaultParams()
	p.Epsilon = epsilon
	return New(p, rand.New(rand.NewSource(seed)))
}

func TestValidActionsFiltersDanger(t *testing.T) {
	a := newTestAgent(0, 1)

	s := State{DangerLeft: true, DangerUp: true}
	valid := a.ValidActions(s)

	if len(valid) != 2 {
		t.Fatalf("Expected 2 valid actions, got %d: %v", len(valid), valid)
	}
	for _, act := range valid {
		if act != Right && act != Down {
			t.Errorf("Unexpected valid action %v", act)
		}
	}
}

func TestValidActionsNeverEmpty(t *testing.T) {
	a := newTestAgent(0, 1)

	// All four directions dangerous: the move is lethal either way, but the
	// agent must still produce an action
	s := State{DangerLeft: true, DangerRight: true, DangerUp: true, DangerDown: true}
	valid := a.ValidActions(s)

	if len(valid) != NumActions {
		t.Fatalf("Expected all %d actions as fallback, got %d", NumActions, len(valid))
	}
}

func TestChooseActionGreedy(t *testing.T) {
	a := newTestAgent(0, 1) // epsilon 0: always exploit

	s := State{FoodRight: true}
	a.table[s] = [NumActions]float64{0.1, 0.9, 0.3, 0.2}

	for i := 0; i < 50; i++ {
		if got := a.ChooseAction(s); got != Right {
			t.Fatalf("Expected greedy pick Right, got %v", got)
		}
	}
}

func TestChooseActionGreedySkipsDangerous(t *testing.T) {
	a := newTestAgent(0, 1)

	// Right has the best value but is dangerous; the best valid action wins
	s := State{DangerRight: true}
	a.table[s] = [NumActions]float64{0.1, 5.0, 0.3, 0.2}

	if got := a.ChooseAction(s); got != Up {
		t.Errorf("Expected Up (best non-dangerous), got %v", got)
	}
}

func TestChooseActionUnseenStateIsUniform(t *testing.T) {
	a := newTestAgent(0, 42) // epsilon 0, but the state has no row

	s := State{DangerDown: true}
	seen := map[Action]int{}
	for i := 0; i < 200; i++ {
		seen[a.ChooseAction(s)]++
	}

	if seen[Down] > 0 {
		t.Error("Dangerous action chosen for unseen state")
	}
	// All three valid actions should appear over 200 draws
	for _, act := range []Action{Left, Right, Up} {
		if seen[act] == 0 {
			t.Errorf("Action %v never chosen in uniform fallback", act)
		}
	}
}

func TestChooseActionExploreStaysValid(t *testing.T) {
	a := newTestAgent(1.0, 7) // always explore

	s := State{DangerLeft: true, DangerRight: true}
	a.table[s] = [NumActions]float64{9, 9, 0, 0}

	for i := 0; i < 200; i++ {
		got := a.ChooseAction(s)
		if got == Left || got == Right {
			t.Fatalf("Exploration picked dangerous action %v", got)
		}
	}
}

func TestLearnSingleUpdate(t *testing.T) {
	a := newTestAgent(0, 1)

	s := State{FoodRight: true}
	next := State{FoodLeft: true}
	a.table[next] = [NumActions]float64{0, 2.0, 0, 0}

	// Q[s][Right] = 0 + 0.1*(1.0 + 0.9*2.0 - 0) = 0.28
	a.Learn(s, Right, 1.0, next)

	got := a.Q(s)[Right]
	want := 0.28
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Q after update = %v, expected %v", got, want)
	}

	// Other actions in the row stay at zero
	for _, act := range []Action{Left, Up, Down} {
		if a.Q(s)[act] != 0 {
			t.Errorf("Q[%v] = %v, expected 0", act, a.Q(s)[act])
		}
	}
}

func TestLearnConvergesTowardTarget(t *testing.T) {
	a := newTestAgent(0, 1)

	s := State{FoodNear: true}
	terminal := State{DangerLeft: true, DangerRight: true, DangerUp: true, DangerDown: true}

	// Repeated identical transitions should drive the value toward
	// reward + gamma*0 = 5
	for i := 0; i < 500; i++ {
		a.Learn(s, Up, 5.0, terminal)
	}

	got := a.Q(s)[Up]
	if math.Abs(got-5.0) > 0.01 {
		t.Errorf("Q converged to %v, expected ~5.0", got)
	}
}

func TestLearnCreatesRow(t *testing.T) {
	a := newTestAgent(0, 1)

	s := State{FoodAbove: true}
	if a.Known() != 0 {
		t.Fatalf("New agent should know 0 states, got %d", a.Known())
	}

	a.Learn(s, Left, -0.1, State{})
	if a.Known() != 1 {
		t.Errorf("Expected 1 known state after Learn, got %d", a.Known())
	}
}

func TestEndEpisodeDecay(t *testing.T) {
	a := newTestAgent(0.5, 1)

	a.EndEpisode()
	if math.Abs(a.Epsilon()-0.495) > 1e-9 {
		t.Errorf("Epsilon after one episode = %v, expected 0.495", a.Epsilon())
	}
	if a.Episodes() != 1 {
		t.Errorf("Episodes = %d, expected 1", a.Episodes())
	}
}

func TestEndEpisodeFloor(t *testing.T) {
	a := newTestAgent(0.5, 1)

	for i := 0; i < 10000; i++ {
		a.EndEpisode()
	}

	if a.Epsilon() != a.epsilonMin {
		t.Errorf("Epsilon should rest at the floor %v, got %v", a.epsilonMin, a.Epsilon())
	}
}

func TestStateString(t *testing.T) {
	s := State{DangerLeft: true, FoodRight: true, FoodFar: true}
	got := s.String()
	want := "10001000001"
	if got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
	if len(got) != 11 {
		t.Errorf("Bit string length = %d, expected 11", len(got))
	}
}
