// Package agent implements the tabular Q-learning core that drives the
// snake: state representation, epsilon-greedy action selection restricted to
// non-lethal moves, the one-step TD update, and Q-table persistence.
// It knows nothing about rendering or timing.
package agent

// Action is one of the four absolute movement directions.
// The order is fixed and index-aligned with the State danger flags.
type Action int

const (
	Left Action = iota
	Right
	Up
	Down
)

// NumActions is the size of the action space.
const NumActions = 4

// Actions lists all actions in canonical order.
var Actions = [NumActions]Action{Left, Right, Up, Down}

// String returns the action name.
func (a Action) String() string {
	switch a {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// State is the agent's sole perceptual input: a lossy, hand-designed
// 11-flag abstraction of the full board. Field order is fixed.
//
// The distance flags are cumulative by construction: FoodNear implies
// FoodMedium implies FoodFar. They are deliberately not mutually exclusive;
// the learner depends on this encoding staying stable.
type State struct {
	// Danger flags: the adjacent cell one step in that direction is
	// occupied by a snake segment or lies outside the grid.
	DangerLeft  bool `json:"dl"`
	DangerRight bool `json:"dr"`
	DangerUp    bool `json:"du"`
	DangerDown  bool `json:"dd"`

	// Relative food direction, strict comparison per axis. Equal
	// coordinates leave both flags of that axis false.
	FoodRight bool `json:"fr"`
	FoodLeft  bool `json:"fl"`
	FoodBelow bool `json:"fb"`
	FoodAbove bool `json:"fa"`

	// Manhattan-distance thresholds, nested loosest-last.
	FoodNear   bool `json:"near"`
	FoodMedium bool `json:"medium"`
	FoodFar    bool `json:"far"`
}

// Danger returns the danger flag corresponding to an action.
func (s State) Danger(a Action) bool {
	switch a {
	case Left:
		return s.DangerLeft
	case Right:
		return s.DangerRight
	case Up:
		return s.DangerUp
	case Down:
		return s.DangerDown
	default:
		return true
	}
}

// String renders the state as an 11-character bit string in field order,
// useful for logs and stable snapshot ordering.
func (s State) String() string {
	flags := [11]bool{
		s.DangerLeft, s.DangerRight, s.DangerUp, s.DangerDown,
		s.FoodRight, s.FoodLeft, s.FoodBelow, s.FoodAbove,
		s.FoodNear, s.FoodMedium, s.FoodFar,
	}
	buf := make([]byte, len(flags))
	for i, f := range flags {
		if f {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}
	return string(buf)
}
