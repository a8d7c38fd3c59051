package core

// Action represents a semantic game action, abstracted from physical key
// presses. This allows the game to work with high-level intents rather than
// raw input.
type Action int

const (
	ActionNone        Action = iota
	ActionUp                 // Up arrow, W - steer up (manual mode)
	ActionDown               // Down arrow, S - steer down (manual mode)
	ActionLeft               // Left arrow, A - steer left (manual mode)
	ActionRight              // Right arrow, D - steer right (manual mode)
	ActionPause              // P - pause/unpause simulation
	ActionRestart            // R - restart episode after game over
	ActionQuit               // Q, Ctrl+C - exit session
	ActionTraining           // T - toggle training mode (agent vs manual)
	ActionSpeedSlow          // 1 - 200ms per tick
	ActionSpeedNormal        // 2 - 100ms per tick
	ActionSpeedFast          // 3 - 50ms per tick
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionTraining:
		return "Training"
	case ActionSpeedSlow:
		return "SpeedSlow"
	case ActionSpeedNormal:
		return "SpeedNormal"
	case ActionSpeedFast:
		return "SpeedFast"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
