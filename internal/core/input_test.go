package core

import "testing"

func TestInputFrameSetHas(t *testing.T) {
	f := NewInputFrame()

	if f.Has(ActionUp) {
		t.Error("New frame should have no actions")
	}

	f.Set(ActionUp)
	f.Set(ActionPause)

	if !f.Has(ActionUp) || !f.Has(ActionPause) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionDown) {
		t.Error("Unset action reported as present")
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Set(ActionRestart)

	f.Clear()
	if f.Has(ActionLeft) || f.Has(ActionRestart) {
		t.Error("Clear should remove all actions")
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRight)

	c := f.Clone()
	if !c.Has(ActionRight) {
		t.Error("Clone should carry the original's actions")
	}

	// Mutating the clone must not touch the original
	c.Set(ActionQuit)
	if f.Has(ActionQuit) {
		t.Error("Clone should be independent of the original")
	}
}

func TestActionString(t *testing.T) {
	cases := map[Action]string{
		ActionUp:      "Up",
		ActionDown:    "Down",
		ActionLeft:    "Left",
		ActionRight:   "Right",
		ActionPause:   "Pause",
		ActionRestart: "Restart",
	}
	for action, want := range cases {
		if got := action.String(); got != want {
			t.Errorf("%v.String() = %q, expected %q", int(action), got, want)
		}
	}
}
