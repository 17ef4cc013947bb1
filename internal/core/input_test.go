package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	var f InputFrame

	if f.Has(ActionUp) {
		t.Error("zero-value frame reported an action")
	}

	f.Set(ActionUp)
	f.Set(ActionPause)
	if !f.Has(ActionUp) || !f.Has(ActionPause) {
		t.Error("Has() lost a set action")
	}
	if f.Has(ActionDown) {
		t.Error("Has() reported an action that was never set")
	}

	f.Clear()
	if f.Has(ActionUp) || f.Has(ActionPause) {
		t.Error("Clear() left actions behind")
	}
}

func TestInputFrameDirection(t *testing.T) {
	tests := []struct {
		name    string
		actions []Action
		want    float64
	}{
		{"neither", nil, 0},
		{"up only", []Action{ActionUp}, 1},
		{"down only", []Action{ActionDown}, -1},
		{"both cancel", []Action{ActionUp, ActionDown}, 0},
		{"unrelated action", []Action{ActionPause}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewInputFrame()
			for _, a := range tt.actions {
				f.Set(a)
			}
			if got := f.Direction(); got != tt.want {
				t.Errorf("Direction() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInputFrameCloneIsIndependent(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUp)

	clone := f.Clone()
	clone.Set(ActionDown)
	f.Clear()

	if !clone.Has(ActionUp) || !clone.Has(ActionDown) {
		t.Error("clone lost its actions")
	}
	if f.Has(ActionUp) {
		t.Error("source frame still populated after Clear()")
	}
}

func TestActionString(t *testing.T) {
	if got := ActionRestart.String(); got != "Restart" {
		t.Errorf("ActionRestart.String() = %q, want %q", got, "Restart")
	}
	if got := Action(99).String(); got != "Unknown" {
		t.Errorf("Action(99).String() = %q, want %q", got, "Unknown")
	}
}
