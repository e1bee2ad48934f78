package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := InputOf(ActionFlip, ActionNone)

	if !f.Has(ActionFlip) {
		t.Error("frame should contain Flip")
	}
	if f.Has(ActionNone) {
		t.Error("ActionNone should never be recorded")
	}
	if f.Has(ActionQuit) || f.Empty() {
		t.Errorf("unexpected contents %+v", f)
	}

	c := f
	f.Set(ActionQuit)
	if c.Has(ActionQuit) {
		t.Error("copies should be independent")
	}

	var zero InputFrame
	if !zero.Empty() || zero.Has(ActionQuit) {
		t.Error("zero frame has no actions")
	}
	zero.Set(Action(42))
	if !zero.Empty() {
		t.Error("unknown actions are ignored")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:  "None",
		ActionFlip:  "Flip",
		ActionQuit:  "Quit",
		Action(-1):  "Unknown",
		Action(100): "Unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, want %q", int(a), got, want)
		}
	}
}

func TestStepResultHas(t *testing.T) {
	r := StepResult{Events: []Event{EventFlip, EventDeath}}
	if !r.Has(EventDeath) || r.Has(EventRestart) {
		t.Errorf("Has mismatch for %v", r.Events)
	}
	if EventFlip.String() != "jump" || EventDeath.String() != "death" {
		t.Error("flip and death events must map to the jump and death sound handles")
	}
}
