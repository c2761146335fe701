package core

import (
	"testing"
	"time"
)

func TestInputFrameOrder(t *testing.T) {
	f := NewInputFrame()
	f.Press(ActionUp)
	f.Press(ActionLeft)
	f.Release(ActionUp)

	events := f.Events()
	want := []KeyEvent{
		{Action: ActionUp, Pressed: true},
		{Action: ActionLeft, Pressed: true},
		{Action: ActionUp, Pressed: false},
	}
	if len(events) != len(want) {
		t.Fatalf("len(Events()) = %d, expected %d", len(events), len(want))
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("event %d = %+v, expected %+v", i, events[i], want[i])
		}
	}
}

func TestInputFrameClearKeepsTime(t *testing.T) {
	now := time.Unix(100, 0)
	f := InputFrame{Time: now}
	f.Press(ActionDown)

	f.Clear()

	if len(f.Events()) != 0 {
		t.Error("Clear should drop events")
	}
	if !f.Time.Equal(now) {
		t.Error("Clear should keep the timestamp")
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Press(ActionRight)

	c := f.Clone()
	f.Clear()
	f.Press(ActionLeft)

	if got := c.Events(); len(got) != 1 || got[0].Action != ActionRight {
		t.Errorf("clone should be independent, got %+v", got)
	}
}

func TestActionIsDirection(t *testing.T) {
	for _, a := range []Action{ActionUp, ActionDown, ActionLeft, ActionRight} {
		if !a.IsDirection() {
			t.Errorf("%v should be a direction", a)
		}
	}
	for _, a := range []Action{ActionNone, ActionJump, ActionReset, ActionQuit} {
		if a.IsDirection() {
			t.Errorf("%v should not be a direction", a)
		}
	}
}
