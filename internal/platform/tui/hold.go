package tui

import (
	"time"

	"github.com/vovakirdan/queenchase/internal/core"
)

// holdTracker turns terminal key presses into press/release pairs.
// Terminals only report key repeats, so a direction counts as released once
// no repeat arrived within the timeout. A zero timeout latches the direction
// until another one is pressed.
type holdTracker struct {
	timeout time.Duration
	dir     core.Action
	last    time.Time
}

func newHoldTracker(timeout time.Duration) holdTracker {
	return holdTracker{timeout: timeout}
}

// press records a direction press (or repeat) into the frame.
func (h *holdTracker) press(a core.Action, now time.Time, f *core.InputFrame) {
	h.switchTo(a, f)
	h.dir = a
	h.last = now
	f.Press(a)
}

// switchTo releases the held direction if it differs from a.
func (h *holdTracker) switchTo(a core.Action, f *core.InputFrame) {
	if h.dir != core.ActionNone && h.dir != a {
		f.Release(h.dir)
		h.dir = core.ActionNone
	}
}

// expire emits the synthetic release once the held direction timed out.
func (h *holdTracker) expire(now time.Time, f *core.InputFrame) {
	if h.timeout <= 0 || h.dir == core.ActionNone {
		return
	}
	if now.Sub(h.last) >= h.timeout {
		f.Release(h.dir)
		h.dir = core.ActionNone
	}
}

// held returns the direction currently considered held.
func (h *holdTracker) held() core.Action {
	return h.dir
}
