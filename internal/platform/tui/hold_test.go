package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/rover-playground/internal/core"
)

func TestHoldTrackerWindow(t *testing.T) {
	h := NewHoldTracker(500 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionForward, t0)
	if !h.Frame(t0.Add(400 * time.Millisecond)).Has(core.ActionForward) {
		t.Error("forward should still be held inside the window")
	}
	if h.Frame(t0.Add(600 * time.Millisecond)).Has(core.ActionForward) {
		t.Error("forward should be released after the window")
	}
}

func TestHoldTrackerRepeatExtends(t *testing.T) {
	h := NewHoldTracker(500 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	// Auto-repeat every 300ms keeps the key down.
	for i := range 5 {
		h.Press(core.ActionLeft, t0.Add(time.Duration(i)*300*time.Millisecond))
	}
	if !h.Frame(t0.Add(1500 * time.Millisecond)).Has(core.ActionLeft) {
		t.Error("repeated presses should keep left held")
	}
}

func TestHoldTrackerOppositeCancels(t *testing.T) {
	h := NewHoldTracker(time.Second)
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionForward, t0)
	h.Press(core.ActionLeft, t0)
	h.Press(core.ActionBackward, t0.Add(10*time.Millisecond))

	f := h.Frame(t0.Add(20 * time.Millisecond))
	if f.Has(core.ActionForward) {
		t.Error("backward should cancel forward")
	}
	if !f.Has(core.ActionBackward) || !f.Has(core.ActionLeft) {
		t.Error("backward and left should both be held")
	}
}

func TestHoldTrackerIgnoresNonDirections(t *testing.T) {
	h := NewHoldTracker(time.Second)
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionPause, t0)
	if h.Frame(t0).Has(core.ActionPause) {
		t.Error("pause is not a held direction")
	}
}

func TestHoldTrackerReleaseAll(t *testing.T) {
	h := NewHoldTracker(0) // falls back to the default window
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionForward, t0)
	h.Press(core.ActionRight, t0)
	h.ReleaseAll()

	f := h.Frame(t0)
	if f.Has(core.ActionForward) || f.Has(core.ActionRight) {
		t.Error("ReleaseAll should drop every direction")
	}
}
