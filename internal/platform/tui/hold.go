package tui

import (
	"time"

	"github.com/vovakirdan/rover-playground/internal/core"
)

// HoldTracker turns terminal key presses into held directions.
// Terminals report presses only: a held key arrives as auto-repeat, so a
// direction stays held until no press has been seen for the window.
type HoldTracker struct {
	window time.Duration
	last   map[core.Action]time.Time
}

// NewHoldTracker creates a tracker with the given hold window.
func NewHoldTracker(window time.Duration) *HoldTracker {
	if window <= 0 {
		window = core.DefaultConfig().HoldWindow
	}
	return &HoldTracker{window: window, last: make(map[core.Action]time.Time)}
}

// opposite returns the direction a press cancels.
func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionForward:
		return core.ActionBackward
	case core.ActionBackward:
		return core.ActionForward
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	}
	return core.ActionNone
}

// Press records a direction press at now. Pressing a direction releases
// its opposite.
func (h *HoldTracker) Press(a core.Action, now time.Time) {
	if !a.IsDirection() {
		return
	}
	delete(h.last, opposite(a))
	h.last[a] = now
}

// ReleaseAll drops every held direction.
func (h *HoldTracker) ReleaseAll() {
	clear(h.last)
}

// Frame returns the directions still held at now and forgets expired ones.
func (h *HoldTracker) Frame(now time.Time) core.InputFrame {
	f := core.NewInputFrame()
	for a, at := range h.last {
		if now.Sub(at) > h.window {
			delete(h.last, a)
			continue
		}
		f.Set(a)
	}
	return f
}
