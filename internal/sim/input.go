package sim

import (
	"github.com/vovakirdan/rover-playground/internal/core"
	"github.com/vovakirdan/rover-playground/internal/rover"
)

// Input is the four directional control flags.
type Input = rover.Input

// Source identifies an input writer. Each source owns its own flags so that
// releasing a key does not cancel a held on-screen button.
type Source int

const (
	SourceKeyboard Source = iota
	SourceTouch
	SourceScript
	sourceCount
)

func (s Source) String() string {
	switch s {
	case SourceKeyboard:
		return "keyboard"
	case SourceTouch:
		return "touch"
	case SourceScript:
		return "script"
	default:
		return "unknown"
	}
}

func (s Source) valid() bool {
	return s >= 0 && s < sourceCount
}

// merge ORs two inputs.
func merge(a, b Input) Input {
	return Input{
		Forward:  a.Forward || b.Forward,
		Backward: a.Backward || b.Backward,
		Left:     a.Left || b.Left,
		Right:    a.Right || b.Right,
	}
}

// apply sets or clears the flag for a directional action.
func apply(in Input, a core.Action, down bool) Input {
	switch a {
	case core.ActionForward:
		in.Forward = down
	case core.ActionBackward:
		in.Backward = down
	case core.ActionLeft:
		in.Left = down
	case core.ActionRight:
		in.Right = down
	}
	return in
}

// FromFrame converts a frame of held actions to directional flags.
func FromFrame(f core.InputFrame) Input {
	return Input{
		Forward:  f.Has(core.ActionForward),
		Backward: f.Has(core.ActionBackward),
		Left:     f.Has(core.ActionLeft),
		Right:    f.Has(core.ActionRight),
	}
}
