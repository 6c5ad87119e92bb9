package core

// Action represents a semantic control action, abstracted from physical key presses.
type Action int

const (
	ActionNone     Action = iota
	ActionForward         // W, Up arrow - throttle
	ActionBackward        // S, Down arrow - reverse
	ActionLeft            // A, Left arrow - turn left
	ActionRight           // D, Right arrow - turn right
	ActionBrake           // Space - release every held direction
	ActionConfirm         // Enter - confirm selection in menu
	ActionBack            // B, Escape - go back to menu
	ActionRestart         // R key - restart the mission
	ActionQuit            // Q, Ctrl+C - exit
	ActionPause           // P - pause/unpause the simulation
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionForward:
		return "Forward"
	case ActionBackward:
		return "Backward"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionBrake:
		return "Brake"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// IsDirection reports whether a is one of the four driving directions.
func (a Action) IsDirection() bool {
	return a >= ActionForward && a <= ActionRight
}

// InputFrame represents the one-shot actions triggered during one frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
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
