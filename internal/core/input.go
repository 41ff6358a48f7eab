package core

// Action represents a semantic game action, abstracted from physical key presses.
// Jump and slide come in press/release pairs because the simulation cares about
// edges: a held jump charges, a released jump launches.
type Action int

const (
	ActionNone         Action = iota
	ActionJumpPress           // Space/W/Up pressed - starts buffer, hold tracking, charging
	ActionJumpRelease         // Jump key released - launches charge jumps, ends hold
	ActionSlidePress          // S/Down pressed - start sliding
	ActionSlideRelease        // Slide key released - stop sliding
	ActionConfirm             // Enter - confirm selection in menu
	ActionBack                // B, Escape - go back
	ActionRestart             // R key - restart game after game over
	ActionQuit                // Q, Ctrl+C - exit game/session
	ActionPause               // P, Escape - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJumpPress:
		return "JumpPress"
	case ActionJumpRelease:
		return "JumpRelease"
	case ActionSlidePress:
		return "SlidePress"
	case ActionSlideRelease:
		return "SlideRelease"
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

// InputFrame represents the input edges delivered during one simulation tick.
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

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
