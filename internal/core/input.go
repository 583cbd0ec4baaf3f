package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, K, Up arrow
	ActionDown           // S, J, Down arrow
	ActionLeft           // A, H, Left arrow
	ActionRight          // D, L, Right arrow
	ActionRestart        // Space, R - start a fresh round
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsDirection reports whether the action is one of the four movement actions.
func (a Action) IsDirection() bool {
	return a >= ActionUp && a <= ActionRight
}

// ParseAction maps a single-letter or word token to an action.
// Used by scripted input (headless runs and tests).
func ParseAction(tok string) (Action, bool) {
	switch tok {
	case "u", "U", "up":
		return ActionUp, true
	case "d", "D", "down":
		return ActionDown, true
	case "l", "L", "left":
		return ActionLeft, true
	case "r", "R", "right":
		return ActionRight, true
	case "x", "X", "reset", "restart":
		return ActionRestart, true
	case "q", "Q", "quit":
		return ActionQuit, true
	case ".", "-", "none":
		return ActionNone, true
	}
	return ActionNone, false
}

// InputFrame represents the input for a single simulation tick.
// Actions keep arrival order: the first direction pressed in a frame is the
// one that counts when only one change is accepted per tick.
type InputFrame struct {
	Actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// FrameOf builds a frame from the given actions, in order.
func FrameOf(actions ...Action) InputFrame {
	var f InputFrame
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set records an action for this frame. ActionNone and repeats are ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone || f.Has(a) {
		return
	}
	f.Actions = append(f.Actions, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, x := range f.Actions {
		if x == a {
			return true
		}
	}
	return false
}

// Directions returns the movement actions of this frame in arrival order.
func (f InputFrame) Directions() []Action {
	var dirs []Action
	for _, a := range f.Actions {
		if a.IsDirection() {
			dirs = append(dirs, a)
		}
	}
	return dirs
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := InputFrame{Actions: make([]Action, len(f.Actions))}
	copy(clone.Actions, f.Actions)
	return clone
}
