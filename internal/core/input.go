package core

// Action represents a semantic game action, abstracted from physical key
// presses, mouse clicks and swipes. Games work with these intents rather than
// raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up swipe: W, Up arrow
	ActionDown           // Down swipe: S, Down arrow
	ActionLeft           // Left swipe or tap on the left half: A, Left arrow
	ActionRight          // Right swipe or tap on the right half: D, Right arrow
	ActionConfirm        // Enter, Space - primary button (play / restart)
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
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

// Touch is a pointer press in normalized screen coordinates: X and Y are in
// [0, 1) with (0, 0) at the top-left corner of the play area.
type Touch struct {
	X, Y float64
}

// InputFrame represents the input state for a single player during one
// simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Touches holds pointer presses in the order they arrived.
	Touches []Touch
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

// Touch records a pointer press. Coordinates are clamped to [0, 1].
func (f *InputFrame) Touch(x, y float64) {
	f.Touches = append(f.Touches, Touch{X: ClampF(x, 0, 1), Y: ClampF(y, 0, 1)})
}

// FirstTouch returns the earliest touch of the frame, if any.
func (f InputFrame) FirstTouch() (Touch, bool) {
	if len(f.Touches) == 0 {
		return Touch{}, false
	}
	return f.Touches[0], true
}

// Empty reports whether the frame carries no actions and no touches.
func (f InputFrame) Empty() bool {
	for _, v := range f.Actions {
		if v {
			return false
		}
	}
	return len(f.Touches) == 0
}

// Clear resets all actions and touches for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Touches = f.Touches[:0]
}
