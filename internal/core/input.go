package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A, H - move one column left
	ActionRight          // Right arrow, D, L - move one column right
	ActionRestart        // R - start a new session after game over
	ActionQuit           // Q, Esc, Ctrl+C - leave the game
	ActionHelp           // ? - toggle the key help line
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionHelp:
		return "Help"
	default:
		return "Unknown"
	}
}

// InputFrame collects the discrete presses that arrived during one host frame.
// Presses are edge-triggered: a key held down counts once, and two presses
// inside the same frame count twice.
type InputFrame struct {
	Actions map[Action]int
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]int),
	}
}

// Set records one press of the action.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]int)
	}
	f.Actions[a]++
}

// Count returns how many times the action was pressed this frame.
func (f InputFrame) Count(a Action) int {
	if f.Actions == nil {
		return 0
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
