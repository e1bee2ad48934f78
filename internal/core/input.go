package core

// Action is a semantic game action, abstracted from physical key presses.
// Frontends translate keys (terminal, window, replay script) into actions.
type Action int

const (
	ActionNone    Action = iota
	ActionFlip           // Space, W, Up - invert gravity
	ActionRestart        // R - start a new run from the game-over screen
	ActionPause          // P - freeze the simulation
	ActionQuit           // Q, Ctrl+C, Esc - leave from any state
)

var actionNames = [...]string{"None", "Flip", "Restart", "Pause", "Quit"}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame is the set of actions triggered during one tick. The zero
// value is an empty frame and frames are plain values, safe to copy.
type InputFrame struct {
	bits uint8
}

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// InputOf builds a frame with the given actions set.
func InputOf(actions ...Action) InputFrame {
	var f InputFrame
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks a as triggered. ActionNone is ignored.
func (f *InputFrame) Set(a Action) {
	if a <= ActionNone || int(a) >= len(actionNames) {
		return
	}
	f.bits |= 1 << a
}

// Has reports whether a was triggered.
func (f InputFrame) Has(a Action) bool {
	if a <= ActionNone {
		return false
	}
	return f.bits&(1<<a) != 0
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return f.bits == 0
}
