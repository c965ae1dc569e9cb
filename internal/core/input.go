package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - menu navigation
	ActionDown           // S, Down arrow - menu navigation
	ActionLeft           // A, Left arrow - move ship left
	ActionRight          // D, Right arrow - move ship right
	ActionFire           // Space - shoot
	ActionConfirm        // Enter - confirm / restart from level 1
	ActionNewGame        // N - new game from the title screen
	ActionLoad           // L - load saved game from the title screen
	ActionBack           // B - go back to menu
	ActionQuit           // Esc - save and leave the game
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
	case ActionFire:
		return "Fire"
	case ActionConfirm:
		return "Confirm"
	case ActionNewGame:
		return "NewGame"
	case ActionLoad:
		return "Load"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
//
// Pressed actions are edge-triggered: they fire once for the tick in which the
// key went down. Held actions are level-triggered and stay set for every tick
// the key is considered down.
type InputFrame struct {
	// Actions maps action types to whether they were pressed this frame.
	Actions map[Action]bool

	// Holds maps action types to whether they are held this frame.
	Holds map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Holds:   make(map[Action]bool),
	}
}

// Set marks an action as pressed for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Hold marks an action as held for this frame.
func (f *InputFrame) Hold(a Action) {
	if f.Holds == nil {
		f.Holds = make(map[Action]bool)
	}
	f.Holds[a] = true
}

// Held returns true if the action is held this frame.
// A press in the same frame counts as held.
func (f InputFrame) Held(a Action) bool {
	if f.Holds != nil && f.Holds[a] {
		return true
	}
	return f.Has(a)
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	for k := range f.Holds {
		delete(f.Holds, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	for k, v := range f.Holds {
		clone.Holds[k] = v
	}
	return clone
}

// HoldTracker turns a stream of discrete key presses into held state.
//
// Terminals report key repeats but never key releases, so a key counts as
// held for a short window after its last press/repeat.
type HoldTracker struct {
	window int
	until  map[Action]int
	tick   int
}

// NewHoldTracker creates a tracker that keeps an action held for window ticks
// after its most recent press.
func NewHoldTracker(window int) *HoldTracker {
	if window < 1 {
		window = 1
	}
	return &HoldTracker{
		window: window,
		until:  make(map[Action]int),
	}
}

// Press records a press or key repeat of the action.
func (h *HoldTracker) Press(a Action) {
	h.until[a] = h.tick + h.window
}

// Release forgets an action immediately (used for opposing directions).
func (h *HoldTracker) Release(a Action) {
	delete(h.until, a)
}

// Held reports whether the action is still inside its hold window.
func (h *HoldTracker) Held(a Action) bool {
	until, ok := h.until[a]
	return ok && h.tick < until
}

// Apply writes the currently held actions into the frame and advances one tick.
func (h *HoldTracker) Apply(f *InputFrame) {
	for a, until := range h.until {
		if h.tick < until {
			f.Hold(a)
		} else {
			delete(h.until, a)
		}
	}
	h.tick++
}
