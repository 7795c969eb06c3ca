package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - move cursor up
	ActionDown           // S, Down arrow - move cursor down
	ActionLeft           // A, Left arrow - move cursor left
	ActionRight          // D, Right arrow - move cursor right
	ActionSelect         // Space - toggle the cell under the cursor
	ActionConfirm        // Enter - confirm the current selection
	ActionClear          // C, Backspace - drop the current selection
	ActionHint           // H - spend a hint
	ActionShuffle        // M - spend a shuffle
	ActionBomb           // X - spend a bomb on the cursor cell
	ActionFreeze         // Z - spend a freeze (timed mode)
	ActionEnd            // E - finish the session and record the score
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
)

var actionNames = map[Action]string{
	ActionNone:    "None",
	ActionUp:      "Up",
	ActionDown:    "Down",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionSelect:  "Select",
	ActionConfirm: "Confirm",
	ActionClear:   "Clear",
	ActionHint:    "Hint",
	ActionShuffle: "Shuffle",
	ActionBomb:    "Bomb",
	ActionFreeze:  "Freeze",
	ActionEnd:     "End",
	ActionBack:    "Back",
	ActionRestart: "Restart",
	ActionQuit:    "Quit",
	ActionPause:   "Pause",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// InputFrame represents the input of a single player during one simulation tick.
// It holds every triggered action plus at most one pointer click.
type InputFrame struct {
	Actions map[Action]bool

	click    Point
	hasClick bool
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

// SetClick records a pointer press at screen position (x, y).
// A later click in the same frame replaces the earlier one.
func (f *InputFrame) SetClick(x, y int) {
	f.click = Point{X: x, Y: y}
	f.hasClick = true
}

// Click returns the pointer press of this frame, if any.
func (f InputFrame) Click() (Point, bool) {
	return f.click, f.hasClick
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.hasClick = false
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.click = f.click
	clone.hasClick = f.hasClick
	return clone
}
