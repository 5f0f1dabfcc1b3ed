package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionConfirm        // Enter, Space - acknowledge feedback ("Next") or "Play Again"
	ActionRestart        // R - start a fresh session at any time
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionConfirm:
		return "Confirm"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the input delivered during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Taps are pointer presses in screen cells, in arrival order.
	Taps []Point

	// Picks are balloon slots (0-based) chosen from the keyboard, in arrival order.
	Picks []int
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

// Tap records a pointer press at (x, y).
func (f *InputFrame) Tap(x, y int) {
	f.Taps = append(f.Taps, Point{X: x, Y: y})
}

// Pick records a keyboard choice of the balloon in the given slot.
func (f *InputFrame) Pick(slot int) {
	f.Picks = append(f.Picks, slot)
}

// Empty reports whether nothing was delivered this frame.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && len(f.Taps) == 0 && len(f.Picks) == 0
}

// Clear resets all input for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Taps = f.Taps[:0]
	f.Picks = f.Picks[:0]
}
