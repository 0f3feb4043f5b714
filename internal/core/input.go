package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone     Action = iota
	ActionUp              // W, Up arrow
	ActionDown            // S, Down arrow
	ActionLeft            // A, Left arrow
	ActionRight           // D, Right arrow
	ActionFire            // Space or mouse click
	ActionInteract        // E - enter a nearby building
	ActionConfirm         // Enter
	ActionBack            // Escape - close dialogs, back to menu
	ActionRestart         // R - respawn after death
	ActionQuit            // Q, Ctrl+C
	ActionPause           // P
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
	case ActionInteract:
		return "Interact"
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

// InputFrame is the input collected for one simulation tick.
type InputFrame struct {
	Actions map[Action]bool

	// Pointer is the last known mouse position in screen cells.
	// HasPointer is false until the terminal reports mouse motion.
	PointerX, PointerY int
	HasPointer         bool
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

// SetPointer records a pointer position in screen cells.
func (f *InputFrame) SetPointer(x, y int) {
	f.PointerX, f.PointerY = x, y
	f.HasPointer = true
}

// Clear resets actions for the next frame. The pointer position is sticky.
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
	clone.PointerX, clone.PointerY, clone.HasPointer = f.PointerX, f.PointerY, f.HasPointer
	return clone
}
