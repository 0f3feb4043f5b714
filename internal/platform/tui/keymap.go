package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ceon-town/internal/core"
)

// KeyMapper translates Bubble Tea key and mouse messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	mouseDown bool // left button held
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "w", "W", "up":
		return core.ActionUp, false
	case "s", "S", "down":
		return core.ActionDown, false
	case "a", "A", "left":
		return core.ActionLeft, false
	case "d", "D", "right":
		return core.ActionRight, false
	case " ":
		return core.ActionFire, false
	case "e", "E":
		return core.ActionInteract, false
	case "enter":
		return core.ActionConfirm, false
	case "esc":
		return core.ActionBack, false
	case "p", "P":
		return core.ActionPause, false
	case "r", "R":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MapMouse records the pointer cell and tracks the left button.
// A press fires at once; the button keeps firing through Hold until released.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg, frame *core.InputFrame) {
	frame.SetPointer(msg.X, msg.Y)
	switch {
	case msg.Action == tea.MouseActionRelease:
		// Some terminals do not report which button was released.
		km.mouseDown = false
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		km.mouseDown = true
		frame.Set(core.ActionFire)
	}
}

// Hold adds actions that last while a button is held down.
func (km *KeyMapper) Hold(frame *core.InputFrame) {
	if km.mouseDown {
		frame.Set(core.ActionFire)
	}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
