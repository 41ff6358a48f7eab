package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// KeyEvent classifies a key press for the input layer. Terminals only
// deliver press events, so the model splits jump input into a tap key
// (press and release on the same tick) and a hold key whose release is
// synthesized once keyboard auto-repeat goes quiet.
type KeyEvent int

const (
	KeyNone KeyEvent = iota
	KeyJumpTap
	KeyJumpHold
	KeySlideHold
	KeyPause
	KeyRestart
	KeyQuit
	KeyScreenshot
)

// KeyMapper translates Bubble Tea key messages to input events.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an input event.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) KeyEvent {
	switch msg.String() {
	case "ctrl+c", "q":
		return KeyQuit
	case "ctrl+s":
		return KeyScreenshot
	case " ", "up", "w":
		return KeyJumpTap
	case "c":
		return KeyJumpHold
	case "down", "s":
		return KeySlideHold
	case "p", "esc":
		return KeyPause
	case "r":
		return KeyRestart
	}

	return KeyNone
}
