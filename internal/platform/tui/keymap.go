package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pixel-arcade/internal/core"
)

// KeyMap holds the presenter's own bindings. Everything else is forwarded to
// the game.
type KeyMap struct {
	Quit       key.Binding
	Screenshot key.Binding
}

// DefaultKeyMap returns the default presenter bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to virtual keys.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys map[string]core.Key
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: map[string]core.Key{
		"up":    core.KeyUp,
		"down":  core.KeyDown,
		" ":     core.KeySpace,
		"enter": core.KeyEnter,
		"esc":   core.KeyEscape,
		"w":     core.KeyW,
		"W":     core.KeyW,
		"s":     core.KeyS,
		"S":     core.KeyS,
		"r":     core.KeyR,
		"R":     core.KeyR,
		"1":     core.Key1,
		"2":     core.Key2,
	}}
}

// MapKey returns the virtual key for msg, or false when the game has no use
// for it.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (core.Key, bool) {
	k, ok := km.keys[msg.String()]
	return k, ok
}
