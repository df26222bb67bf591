package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/pixel-arcade/internal/core"
)

var specialKeys = map[tcell.Key]core.Key{
	tcell.KeyUp:     core.KeyUp,
	tcell.KeyDown:   core.KeyDown,
	tcell.KeyEnter:  core.KeyEnter,
	tcell.KeyEscape: core.KeyEscape,
}

var runeKeys = map[rune]core.Key{
	' ': core.KeySpace,
	'w': core.KeyW,
	'W': core.KeyW,
	's': core.KeyS,
	'S': core.KeyS,
	'r': core.KeyR,
	'R': core.KeyR,
	'1': core.Key1,
	'2': core.Key2,
}

// isQuit reports whether ev asks to leave the program.
func isQuit(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyCtrlC ||
		(ev.Key() == tcell.KeyRune && ev.Rune() == 'q')
}

// mapKey returns the virtual key for ev.
func mapKey(ev *tcell.EventKey) (core.Key, bool) {
	if ev.Key() == tcell.KeyRune {
		k, ok := runeKeys[ev.Rune()]
		return k, ok
	}
	k, ok := specialKeys[ev.Key()]
	return k, ok
}
