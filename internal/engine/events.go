package engine

import "github.com/vovakirdan/pixel-arcade/internal/core"

// Event is a platform notification delivered to the driver between frames.
// It is one of KeyEvent, ResizeEvent or QuitEvent.
type Event interface {
	isEvent()
}

// KeyEvent reports a key going down or up.
type KeyEvent struct {
	Key  core.Key
	Down bool
}

// ResizeEvent reports a new terminal size in cells.
type ResizeEvent struct {
	Cols, Rows int
}

// QuitEvent asks the driver to stop after the current frame.
type QuitEvent struct{}

func (KeyEvent) isEvent()    {}
func (ResizeEvent) isEvent() {}
func (QuitEvent) isEvent()   {}
