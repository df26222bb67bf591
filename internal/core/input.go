package core

// Key is a platform-neutral virtual key code.
// Platforms translate their native key events to these codes.
type Key uint8

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeySpace
	KeyEnter
	KeyEscape
	KeyW
	KeyS
	KeyR
	Key1
	Key2

	// KeyCount is the size of the tracker's fixed key tables.
	KeyCount
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeySpace:
		return "Space"
	case KeyEnter:
		return "Enter"
	case KeyEscape:
		return "Escape"
	case KeyW:
		return "W"
	case KeyS:
		return "S"
	case KeyR:
		return "R"
	case Key1:
		return "1"
	case Key2:
		return "2"
	default:
		return "Unknown"
	}
}

// Tracker records, per key, whether it is held and whether it went down
// during the current frame.
//
// The platform calls BeginFrame before draining pending events each frame,
// then feeds KeyDown/KeyUp for every event. A key is reported as pressed
// exactly once per not-held to held transition, so holding a key (including
// terminal auto-repeat) never retriggers edge-sensitive actions.
type Tracker struct {
	held    [KeyCount]bool
	pressed [KeyCount]bool
}

// NewTracker creates a tracker with every key released.
func NewTracker() *Tracker {
	return &Tracker{}
}

// BeginFrame clears the pressed set for the next frame.
func (t *Tracker) BeginFrame() {
	t.pressed = [KeyCount]bool{}
}

// KeyDown records a key-down event.
func (t *Tracker) KeyDown(k Key) {
	if k >= KeyCount {
		return
	}
	if !t.held[k] {
		t.pressed[k] = true
	}
	t.held[k] = true
}

// KeyUp records a key-up event.
func (t *Tracker) KeyUp(k Key) {
	if k >= KeyCount {
		return
	}
	t.held[k] = false
}

// Held reports whether k is currently down.
func (t *Tracker) Held(k Key) bool {
	if k >= KeyCount {
		return false
	}
	return t.held[k]
}

// Pressed reports whether k went down since the last BeginFrame.
func (t *Tracker) Pressed(k Key) bool {
	if k >= KeyCount {
		return false
	}
	return t.pressed[k]
}

// AnyPressed reports whether any of keys went down this frame.
func (t *Tracker) AnyPressed(keys ...Key) bool {
	for _, k := range keys {
		if t.Pressed(k) {
			return true
		}
	}
	return false
}

// ReleaseAll marks every key as released, e.g. after the window loses focus.
func (t *Tracker) ReleaseAll() {
	t.held = [KeyCount]bool{}
}
