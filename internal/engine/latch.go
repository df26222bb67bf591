package engine

import (
	"time"

	"github.com/vovakirdan/pixel-arcade/internal/core"
)

const (
	// DefaultHold is how long a repeating key stays down after its last report.
	DefaultHold = 100 * time.Millisecond

	// DefaultRepeatDelay is how long a key stays down after its first report,
	// while the terminal has not started auto-repeating it yet. Terminals
	// wait roughly 250-660ms before the first repeat.
	DefaultRepeatDelay = 500 * time.Millisecond
)

// KeyLatch synthesises key releases for terminals, which report presses
// (and auto-repeats) but never releases.
//
// The first report of a key yields a key-down event and keeps the key down
// for the repeat delay, so the gap before auto-repeat starts does not release
// it. Each repeat then pushes the release back by the hold window. Expire
// emits the key-up once that deadline passes.
type KeyLatch struct {
	hold     time.Duration
	delay    time.Duration
	down     [core.KeyCount]bool
	deadline [core.KeyCount]time.Time
}

// NewKeyLatch creates a latch with the given hold window and repeat delay.
// Non-positive values use DefaultHold and DefaultRepeatDelay. The repeat
// delay is never shorter than the hold window.
func NewKeyLatch(hold, delay time.Duration) *KeyLatch {
	if hold <= 0 {
		hold = DefaultHold
	}
	if delay <= 0 {
		delay = DefaultRepeatDelay
	}
	return &KeyLatch{hold: hold, delay: max(delay, hold)}
}

// Hold returns the latch's hold window.
func (l *KeyLatch) Hold() time.Duration {
	return l.hold
}

// RepeatDelay returns how long a key without repeats stays down.
func (l *KeyLatch) RepeatDelay() time.Duration {
	return l.delay
}

// Press records a terminal report of k at now. ok is false when k was already
// latched and no event needs dispatching.
func (l *KeyLatch) Press(k core.Key, now time.Time) (ev KeyEvent, ok bool) {
	if k == core.KeyNone || k >= core.KeyCount {
		return KeyEvent{}, false
	}
	if l.down[k] {
		l.deadline[k] = now.Add(l.hold)
		return KeyEvent{}, false
	}
	l.down[k] = true
	l.deadline[k] = now.Add(l.delay)
	return KeyEvent{Key: k, Down: true}, true
}

// Expire returns key-up events for every latched key whose hold window has
// passed by now, in key order.
func (l *KeyLatch) Expire(now time.Time) []KeyEvent {
	var out []KeyEvent
	for k := range l.down {
		if l.down[k] && !now.Before(l.deadline[k]) {
			l.down[k] = false
			out = append(out, KeyEvent{Key: core.Key(k), Down: false})
		}
	}
	return out
}

// ReleaseAll releases every latched key, e.g. when the terminal loses focus.
func (l *KeyLatch) ReleaseAll() []KeyEvent {
	var out []KeyEvent
	for k := range l.down {
		if l.down[k] {
			l.down[k] = false
			out = append(out, KeyEvent{Key: core.Key(k), Down: false})
		}
	}
	return out
}
