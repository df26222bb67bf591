package engine

import (
	"testing"
	"time"

	"github.com/vovakirdan/pixel-arcade/internal/core"
)

func TestNewKeyLatchDefaults(t *testing.T) {
	for _, d := range []time.Duration{0, -time.Second} {
		l := NewKeyLatch(d, d)
		if l.Hold() != DefaultHold || l.RepeatDelay() != DefaultRepeatDelay {
			t.Errorf("NewKeyLatch(%v, %v) = hold %v, delay %v", d, d, l.Hold(), l.RepeatDelay())
		}
	}

	l := NewKeyLatch(250*time.Millisecond, 400*time.Millisecond)
	if l.Hold() != 250*time.Millisecond || l.RepeatDelay() != 400*time.Millisecond {
		t.Errorf("hold %v, delay %v", l.Hold(), l.RepeatDelay())
	}

	// The repeat delay never undercuts the hold window.
	if got := NewKeyLatch(time.Second, time.Millisecond).RepeatDelay(); got != time.Second {
		t.Errorf("RepeatDelay() = %v, expected the hold window", got)
	}
}

func TestLatchPressOnce(t *testing.T) {
	l := NewKeyLatch(100*time.Millisecond, 0)

	ev, ok := l.Press(core.KeyUp, epoch)
	if !ok || ev != (KeyEvent{Key: core.KeyUp, Down: true}) {
		t.Fatalf("first press = %+v, %v", ev, ok)
	}

	// Auto-repeat while held produces no further events.
	for i := 1; i <= 5; i++ {
		if _, ok := l.Press(core.KeyUp, epoch.Add(time.Duration(i)*30*time.Millisecond)); ok {
			t.Fatalf("repeat %d dispatched a key-down", i)
		}
	}
}

func TestLatchRepeatExtendsHold(t *testing.T) {
	l := NewKeyLatch(100*time.Millisecond, 0)
	l.Press(core.KeyW, epoch)
	l.Press(core.KeyW, epoch.Add(80*time.Millisecond))

	if evs := l.Expire(epoch.Add(150 * time.Millisecond)); len(evs) != 0 {
		t.Errorf("Expire() = %v, expected the repeat to keep W down", evs)
	}

	evs := l.Expire(epoch.Add(180 * time.Millisecond))
	if len(evs) != 1 || evs[0] != (KeyEvent{Key: core.KeyW, Down: false}) {
		t.Errorf("Expire() = %v, expected W released at the deadline", evs)
	}

	// Released keys press again.
	if _, ok := l.Press(core.KeyW, epoch.Add(200*time.Millisecond)); !ok {
		t.Error("press after release should dispatch a key-down")
	}
}

func TestLatchWaitsForFirstRepeat(t *testing.T) {
	// The terminal starts auto-repeating 400ms after the key goes down,
	// long after the hold window.
	l := NewKeyLatch(100*time.Millisecond, 500*time.Millisecond)
	if _, ok := l.Press(core.KeySpace, epoch); !ok {
		t.Fatal("first report should dispatch a key-down")
	}

	for ms := 100; ms < 400; ms += 50 {
		if evs := l.Expire(epoch.Add(time.Duration(ms) * time.Millisecond)); len(evs) != 0 {
			t.Fatalf("Expire() at %dms = %v, expected Space still down", ms, evs)
		}
	}

	for ms := 400; ms <= 700; ms += 30 {
		now := epoch.Add(time.Duration(ms) * time.Millisecond)
		if _, ok := l.Press(core.KeySpace, now); ok {
			t.Fatalf("repeat at %dms dispatched a second key-down", ms)
		}
		if evs := l.Expire(now); len(evs) != 0 {
			t.Fatalf("Expire() at %dms = %v", ms, evs)
		}
	}

	// Once repeats stop, the release follows after the hold window.
	last := epoch.Add(700 * time.Millisecond)
	if evs := l.Expire(last.Add(99 * time.Millisecond)); len(evs) != 0 {
		t.Errorf("released early: %v", evs)
	}
	if evs := l.Expire(last.Add(100 * time.Millisecond)); len(evs) != 1 || evs[0].Down {
		t.Errorf("Expire() = %v, expected Space released", evs)
	}
}

func TestLatchTapReleasesAfterRepeatDelay(t *testing.T) {
	l := NewKeyLatch(100*time.Millisecond, 300*time.Millisecond)
	l.Press(core.KeyW, epoch)

	if evs := l.Expire(epoch.Add(299 * time.Millisecond)); len(evs) != 0 {
		t.Errorf("Expire() = %v before the repeat delay", evs)
	}
	if evs := l.Expire(epoch.Add(300 * time.Millisecond)); len(evs) != 1 {
		t.Errorf("Expire() = %v, expected the tap released", evs)
	}
}

func TestLatchExpireOrder(t *testing.T) {
	l := NewKeyLatch(50*time.Millisecond, 50*time.Millisecond)
	l.Press(core.KeySpace, epoch)
	l.Press(core.KeyUp, epoch.Add(10*time.Millisecond))
	l.Press(core.KeyS, epoch.Add(60*time.Millisecond))

	evs := l.Expire(epoch.Add(70 * time.Millisecond))
	if len(evs) != 2 {
		t.Fatalf("Expire() = %v, expected two releases", evs)
	}
	if evs[0].Key > evs[1].Key {
		t.Errorf("releases out of key order: %v", evs)
	}
	for _, ev := range evs {
		if ev.Down || ev.Key == core.KeyS {
			t.Errorf("unexpected event %+v", ev)
		}
	}
}

func TestLatchIgnoresUnknownKeys(t *testing.T) {
	l := NewKeyLatch(0, 0)
	if _, ok := l.Press(core.KeyNone, epoch); ok {
		t.Error("KeyNone should not latch")
	}
	if _, ok := l.Press(core.KeyCount, epoch); ok {
		t.Error("out of range key should not latch")
	}
}

func TestLatchReleaseAll(t *testing.T) {
	l := NewKeyLatch(time.Hour, 0)
	l.Press(core.KeyUp, epoch)
	l.Press(core.KeyDown, epoch)

	if evs := l.ReleaseAll(); len(evs) != 2 {
		t.Errorf("ReleaseAll() = %v, expected two releases", evs)
	}
	if evs := l.ReleaseAll(); len(evs) != 0 {
		t.Errorf("second ReleaseAll() = %v, expected none", evs)
	}
	if evs := l.Expire(epoch.Add(2 * time.Hour)); len(evs) != 0 {
		t.Errorf("Expire() after ReleaseAll = %v", evs)
	}
}

func TestLatchDrivesTracker(t *testing.T) {
	g := newStub()
	d, clock := newTestDriver(g)
	l := NewKeyLatch(100*time.Millisecond, 0)

	frame := func(reports ...core.Key) bool {
		d.BeginFrame()
		now := clock.Now()
		for _, k := range reports {
			if ev, ok := l.Press(k, now); ok {
				d.Dispatch(ev)
			}
		}
		for _, ev := range l.Expire(now) {
			d.Dispatch(ev)
		}
		d.Frame()
		clock.Advance(20 * time.Millisecond)
		return g.pressed[len(g.pressed)-1]
	}

	if !frame(core.KeySpace) {
		t.Error("first report should be a fresh press")
	}
	if frame(core.KeySpace) {
		t.Error("auto-repeat should not press again")
	}
	for i := 0; i < 6; i++ {
		frame()
	}
	if !frame(core.KeySpace) {
		t.Error("report after the hold window should press again")
	}
}
