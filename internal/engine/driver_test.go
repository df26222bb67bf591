package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/pixel-arcade/internal/config"
	"github.com/vovakirdan/pixel-arcade/internal/core"
	"github.com/vovakirdan/pixel-arcade/internal/games/flappy"
	"github.com/vovakirdan/pixel-arcade/internal/games/pong"
)

// stubGame records the calls the driver makes.
type stubGame struct {
	calls    []string
	dts      []float64
	pressed  []bool // Space pressed, per step
	quitAt   int    // Step number that asks to quit; 0 never
	gameOver bool
	pacing   config.FrameConfig
	w, h     int
}

func newStub() *stubGame {
	return &stubGame{pacing: config.FrameConfig{FPS: 60, YieldMs: 1, MaxStep: 0.05}}
}

func (s *stubGame) ID() string    { return "stub" }
func (s *stubGame) Title() string { return "Stub" }

func (s *stubGame) Init(rc core.RuntimeConfig) {
	s.w, s.h = rc.ScreenW, rc.ScreenH
	s.calls = append(s.calls, fmt.Sprintf("init %dx%d", rc.ScreenW, rc.ScreenH))
}

func (s *stubGame) Resize(w, h int) {
	s.w, s.h = w, h
	s.calls = append(s.calls, fmt.Sprintf("resize %dx%d", w, h))
}

func (s *stubGame) Step(dt float64, in *core.Tracker) core.StepResult {
	s.calls = append(s.calls, "step")
	s.dts = append(s.dts, dt)
	s.pressed = append(s.pressed, in.Pressed(core.KeySpace))
	return core.StepResult{
		State: core.GameState{GameOver: s.gameOver},
		Quit:  s.quitAt > 0 && len(s.dts) >= s.quitAt,
	}
}

func (s *stubGame) Render(dst *core.Screen) {
	s.calls = append(s.calls, "render")
	dst.Clear(core.ColorBlack)
	dst.DrawText(0, 0, fmt.Sprintf("frame %d", len(s.dts)), core.ColorText)
}

func (s *stubGame) State() core.GameState      { return core.GameState{GameOver: s.gameOver} }
func (s *stubGame) Pacing() config.FrameConfig { return s.pacing }

// fakePlatform replays scripted event batches, one per frame.
type fakePlatform struct {
	batches  [][]Event
	polls    int
	presents []string
	game     *stubGame
	err      error
	onPoll   func(frame int)
}

func (p *fakePlatform) PollEvents() []Event {
	if p.onPoll != nil {
		p.onPoll(p.polls)
	}
	p.polls++
	if len(p.batches) == 0 {
		return nil
	}
	b := p.batches[0]
	p.batches = p.batches[1:]
	return b
}

func (p *fakePlatform) Present(s *core.Screen) error {
	if p.err != nil {
		return p.err
	}
	p.presents = append(p.presents, s.Row(0))
	if p.game != nil {
		p.game.calls = append(p.game.calls, "present")
	}
	return nil
}

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestDriver(g *stubGame) (*Driver, *MockClock) {
	clock := NewMockClock(epoch)
	d := NewDriver(g, Options{Cols: 40, Rows: 12, Seed: 1, Clock: clock})
	return d, clock
}

func TestNewDriverInitialisesGame(t *testing.T) {
	g := newStub()
	d, _ := newTestDriver(g)

	if len(g.calls) != 1 || g.calls[0] != "init 40x24" {
		t.Errorf("calls = %v, expected init at pixel size", g.calls)
	}
	if d.Screen().Width() != 40 || d.Screen().Height() != 24 {
		t.Errorf("surface = %dx%d", d.Screen().Width(), d.Screen().Height())
	}
}

func TestRunFrameOrder(t *testing.T) {
	g := newStub()
	g.quitAt = 3
	d, _ := newTestDriver(g)
	p := &fakePlatform{game: g}

	if err := d.Run(context.Background(), p); err != nil {
		t.Fatalf("Run() = %v", err)
	}

	want := "init 40x24 step render present step render present step render present"
	if got := strings.Join(g.calls, " "); got != want {
		t.Errorf("calls = %q\nexpected %q", got, want)
	}
	if !strings.HasPrefix(p.presents[2], "frame 3 ") {
		t.Errorf("third presented HUD = %q", p.presents[2])
	}
}

func TestFrameClampsElapsed(t *testing.T) {
	g := newStub()
	d, clock := newTestDriver(g)

	clock.Advance(16 * time.Millisecond)
	d.Frame()
	clock.Advance(3 * time.Second)
	d.Frame()
	clock.Set(epoch) // Clock went backwards
	d.Frame()

	want := []float64{0.016, 0.05, 0}
	for i, dt := range g.dts {
		if dt != want[i] {
			t.Errorf("frame %d dt = %v, expected %v", i, dt, want[i])
		}
	}
}

func TestPressedClearedEachFrame(t *testing.T) {
	g := newStub()
	g.quitAt = 3
	d, _ := newTestDriver(g)
	p := &fakePlatform{batches: [][]Event{
		{KeyEvent{Key: core.KeySpace, Down: true}},
		{KeyEvent{Key: core.KeySpace, Down: true}}, // Still held
		{KeyEvent{Key: core.KeySpace, Down: false}, KeyEvent{Key: core.KeySpace, Down: true}},
	}}

	if err := d.Run(context.Background(), p); err != nil {
		t.Fatal(err)
	}

	want := []bool{true, false, true}
	for i, got := range g.pressed {
		if got != want[i] {
			t.Errorf("frame %d pressed = %v, expected %v", i, got, want[i])
		}
	}
}

func TestResizeRecreatesSurface(t *testing.T) {
	g := newStub()
	d, _ := newTestDriver(g)

	d.Dispatch(ResizeEvent{Cols: 100, Rows: 30})
	if d.Screen().Width() != 100 || d.Screen().Height() != 60 {
		t.Errorf("surface = %dx%d after resize", d.Screen().Width(), d.Screen().Height())
	}
	if g.calls[len(g.calls)-1] != "resize 100x60" {
		t.Errorf("calls = %v", g.calls)
	}

	n := len(g.calls)
	d.Dispatch(ResizeEvent{Cols: 100, Rows: 30})
	if len(g.calls) != n {
		t.Error("same-size notification should not reset the game")
	}
}

func TestQuitEventStopsBeforeStepping(t *testing.T) {
	g := newStub()
	d, _ := newTestDriver(g)
	p := &fakePlatform{batches: [][]Event{nil, {QuitEvent{}}}}

	if err := d.Run(context.Background(), p); err != nil {
		t.Fatal(err)
	}
	if len(g.dts) != 1 || len(p.presents) != 1 {
		t.Errorf("steps = %d presents = %d, expected 1 each", len(g.dts), len(p.presents))
	}
	if !d.Quit() {
		t.Error("Quit() should be true")
	}
}

func TestRunCancelled(t *testing.T) {
	g := newStub()
	d, _ := newTestDriver(g)
	ctx, cancel := context.WithCancel(context.Background())
	p := &fakePlatform{onPoll: func(frame int) {
		if frame == 4 {
			cancel()
		}
	}}

	if err := d.Run(ctx, p); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() = %v, expected context.Canceled", err)
	}
	if len(g.dts) != 5 {
		t.Errorf("steps = %d, expected the cancelling frame to finish", len(g.dts))
	}
}

func TestRunPresentError(t *testing.T) {
	g := newStub()
	d, _ := newTestDriver(g)
	boom := errors.New("terminal gone")

	err := d.Run(context.Background(), &fakePlatform{err: boom})
	if !errors.Is(err, boom) {
		t.Errorf("Run() = %v, expected wrapped present error", err)
	}
}

func TestThrottleCapped(t *testing.T) {
	g := newStub()
	d, clock := newTestDriver(g)

	clock.Advance(16 * time.Millisecond)
	d.Frame()
	clock.Advance(5 * time.Millisecond) // Render and present took 5ms

	if got, want := d.NextDelay(), time.Second/60-5*time.Millisecond; got != want {
		t.Errorf("NextDelay() = %v, expected %v", got, want)
	}

	clock.Advance(time.Second)
	if got := d.NextDelay(); got != 0 {
		t.Errorf("NextDelay() after a slow frame = %v, expected 0", got)
	}
}

func TestThrottleUncappedYields(t *testing.T) {
	g := newStub()
	g.pacing = config.FrameConfig{FPS: 0, YieldMs: 1, MaxStep: 0.05}
	d, clock := newTestDriver(g)

	d.Frame()
	d.Throttle()

	if clock.Slept() != time.Millisecond {
		t.Errorf("slept %v, expected a 1ms yield", clock.Slept())
	}
}

func TestRunPacesToTarget(t *testing.T) {
	g := newStub()
	g.quitAt = 60
	d, clock := newTestDriver(g)

	if err := d.Run(context.Background(), &fakePlatform{}); err != nil {
		t.Fatal(err)
	}

	// Each frame sleeps to the end of its interval, so the next one measures
	// exactly one interval.
	for i, dt := range g.dts[1:] {
		if dt != (time.Second / 60).Seconds() {
			t.Fatalf("frame %d dt = %v", i+1, dt)
		}
	}
	if clock.Now().Sub(epoch) < 59*time.Second/60 {
		t.Errorf("60 frames took %v of mock time", clock.Now().Sub(epoch))
	}
}

func TestPongEscapeQuitsThroughDriver(t *testing.T) {
	clock := NewMockClock(epoch)
	d := NewDriver(pong.NewWithConfig(config.DefaultPongConfig()), Options{Cols: 80, Rows: 24, Seed: 3, Clock: clock})
	p := &fakePlatform{batches: [][]Event{
		nil,
		{KeyEvent{Key: core.Key2, Down: true}},
		{KeyEvent{Key: core.Key2, Down: false}},
		{KeyEvent{Key: core.KeyEscape, Down: true}},
		nil,
	}}

	if err := d.Run(context.Background(), p); err != nil {
		t.Fatal(err)
	}
	if p.polls != 4 {
		t.Errorf("polls = %d, expected the loop to stop on the Escape frame", p.polls)
	}
	if !strings.Contains(p.presents[len(p.presents)-1], "vs Computer") {
		t.Errorf("last HUD = %q", p.presents[len(p.presents)-1])
	}
}

func TestFlappyRunsThroughDriver(t *testing.T) {
	clock := NewMockClock(epoch)
	game := flappy.NewWithConfig(config.DefaultFlappyConfig())
	d := NewDriver(game, Options{Cols: 80, Rows: 24, Seed: 3, Clock: clock})

	frames := 0
	p := &fakePlatform{onPoll: func(frame int) {
		frames = frame
		if frame == 1000 {
			d.Dispatch(QuitEvent{})
		}
	}}

	if err := d.Run(context.Background(), p); err != nil {
		t.Fatal(err)
	}
	if frames != 1000 {
		t.Errorf("ran %d frames", frames)
	}
	// Uncapped: every frame yields 1ms, so the game saw a second of 1ms
	// steps and the bird, never flapping, has crashed.
	if !game.State().GameOver {
		t.Error("an idle bird should be dead after 1000 frames")
	}
}
