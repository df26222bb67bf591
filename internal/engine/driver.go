// Package engine drives a game frame by frame: it owns the clock, the
// off-screen surface and the input tracker, and orders every frame as
// input, step, render, present, pace.
package engine

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pixel-arcade/internal/config"
	"github.com/vovakirdan/pixel-arcade/internal/core"
	"github.com/vovakirdan/pixel-arcade/internal/registry"
)

// Platform is the terminal side of a pull-style frame loop.
type Platform interface {
	// PollEvents returns every event that arrived since the last call
	// without blocking.
	PollEvents() []Event
	// Present shows a fully rendered surface.
	Present(s *core.Screen) error
}

// Driver runs one game. It is single-threaded: every method must be called
// from the goroutine that owns the frame loop.
type Driver struct {
	game   registry.Game
	screen *core.Screen
	input  *core.Tracker
	clock  Clock
	logger *log.Logger
	pacing config.FrameConfig

	frameStart time.Time
	quit       bool
	gameOver   bool
}

// Options configures a Driver.
type Options struct {
	Cols, Rows int    // Initial terminal size in cells
	Seed       uint32 // RNG seed passed to the game
	Clock      Clock  // Defaults to the system clock
	Logger     *log.Logger
}

// NewDriver creates the surface, initialises the game on it and starts the
// clock.
func NewDriver(game registry.Game, opts Options) *Driver {
	if opts.Clock == nil {
		opts.Clock = NewSystemClock()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	screen := core.NewScreen(opts.Cols, opts.Rows)
	game.Init(core.RuntimeConfig{
		ScreenW: screen.Width(),
		ScreenH: screen.Height(),
		Seed:    opts.Seed,
	})

	d := &Driver{
		game:       game,
		screen:     screen,
		input:      core.NewTracker(),
		clock:      opts.Clock,
		logger:     opts.Logger,
		pacing:     game.Pacing(),
		frameStart: opts.Clock.Now(),
	}
	d.logger.Debug("game started", "game", game.ID(), "width", screen.Width(), "height", screen.Height(), "seed", opts.Seed)
	return d
}

// Game returns the driven game.
func (d *Driver) Game() registry.Game {
	return d.game
}

// Screen returns the off-screen surface.
func (d *Driver) Screen() *core.Screen {
	return d.screen
}

// Quit reports whether a quit has been requested.
func (d *Driver) Quit() bool {
	return d.quit
}

// Held reports whether k is currently down.
func (d *Driver) Held(k core.Key) bool {
	return d.input.Held(k)
}

// BeginFrame clears the per-frame pressed set. Call it before dispatching the
// frame's events.
func (d *Driver) BeginFrame() {
	d.input.BeginFrame()
}

// Dispatch applies one platform event.
func (d *Driver) Dispatch(ev Event) {
	switch e := ev.(type) {
	case KeyEvent:
		if e.Down {
			d.input.KeyDown(e.Key)
		} else {
			d.input.KeyUp(e.Key)
		}
	case ResizeEvent:
		d.resize(e.Cols, e.Rows)
	case QuitEvent:
		if !d.quit {
			d.logger.Debug("quit requested by platform")
		}
		d.quit = true
	}
}

// resize recreates the surface and restarts the game on it. Notifications
// that do not change the size are ignored.
func (d *Driver) resize(cols, rows int) {
	if cols == d.screen.Cols() && rows == d.screen.Rows() {
		return
	}
	d.screen.Resize(cols, rows)
	d.game.Resize(d.screen.Width(), d.screen.Height())
	d.gameOver = false
	d.logger.Debug("surface resized, game reset", "cols", d.screen.Cols(), "rows", d.screen.Rows(),
		"width", d.screen.Width(), "height", d.screen.Height())
}

// Frame measures the elapsed time, steps the game and renders it into the
// surface. It returns the clamped step and whether the driver should stop.
func (d *Driver) Frame() (dt float64, quit bool) {
	now := d.clock.Now()
	dt = core.ClampStep(now.Sub(d.frameStart).Seconds(), d.pacing.MaxStep)
	d.frameStart = now

	res := d.game.Step(dt, d.input)
	if res.Quit && !d.quit {
		d.logger.Debug("quit requested by game", "game", d.game.ID())
		d.quit = true
	}
	if res.State.GameOver != d.gameOver {
		d.gameOver = res.State.GameOver
		if d.gameOver {
			d.logger.Debug("game over", "game", d.game.ID(), "score", res.State.Score)
		} else {
			d.logger.Debug("game restarted", "game", d.game.ID())
		}
	}

	d.game.Render(d.screen)
	return dt, d.quit
}

// NextDelay returns how long to wait before the next frame: the rest of the
// target interval, or the yield pause when the game is uncapped.
func (d *Driver) NextDelay() time.Duration {
	interval := d.pacing.Interval()
	if interval == 0 {
		return d.pacing.Yield()
	}
	return max(interval-d.clock.Now().Sub(d.frameStart), 0)
}

// Throttle sleeps for NextDelay.
func (d *Driver) Throttle() {
	d.clock.Sleep(d.NextDelay())
}

// Run is the pull-style frame loop. It returns nil after a quit, ctx's error
// when cancelled, or the first presentation error.
func (d *Driver) Run(ctx context.Context, p Platform) error {
	for !d.quit {
		if err := ctx.Err(); err != nil {
			return err
		}

		d.BeginFrame()
		for _, ev := range p.PollEvents() {
			d.Dispatch(ev)
		}
		if d.quit {
			break
		}

		d.Frame()
		if err := p.Present(d.screen); err != nil {
			return fmt.Errorf("engine: present: %w", err)
		}
		d.Throttle()
	}
	return nil
}
