// Package term presents games directly on a tcell screen. Unlike the Bubble
// Tea presenter it leaves the loop to engine.Driver.Run: events are pumped
// into a channel in the background and drained without blocking each frame.
package term

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/pixel-arcade/internal/core"
	"github.com/vovakirdan/pixel-arcade/internal/engine"
)

// eventBuffer is the capacity of the pump channel.
const eventBuffer = 100

const upperHalf = '▀'

// Platform implements engine.Platform on a tcell screen.
type Platform struct {
	screen tcell.Screen
	events chan tcell.Event
	done   chan struct{}
	latch  *engine.KeyLatch
	clock  engine.Clock
}

// New opens the terminal and starts pumping its events.
// hold and delay configure the key latch, see engine.NewKeyLatch.
func New(clock engine.Clock, hold, delay time.Duration) (*Platform, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("term: new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("term: init screen: %w", err)
	}
	return NewWithScreen(screen, clock, hold, delay), nil
}

// NewWithScreen wraps an initialised screen, such as a
// tcell.SimulationScreen in tests.
func NewWithScreen(screen tcell.Screen, clock engine.Clock, hold, delay time.Duration) *Platform {
	if clock == nil {
		clock = engine.NewSystemClock()
	}
	screen.HideCursor()
	screen.EnableFocus()

	p := &Platform{
		screen: screen,
		events: make(chan tcell.Event, eventBuffer),
		done:   make(chan struct{}),
		latch:  engine.NewKeyLatch(hold, delay),
		clock:  clock,
	}
	go p.pump()
	return p
}

// pump forwards screen events until the screen is finalised.
func (p *Platform) pump() {
	for {
		ev := p.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case p.events <- ev:
		case <-p.done:
			return
		}
	}
}

// Size returns the terminal size in cells.
func (p *Platform) Size() (cols, rows int) {
	return p.screen.Size()
}

// PollEvents drains pending terminal events without blocking and appends the
// releases of keys whose hold window has passed.
func (p *Platform) PollEvents() []engine.Event {
	now := p.clock.Now()
	var out []engine.Event
	for {
		select {
		case ev := <-p.events:
			out = p.translate(out, ev, now)
		default:
			for _, ev := range p.latch.Expire(now) {
				out = append(out, ev)
			}
			return out
		}
	}
}

func (p *Platform) translate(out []engine.Event, ev tcell.Event, now time.Time) []engine.Event {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if isQuit(ev) {
			return append(out, engine.QuitEvent{})
		}
		k, ok := mapKey(ev)
		if !ok {
			return out
		}
		if kev, ok := p.latch.Press(k, now); ok {
			out = append(out, kev)
		}

	case *tcell.EventResize:
		cols, rows := ev.Size()
		p.screen.Sync()
		out = append(out, engine.ResizeEvent{Cols: cols, Rows: rows})

	case *tcell.EventFocus:
		if !ev.Focused {
			for _, kev := range p.latch.ReleaseAll() {
				out = append(out, kev)
			}
		}
	}
	return out
}

// Present copies the surface to the terminal and shows it.
func (p *Platform) Present(s *core.Screen) error {
	for row := 0; row < s.Rows(); row++ {
		for col := 0; col < s.Cols(); {
			top, bottom, g, ok := s.Cell(col, row)
			if !ok {
				p.screen.SetContent(col, row, upperHalf, nil, style(top, bottom))
				col++
				continue
			}
			p.screen.SetContent(col, row, g.Rune, nil, style(g.Color, core.Mix(top, bottom)))
			col += max(runewidth.RuneWidth(g.Rune), 1)
		}
	}
	p.screen.Show()
	return nil
}

// Close restores the terminal.
func (p *Platform) Close() {
	close(p.done)
	p.screen.Fini()
}

func style(fg, bg core.Color) tcell.Style {
	return tcell.StyleDefault.
		Foreground(rgb(fg)).
		Background(rgb(bg))
}

func rgb(c core.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
