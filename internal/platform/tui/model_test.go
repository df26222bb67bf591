package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pixel-arcade/internal/config"
	"github.com/vovakirdan/pixel-arcade/internal/core"
	"github.com/vovakirdan/pixel-arcade/internal/engine"
	"github.com/vovakirdan/pixel-arcade/internal/games/pong"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func newPongModel(t *testing.T) (Model, *pong.Game, *engine.MockClock) {
	t.Helper()
	clock := engine.NewMockClock(epoch)
	game := pong.NewWithConfig(config.DefaultPongConfig())
	m := NewModel(game, Options{
		Cols:          80,
		Rows:          24,
		Seed:          7,
		Hold:          100 * time.Millisecond,
		RepeatDelay:   400 * time.Millisecond,
		Clock:         clock,
		ScreenshotDir: t.TempDir(),
	})
	return m, game, clock
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func tick(t *testing.T, m Model, clock *engine.MockClock) (Model, tea.Cmd) {
	t.Helper()
	clock.Advance(16 * time.Millisecond)
	return update(t, m, TickMsg(clock.Now()))
}

func TestModelKeyReachesGame(t *testing.T) {
	m, game, clock := newPongModel(t)

	m, _ = update(t, m, runeKey('2'))
	m, cmd := tick(t, m, clock)

	if game.InMenu() {
		t.Error("pressing 2 should start a game against the computer")
	}
	if cmd == nil {
		t.Error("tick should schedule the next frame")
	}
	if m.View() == "" {
		t.Error("View() should render the surface")
	}
}

func TestModelQuitBinding(t *testing.T) {
	m, _, _ := newPongModel(t)

	m, cmd := update(t, m, runeKey('q'))
	if !isQuit(cmd) {
		t.Error("q should quit the program")
	}
	if !m.Driver().Quit() {
		t.Error("the driver should see the quit")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestModelGameQuit(t *testing.T) {
	m, _, clock := newPongModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	_, cmd := tick(t, m, clock)

	if !isQuit(cmd) {
		t.Error("escape in pong should end the program on the next frame")
	}
}

func TestModelResize(t *testing.T) {
	m, _, _ := newPongModel(t)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	s := m.Driver().Screen()
	if s.Width() != 120 || s.Height() != 80 {
		t.Errorf("surface = %dx%d, expected 120x80", s.Width(), s.Height())
	}
}

func TestModelHeldKeyReleasesAfterHold(t *testing.T) {
	m, game, clock := newPongModel(t)

	// Leave the menu.
	m, _ = update(t, m, runeKey('1'))
	m, _ = tick(t, m, clock)
	clock.Advance(200 * time.Millisecond)
	m, _ = tick(t, m, clock)
	if game.InMenu() {
		t.Fatal("still in the menu")
	}

	start := game.State()
	m, _ = update(t, m, runeKey('w'))
	m, _ = tick(t, m, clock)
	if !m.driver.Held(core.KeyW) {
		t.Error("W should be held after its first report")
	}

	// Nothing arrives until the terminal starts auto-repeating.
	clock.Advance(300 * time.Millisecond)
	m, _ = tick(t, m, clock)
	if !m.driver.Held(core.KeyW) {
		t.Error("W should stay held until auto-repeat starts")
	}
	m, _ = update(t, m, runeKey('w'))
	m, _ = tick(t, m, clock)

	clock.Advance(150 * time.Millisecond)
	m, _ = tick(t, m, clock)
	if m.driver.Held(core.KeyW) {
		t.Error("W should be released once the hold window passes")
	}
	if game.State() != start {
		t.Error("moving a paddle should not change the score")
	}
}

func TestModelBlurReleasesKeys(t *testing.T) {
	m, _, clock := newPongModel(t)

	m, _ = update(t, m, runeKey('w'))
	m, _ = tick(t, m, clock)
	m, _ = update(t, m, tea.BlurMsg{})

	if m.driver.Held(core.KeyW) {
		t.Error("losing focus should release held keys")
	}
}

func TestModelScreenshot(t *testing.T) {
	m, _, clock := newPongModel(t)
	m, _ = tick(t, m, clock)

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd != nil {
		t.Error("screenshot should not schedule anything")
	}

	files, err := filepath.Glob(filepath.Join(m.screenshotDir, "pong_*.txt"))
	if err != nil || len(files) != 1 {
		t.Fatalf("screenshots = %v (%v), expected one", files, err)
	}
}
