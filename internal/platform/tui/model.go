package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pixel-arcade/internal/engine"
	"github.com/vovakirdan/pixel-arcade/internal/registry"
)

// Options configures the Bubble Tea presenter.
type Options struct {
	Cols, Rows    int           // Initial terminal size in cells
	Seed          uint32        // RNG seed passed to the game
	Hold          time.Duration // Key hold window, see engine.KeyLatch
	RepeatDelay   time.Duration // Hold before the first auto-repeat, see engine.KeyLatch
	Clock         engine.Clock  // Defaults to the system clock
	Logger        *log.Logger
	ScreenshotDir string // Defaults to ~/.arcade/screenshots
}

// Model is the Bubble Tea model for running a game. Bubble Tea owns the
// loop: key and resize messages are dispatched as they arrive and each tick
// runs one frame.
type Model struct {
	driver        *engine.Driver
	latch         *engine.KeyLatch
	clock         engine.Clock
	logger        *log.Logger
	keys          KeyMap
	mapper        *KeyMapper
	screenshotDir string
	quitting      bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, opts Options) Model {
	if opts.Clock == nil {
		opts.Clock = engine.NewSystemClock()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.ScreenshotDir == "" {
		opts.ScreenshotDir = filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	}

	return Model{
		driver: engine.NewDriver(game, engine.Options{
			Cols:   opts.Cols,
			Rows:   opts.Rows,
			Seed:   opts.Seed,
			Clock:  opts.Clock,
			Logger: opts.Logger,
		}),
		latch:         engine.NewKeyLatch(opts.Hold, opts.RepeatDelay),
		clock:         opts.Clock,
		logger:        opts.Logger,
		keys:          DefaultKeyMap(),
		mapper:        NewKeyMapper(),
		screenshotDir: opts.ScreenshotDir,
	}
}

// Driver returns the frame driver behind the model.
func (m Model) Driver() *engine.Driver {
	return m.driver
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.driver.NextDelay())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.driver.Dispatch(engine.ResizeEvent{Cols: msg.Width, Rows: msg.Height})
		return m, nil

	case tea.BlurMsg:
		// Releases are never reported, so a key held while focus leaves
		// would stay down until its hold window ran out.
		for _, ev := range m.latch.ReleaseAll() {
			m.driver.Dispatch(ev)
		}
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.driver.Dispatch(engine.QuitEvent{})
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	k, ok := m.mapper.MapKey(msg)
	if !ok {
		return m, nil
	}
	if ev, ok := m.latch.Press(k, m.clock.Now()); ok {
		m.driver.Dispatch(ev)
	}
	return m, nil
}

// handleTick runs one frame and schedules the next.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	for _, ev := range m.latch.Expire(m.clock.Now()) {
		m.driver.Dispatch(ev)
	}

	if _, quit := m.driver.Frame(); quit {
		m.quitting = true
		return m, tea.Quit
	}
	// Keys arriving before the next tick belong to the next frame.
	m.driver.BeginFrame()

	return m, tickCmd(m.driver.NextDelay())
}

// saveScreenshot writes the current surface as plain text.
func (m Model) saveScreenshot() (string, error) {
	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		return "", fmt.Errorf("tui: screenshot dir: %w", err)
	}

	timestamp := m.clock.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.driver.Game().ID(), timestamp)
	path := filepath.Join(m.screenshotDir, filename)

	if err := os.WriteFile(path, []byte(m.driver.Screen().String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}
	return path, nil
}

// View renders the surface the last frame produced.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.driver.Screen())
}

// Run starts the Bubble Tea program for game and blocks until it quits.
func Run(game registry.Game, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, opts),
		tea.WithAltScreen(),   // Use alternate screen buffer
		tea.WithReportFocus(), // BlurMsg releases latched keys
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
