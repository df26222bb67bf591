package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pixel-arcade/internal/config"
	"github.com/vovakirdan/pixel-arcade/internal/engine"
	"github.com/vovakirdan/pixel-arcade/internal/games/flappy"
	"github.com/vovakirdan/pixel-arcade/internal/games/pong"
	platterm "github.com/vovakirdan/pixel-arcade/internal/platform/term"
	"github.com/vovakirdan/pixel-arcade/internal/platform/tui"
	"github.com/vovakirdan/pixel-arcade/internal/registry"
	"github.com/vovakirdan/pixel-arcade/internal/rng"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Flappy Bird:
  Space      - Flap (restart after a crash)

Pong:
  1/2        - Pick 2 Players or vs Computer in the menu
  W/S        - Left paddle
  Up/Down    - Right paddle (2 Players)
  Space      - Serve
  R          - Reset the match
  Esc        - Quit

Everywhere:
  Q/Ctrl+C   - Quit
  Ctrl+S     - Save a text screenshot (tea backend)

Game settings are read from --config, ~/.arcade/configs/<game>.yaml or
./configs/<game>.yaml, falling back to built-in defaults.

Examples:
  arcade play flappy
  arcade play pong --seed 42
  arcade play flappy --config ./my-flappy.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}
	if err := prepareConfig(gameID, flagConfig); err != nil {
		return err
	}

	cols, rows := terminalSize()
	return runGame(gameID, cols, rows)
}

// prepareConfig loads the game's config once so that a broken file is
// reported before the terminal is taken over, then points the game at it.
func prepareConfig(gameID, path string) error {
	switch gameID {
	case "flappy":
		if _, err := config.LoadFlappy(path); err != nil {
			return fmt.Errorf("flappy: %w", err)
		}
		flappy.SetConfigPath(path)
	case "pong":
		if _, err := config.LoadPong(path); err != nil {
			return fmt.Errorf("pong: %w", err)
		}
		pong.SetConfigPath(path)
	}
	return nil
}

// terminalSize returns the size of stdout in cells, or 80x24.
func terminalSize() (cols, rows int) {
	cols, rows = 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cols, rows = w, h
	}
	return cols, rows
}

// gameSeed returns --seed, or one derived from the clock and the pid.
func gameSeed() uint32 {
	if flagSeed != 0 {
		return flagSeed
	}
	return rng.SeedFrom(time.Now(), uintptr(os.Getpid()))
}

// runGame plays one game on the selected backend until the player quits.
func runGame(gameID string, cols, rows int) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	seed := gameSeed()
	logger.Info("starting game", "game", gameID, "backend", flagBackend, "seed", seed)

	if flagBackend == backendTcell {
		return runTcell(game, seed)
	}
	return tui.Run(game, tui.Options{
		Cols:        cols,
		Rows:        rows,
		Seed:        seed,
		Hold:        flagHold,
		RepeatDelay: flagDelay,
		Logger:      logger,
	})
}

// runTcell drives the game with engine.Driver.Run on a tcell screen.
func runTcell(game registry.Game, seed uint32) error {
	p, err := platterm.New(nil, flagHold, flagDelay)
	if err != nil {
		return err
	}
	defer p.Close()

	cols, rows := p.Size()
	d := engine.NewDriver(game, engine.Options{
		Cols:   cols,
		Rows:   rows,
		Seed:   seed,
		Logger: logger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := d.Run(ctx, p); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
