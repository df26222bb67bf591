// arcade plays pixel games in the terminal, two pixels per character cell.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//
// Global flags:
//
//	--seed <value>      - Set RNG seed for reproducible gameplay (0 = time and pid)
//	--backend tea|tcell - Terminal presenter (default: tea)
//	--hold <duration>   - How long a key stays down after its last report
//	--repeat-delay <d>  - How long a key stays down before auto-repeat starts
//	--log-file <path>   - Write logs to a file (the game owns the screen)
//	--debug             - Log at debug level
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pixel-arcade/internal/engine"

	// Import games to register them
	_ "github.com/vovakirdan/pixel-arcade/internal/games/flappy"
	_ "github.com/vovakirdan/pixel-arcade/internal/games/pong"
)

const (
	backendTea   = "tea"
	backendTcell = "tcell"
)

var (
	// Global flags
	flagSeed    uint32
	flagBackend string
	flagHold    time.Duration
	flagDelay   time.Duration
	flagLogFile string
	flagDebug   bool
)

var (
	// logger receives runtime logs; it is silent unless --log-file is set.
	logger = log.New(io.Discard)
	// stderr reports failures once the terminal has been restored.
	stderr = log.NewWithOptions(os.Stderr, log.Options{Prefix: "arcade"})

	logFile *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		stderr.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Pixel Arcade - Flappy Bird and Pong in your terminal",
	Long: `Pixel Arcade renders games on a half-block pixel surface: every
character cell shows two pixels, so an 80x24 terminal is an 80x48 screen.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu

Examples:
  arcade list
  arcade play flappy
  arcade play pong --backend tcell
  arcade menu --log-file arcade.log --debug`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Uint32Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time and pid)")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", backendTea, "Terminal presenter: tea or tcell")
	rootCmd.PersistentFlags().DurationVar(&flagHold, "hold", engine.DefaultHold, "Key hold window (terminals never report key releases)")
	rootCmd.PersistentFlags().DurationVar(&flagDelay, "repeat-delay", engine.DefaultRepeatDelay, "How long a key stays down before the terminal's auto-repeat starts")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
}

// setup validates global flags and opens the log file.
func setup(_ *cobra.Command, _ []string) error {
	switch flagBackend {
	case backendTea, backendTcell:
	default:
		return fmt.Errorf("unknown backend %q (expected %s or %s)", flagBackend, backendTea, backendTcell)
	}

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		logFile = f
		logger = log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Prefix:          "arcade",
		})
	}
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return nil
}
