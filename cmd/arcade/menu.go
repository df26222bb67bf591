package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pixel-arcade/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Q/Esc        - Quit

Examples:
  arcade menu
  arcade menu --backend tcell
  arcade menu --seed 42`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	cols, rows := terminalSize()

	// Menu loop
	for {
		res, err := tui.RunMenu(cols, rows)
		if err != nil {
			return err
		}
		if res.Quit {
			return nil
		}
		if res.Cols > 0 && res.Rows > 0 {
			cols, rows = res.Cols, res.Rows
		}

		if err := prepareConfig(res.GameID, ""); err != nil {
			return err
		}
		if err := runGame(res.GameID, cols, rows); err != nil {
			return err
		}
		logger.Info("back to menu", "game", res.GameID)
	}
}
