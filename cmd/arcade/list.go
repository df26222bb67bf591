package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pixel-arcade/internal/config"
	"github.com/vovakirdan/pixel-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows every registered game with its default frame pacing.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println()

	// Calculate column widths
	maxIDLen, maxTitleLen := 2, 5 // "ID", "Title" headers
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
		maxTitleLen = max(maxTitleLen, len(g.Title))
	}

	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Pacing")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "------")

	for _, g := range games {
		fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, g.ID, maxTitleLen, g.Title, gamePacing(g.ID))
	}

	fmt.Println()
	fmt.Println("Run 'arcade play <id>' to play a game.")
}

// gamePacing describes the default pacing of a registered game.
func gamePacing(gameID string) string {
	game, err := registry.Create(gameID)
	if err != nil {
		return "?"
	}
	return describePacing(game.Pacing())
}

// describePacing formats a frame config for humans.
func describePacing(f config.FrameConfig) string {
	if f.FPS == 0 {
		return fmt.Sprintf("uncapped (%dms yield)", f.YieldMs)
	}
	return fmt.Sprintf("%d fps", f.FPS)
}
