package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-arcade/internal/platform/tui"
	"github.com/vovakirdan/space-arcade/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game in the terminal",
	Long: `Start playing the specified game in the terminal.

Controls:
  N / Enter      - New game (title screen)
  L              - Load saved game (title screen)
  Left/Right/A/D - Move ship
  Space          - Fire
  P              - Pause
  Esc            - Save and exit
  Enter          - Restart from level 1 (after game over or victory)
  Ctrl+S         - Screenshot
  Ctrl+C         - Save and quit

Difficulty options:
  easy   - Five lives, slower enemies
  normal - Three lives (default)
  hard   - Two lives, faster enemies

Examples:
  arcade play shooter
  arcade play shooter_boss --difficulty easy
  arcade play shooter --config ./my-shooter.toml
  arcade play shooter --save ./slot1.txt`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	sess := openSession()
	logger.Info("game started", "game", gameID, "host", "terminal")

	// Run the game
	runErr := tui.Run(game, tui.Options{
		Store:  sess.store,
		Cues:   sess.cues,
		Logger: logger,
		Config: runtimeConfig(),
	})

	// Close session before potential exit
	sess.Close()

	if runErr != nil {
		logger.Error("game failed", "game", gameID, "error", runErr)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
	logger.Info("game ended", "game", gameID)
}
