package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-arcade/internal/platform/window"
	"github.com/vovakirdan/space-arcade/internal/registry"
)

var windowCmd = &cobra.Command{
	Use:   "window [game]",
	Short: "Play a game in a desktop window",
	Long: `Open a desktop window and play the specified game at its native
800x600 resolution. Closing the window saves progress.

Controls are the same as in the terminal, except that movement keys
are read as held rather than repeated.

Examples:
  arcade window
  arcade window shooter_boss
  arcade window shooter --difficulty hard --mute`,
	Args: cobra.MaximumNArgs(1),
	Run:  runWindow,
}

func runWindow(_ *cobra.Command, args []string) {
	gameID := "shooter"
	if len(args) > 0 {
		gameID = args[0]
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	sess := openSession()
	logger.Info("game started", "game", gameID, "host", "window")

	cfg := runtimeConfig()
	runErr := window.Run(game, window.Options{
		Store:  sess.store,
		Cues:   sess.cues,
		Logger: logger,
		Config: cfg,
	})

	sess.Close()

	if runErr != nil {
		logger.Error("window failed", "game", gameID, "error", runErr)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
	logger.Info("game ended", "game", gameID)
}
