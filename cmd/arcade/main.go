// arcade is a space shooter for the terminal and the desktop.
//
// Usage:
//
//	arcade                   - Start menu to pick a variant interactively
//	arcade list              - List available games
//	arcade play <game>       - Play a game in the terminal
//	arcade window [game]     - Play a game in a desktop window
//	arcade menu              - Start menu to pick games interactively
//	arcade scores <game>     - Show recorded runs for a game
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--seed <value>         - Set RNG seed for reproducible gameplay
//	--db <path>            - Set database path (default: ~/.arcade/scores.db)
//	--save <path>          - Override the save file of the selected game
//	--config <path>        - Load a custom YAML or TOML shooter config
//	--difficulty <preset>  - easy, normal or hard
//	--mute                 - Disable sound and music
//	--log-file <path>      - Write logs to this file (default: ~/.arcade/arcade.log)
//	--debug                - Enable debug logging
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/space-arcade/internal/games/shooter"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagSavePath   string
	flagConfig     string
	flagDifficulty string
	flagMute       bool
	flagLogFile    string
	flagDebug      bool
)

func main() {
	err := rootCmd.Execute()
	closeLog()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Space Arcade - Shoot down waves of enemies in your terminal",
	Long: `Space Arcade is a space shooter with two variants:

  shooter        - Classic: clear ten levels of enemy waves
  shooter_boss   - Boss Rush: survive five levels, then defeat the boss

Progress is saved when you press Esc and restored with L on the title screen.

Available commands:
  list     - Show all available games
  play     - Play a specific game in the terminal
  window   - Play a specific game in a desktop window
  menu     - Interactive game picker menu (default)
  scores   - View recorded runs

Examples:
  arcade
  arcade play shooter
  arcade play shooter_boss --difficulty hard
  arcade window shooter --mute
  arcade scores shooter_boss`,
	Args:              cobra.NoArgs,
	PersistentPreRunE: setup,
	Run:               runMenu,
}

func init() {
	// Global persistent flags
	flags := rootCmd.PersistentFlags()
	flags.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	flags.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	flags.StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	flags.StringVar(&flagSavePath, "save", "", "Path to save file (default: savegame.txt or savegame_boss.txt)")
	flags.StringVar(&flagConfig, "config", "", "Path to custom shooter config (YAML or TOML)")
	flags.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	flags.BoolVar(&flagMute, "mute", false, "Disable sound effects and music")
	flags.StringVar(&flagLogFile, "log-file", "~/.arcade/arcade.log", "Path to log file (empty disables logging)")
	flags.BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
}
