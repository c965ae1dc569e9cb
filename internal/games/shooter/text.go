package shooter

import (
	"fmt"

	"github.com/vovakirdan/space-arcade/internal/core"
)

// menuLine is one line of the title screen. step is the pixel advance after it.
type menuLine struct {
	text string
	step int
}

// menuSection is a headed block of title screen lines.
type menuSection struct {
	heading string
	color   core.Color
	lines   []menuLine
}

// menuSections builds the title screen text for the current variant and config.
func (g *Game) menuSections() []menuSection {
	goal := fmt.Sprintf("- There are %d levels. Clear them all to win.", g.variant.LevelCap)
	if g.variant.HasBossPhase {
		goal = fmt.Sprintf("- Clear %d levels, then destroy the boss to win.", g.variant.LevelCap)
	}

	return []menuSection{
		{
			heading: "CONTROLS",
			color:   core.ColorGray,
			lines: []menuLine{
				{"- Move Left  : LEFT ARROW", 24},
				{"- Move Right : RIGHT ARROW", 24},
				{"- Shoot      : SPACE", 24},
				{"- Pause      : P", 24},
				{"- Save & Quit: ESC", 36},
			},
		},
		{
			heading: "GAME RULES",
			color:   core.ColorGray,
			lines: []menuLine{
				{fmt.Sprintf("- You start with %d lives.", g.cfg.Player.Lives), 24},
				{"- Colliding with an enemy costs 1 life.", 24},
				{fmt.Sprintf("- Each destroyed enemy gives %d point.", g.cfg.Scoring.KillPoints), 24},
				{fmt.Sprintf("- To reach the next level: score >= level * %d.", g.cfg.Scoring.PointsPerLevel), 24},
				{"- If you destroy all enemies but don't have", 20},
				{"  enough score, a new, tougher wave spawns.", 24},
				{goal, 32},
			},
		},
		{
			heading: "MENU",
			color:   core.ColorGreen,
			lines: []menuLine{
				{"Press N     - New Game (start from Level 1)", 24},
				{"Press L     - Load Saved Game (if available)", 24},
				{"Press ENTER - Same as New Game", 24},
			},
		},
	}
}

func (g *Game) bestRunText() string {
	return fmt.Sprintf("Best Score (this run): %d", g.highScore)
}

// endScreen returns the headline, its colour, the score label and the restart hint
// for the game over and win screens.
func (g *Game) endScreen() (string, core.Color, string, string) {
	if g.state == StateWin {
		return "YOU WIN!", core.ColorGreen,
			fmt.Sprintf("Final Score: %d", g.score),
			"Press ENTER to play again from Level 1"
	}
	return "GAME OVER", core.ColorRed,
		fmt.Sprintf("Score: %d", g.score),
		"Press ENTER to restart from Level 1"
}
