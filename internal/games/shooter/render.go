package shooter

import (
	"fmt"
	"math"

	"github.com/vovakirdan/space-arcade/internal/core"
)

// Minimum terminal size the game renders in.
const (
	minScreenW = 40
	minScreenH = 20
)

// Visual characters for rendering
const (
	PlayerChar     = 'A'
	EnemyChar      = 'V'
	BulletChar     = '|'
	BossChar       = '#'
	BossBulletChar = '*'
)

// Render draws the current game state to the terminal screen.
// The world is scaled to fit below a one-row HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Check for screen too small
	if g.screenTooSmall || dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	switch g.state {
	case StateMenu:
		g.renderMenu(dst)
	case StatePlaying, StateBossFight:
		g.renderWorld(dst)
		g.renderHUD(dst)
		if g.paused {
			drawCenteredBox(dst, "PAUSED", "Press P to resume")
		}
	case StateGameOver, StateWin:
		g.renderEnd(dst)
	}
}

// renderMenu draws the title screen.
func (g *Game) renderMenu(dst *core.Screen) {
	dst.DrawTextColor(1, 0, g.bestRunText(), core.ColorBrightCyan)
	dst.DrawTextCenteredColor(1, g.Title(), core.ColorBrightWhite)

	sections := g.menuSections()

	width := 0
	for _, s := range sections {
		for _, l := range s.lines {
			width = core.Max(width, len(l.text))
		}
	}
	x := core.Max(1, (dst.Width()-width)/2)

	// Blank lines between sections only when they fit
	rows := 0
	for _, s := range sections {
		rows += 1 + len(s.lines)
	}
	gap := 0
	if 3+rows+len(sections)-1 <= dst.Height() {
		gap = 1
	}

	y := 3
	for _, s := range sections {
		dst.DrawTextColor(x, y, s.heading, core.ColorYellow)
		y++
		for _, l := range s.lines {
			dst.DrawTextColor(x, y, l.text, s.color)
			y++
		}
		y += gap
	}
}

// renderHUD draws score, level, lives and best score on the top row.
func (g *Game) renderHUD(dst *core.Screen) {
	left := fmt.Sprintf("Score: %d  Level: %d  Lives: %d", g.score, g.level, g.player.Lives)
	dst.DrawTextColor(1, 0, left, core.ColorBrightWhite)

	if g.boss.Active {
		dst.DrawTextCenteredColor(0, fmt.Sprintf("  Boss: %d  ", g.boss.Health), core.ColorRed)
	}

	best := fmt.Sprintf("Best: %d", g.highScore)
	dst.DrawTextColor(dst.Width()-len(best)-1, 0, best, core.ColorGreen)
}

// renderWorld draws every live entity scaled into the play area.
func (g *Game) renderWorld(dst *core.Screen) {
	if g.player.IsAlive {
		g.fillCells(dst, g.player.Rect(), PlayerChar, core.ColorBrightCyan)
	}

	for i := range g.enemyCount {
		if e := &g.enemies[i]; e.Active {
			g.fillCells(dst, e.Rect(), EnemyChar, core.ColorRed)
		}
	}

	if g.boss.Active {
		g.fillCells(dst, g.boss.Rect(), BossChar, core.ColorMagenta)
	}

	for i := range g.bullets {
		if b := &g.bullets[i]; b.Active {
			g.fillCells(dst, b.Rect(), BulletChar, core.ColorYellow)
		}
	}

	for i := range g.bossBullets {
		if b := &g.bossBullets[i]; b.Active {
			g.fillCells(dst, b.Rect(), BossBulletChar, core.ColorOrange)
		}
	}
}

// fillCells paints a world rectangle onto the cells it covers.
// Cells above the play area are clipped so the HUD stays readable.
func (g *Game) fillCells(dst *core.Screen, r core.RectF, ch rune, c core.Color) {
	cr := g.cellRect(dst, r)
	if cr.Y < 1 {
		cr.H -= 1 - cr.Y
		cr.Y = 1
	}
	if cr.H <= 0 {
		return
	}
	dst.DrawRectColor(cr, ch, c)
}

// cellRect maps a world rectangle to terminal cells. Every visible entity
// covers at least one cell.
func (g *Game) cellRect(dst *core.Screen, r core.RectF) core.Rect {
	sx := float64(dst.Width()) / float64(g.cfg.World.Width)
	sy := float64(dst.Height()-1) / float64(g.cfg.World.Height)

	x0 := int(math.Floor(r.X * sx))
	x1 := int(math.Ceil((r.X + float64(r.W)) * sx))
	y0 := int(math.Floor(r.Y * sy))
	y1 := int(math.Ceil((r.Y + float64(r.H)) * sy))

	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0+1, x1-x0, y1-y0)
}

// renderEnd draws the game over or win screen.
func (g *Game) renderEnd(dst *core.Screen) {
	headline, color, scoreText, hint := g.endScreen()

	y := dst.Height()/2 - 3
	dst.DrawTextCenteredColor(y, headline, color)
	dst.DrawTextCenteredColor(y+2, scoreText, core.ColorBrightWhite)
	dst.DrawTextCenteredColor(y+3, fmt.Sprintf("Best This Run: %d", g.highScore), core.ColorGreen)
	dst.DrawTextCenteredColor(y+5, hint, core.ColorYellow)
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box background
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
