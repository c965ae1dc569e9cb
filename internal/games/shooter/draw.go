package shooter

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/space-arcade/internal/core"
)

// WorldSize returns the playfield size in pixels.
func (g *Game) WorldSize() (int, int) {
	return g.cfg.World.Width, g.cfg.World.Height
}

// Draw paints the current screen onto a pixel canvas in world coordinates.
func (g *Game) Draw(c core.Canvas) {
	switch g.state {
	case StateMenu:
		g.drawMenu(c)
	case StatePlaying, StateBossFight:
		g.drawWorld(c)
		g.drawHUD(c)
		if g.paused {
			drawCentered(c, "PAUSED", g.cfg.World.Width, 260, 40, core.ColorYellow)
		}
	case StateGameOver, StateWin:
		g.drawEnd(c)
	}
}

func (g *Game) drawMenu(c core.Canvas) {
	drawCentered(c, strings.ToUpper(g.Title()), g.cfg.World.Width, 30, 40, core.ColorBrightWhite)

	y := 90
	for _, s := range g.menuSections() {
		c.DrawText(s.heading, 60, y, 24, core.ColorYellow)
		y += 30
		for _, l := range s.lines {
			c.DrawText(l.text, 60, y, 20, s.color)
			y += l.step
		}
	}

	c.DrawText(g.bestRunText(), 10, 10, 20, core.ColorBrightCyan)
}

func (g *Game) drawWorld(c core.Canvas) {
	c.DrawSprite(core.SpriteBackground, core.NewRectF(0, 0, g.cfg.World.Width, g.cfg.World.Height))

	if g.player.IsAlive {
		c.DrawSprite(core.SpritePlayer, g.player.Rect())
	}

	for i := range g.enemyCount {
		if e := &g.enemies[i]; e.Active {
			c.DrawSprite(core.SpriteEnemy, e.Rect())
		}
	}

	if g.boss.Active {
		c.DrawSprite(core.SpriteBoss, g.boss.Rect())
	}

	for i := range g.bullets {
		if b := &g.bullets[i]; b.Active {
			c.DrawSprite(core.SpriteBullet, b.Rect())
		}
	}

	for i := range g.bossBullets {
		if b := &g.bossBullets[i]; b.Active {
			c.DrawSprite(core.SpriteBossBullet, b.Rect())
		}
	}
}

func (g *Game) drawHUD(c core.Canvas) {
	c.DrawText(fmt.Sprintf("Score: %d", g.score), 10, 10, 20, core.ColorBrightWhite)
	c.DrawText(fmt.Sprintf("Level: %d", g.level), 10, 35, 20, core.ColorBrightWhite)
	c.DrawText(fmt.Sprintf("Lives: %d", g.player.Lives), 10, 60, 20, core.ColorBrightWhite)

	right := g.cfg.World.Width - 180
	c.DrawText(fmt.Sprintf("Best: %d", g.highScore), right, 10, 20, core.ColorGreen)
	if g.boss.Active {
		c.DrawText(fmt.Sprintf("Boss: %d", g.boss.Health), right, 35, 20, core.ColorRed)
	}
}

func (g *Game) drawEnd(c core.Canvas) {
	headline, color, scoreText, hint := g.endScreen()

	hintX := 160
	if g.state == StateWin {
		hintX = 130
	}

	drawCentered(c, headline, g.cfg.World.Width, 160, 40, color)
	c.DrawText(scoreText, 260, 220, 20, core.ColorBrightWhite)
	c.DrawText(fmt.Sprintf("Best This Run: %d", g.highScore), 260, 250, 20, core.ColorGreen)
	c.DrawText(hint, hintX, 320, 20, core.ColorYellow)
}

// drawCentered draws text horizontally centred across width.
func drawCentered(c core.Canvas, text string, width, y, size int, color core.Color) {
	c.DrawText(text, width/2-c.MeasureText(text, size)/2, y, size, color)
}
