package shooter

import "github.com/vovakirdan/space-arcade/internal/core"

// update runs one simulation tick of the playing or boss phase.
// Sub-steps consume state mutated by earlier ones, so the order is fixed.
func (g *Game) update(in core.InputFrame) {
	g.updatePlayer(in)
	g.handlePlayerShooting(in)
	g.updateBullets()
	g.updateEnemies()

	if g.state == StateBossFight {
		g.updateBoss(g.runtime.TickSeconds())
		g.updateBossBullets()
	}

	g.checkBulletEnemyCollisions()

	if g.state == StateBossFight && g.checkBulletBossCollisions() {
		return
	}

	if g.checkPlayerCollisions() {
		g.handlePlayerHit()
		if g.state == StateGameOver {
			return
		}
	}

	if g.state == StatePlaying {
		g.updateScoreAndLevel()
	}
}

// updatePlayer applies held left/right movement and clamps to the world.
func (g *Game) updatePlayer(in core.InputFrame) {
	p := &g.player
	if !p.IsAlive {
		return
	}

	if in.Held(core.ActionLeft) {
		p.X -= p.Speed
	}
	if in.Held(core.ActionRight) {
		p.X += p.Speed
	}

	p.X = core.ClampF(p.X, 0, float64(g.cfg.World.Width-p.Width))
}

// handlePlayerShooting fires one bullet per fresh press from the first free slot.
func (g *Game) handlePlayerShooting(in core.InputFrame) {
	if !in.Has(core.ActionFire) || !g.player.IsAlive {
		return
	}

	i := firstFree(g.bullets)
	if i < 0 {
		return
	}

	g.emit(core.CueShoot)

	b := &g.bullets[i]
	b.Active = true
	b.X = g.player.X + float64(g.player.Width)/2 - float64(b.Width)/2
	b.Y = g.player.Y - float64(b.Height)
}

// updateBullets moves player bullets up and retires those fully above the top.
func (g *Game) updateBullets() {
	for i := range g.bullets {
		b := &g.bullets[i]
		if !b.Active {
			continue
		}
		b.Y -= b.Speed
		if b.Y+float64(b.Height) < 0 {
			b.Active = false
		}
	}
}

// updateEnemies moves enemies down. Enemies leaving the bottom re-enter above the top.
func (g *Game) updateEnemies() {
	for i := range g.enemyCount {
		e := &g.enemies[i]
		if !e.Active {
			continue
		}
		e.Y += e.Speed
		if e.Y > float64(g.cfg.World.Height) {
			e.Y = -float64(e.Height)
		}
	}
}

// updateBoss moves the boss between the walls and fires when its timer runs out.
func (g *Game) updateBoss(dt float64) {
	b := &g.boss
	if !b.Active {
		return
	}

	b.X += b.Speed
	maxX := float64(g.cfg.World.Width - b.Width)
	if b.X <= 0 {
		b.X = 0
		if b.Speed < 0 {
			b.Speed = -b.Speed
		}
	} else if b.X >= maxX {
		b.X = maxX
		if b.Speed > 0 {
			b.Speed = -b.Speed
		}
	}

	b.ShootTimer -= dt
	if b.ShootTimer <= 0 {
		g.fireBossVolley()
		b.ShootTimer = g.bossInterval()
	}
}

// bossInterval shortens as the boss loses health.
func (g *Game) bossInterval() float64 {
	b := &g.boss
	interval := 1.0
	if b.InitialHealth > 0 {
		interval += float64(b.Health) / float64(b.InitialHealth) * 0.5
	}
	if interval < g.cfg.Boss.MinInterval {
		interval = g.cfg.Boss.MinInterval
	}
	return interval
}

// fireBossVolley fires a centre shot and two lateral shots from the first free slots.
func (g *Game) fireBossVolley() {
	b := &g.boss
	spread := g.cfg.Boss.SpreadOffset

	for _, offset := range [3]float64{0, -spread, spread} {
		i := firstFree(g.bossBullets)
		if i < 0 {
			return
		}
		bb := &g.bossBullets[i]
		bb.Active = true
		bb.X = b.X + float64(b.Width)/2 - float64(bb.Width)/2 + offset
		bb.Y = b.Y + float64(b.Height)
	}
}

// updateBossBullets moves boss bullets down and retires those below the bottom.
func (g *Game) updateBossBullets() {
	for i := range g.bossBullets {
		b := &g.bossBullets[i]
		if !b.Active {
			continue
		}
		b.Y += b.Speed
		if b.Y > float64(g.cfg.World.Height) {
			b.Active = false
		}
	}
}

// checkBulletEnemyCollisions resolves at most one hit per bullet, scanning enemies in slot order.
func (g *Game) checkBulletEnemyCollisions() {
	for i := range g.bullets {
		b := &g.bullets[i]
		if !b.Active {
			continue
		}

		for j := range g.enemyCount {
			e := &g.enemies[j]
			if !e.Active || !core.Overlaps(b.Rect(), e.Rect()) {
				continue
			}

			b.Active = false
			e.Health--
			g.emit(core.CueExplode)

			if e.Health <= 0 {
				e.Active = false
				g.addScore(g.cfg.Scoring.KillPoints)
			}
			break
		}
	}
}

// checkBulletBossCollisions damages the boss and reports whether it was defeated.
func (g *Game) checkBulletBossCollisions() bool {
	boss := &g.boss
	if !boss.Active {
		return false
	}

	for i := range g.bullets {
		b := &g.bullets[i]
		if !b.Active || !core.Overlaps(b.Rect(), boss.Rect()) {
			continue
		}

		b.Active = false
		boss.Health--
		g.emit(core.CueExplode)

		if boss.Health <= 0 {
			boss.Active = false
			g.bossActive = false
			g.addScore(g.cfg.Boss.DefeatedBonus)
			g.win()
			return true
		}
	}
	return false
}

// checkPlayerCollisions reports whether any enemy, the boss or a boss bullet touches the player.
func (g *Game) checkPlayerCollisions() bool {
	if !g.player.IsAlive {
		return false
	}
	pr := g.player.Rect()

	for i := range g.enemyCount {
		if g.enemies[i].Active && core.Overlaps(pr, g.enemies[i].Rect()) {
			return true
		}
	}

	if g.boss.Active && core.Overlaps(pr, g.boss.Rect()) {
		return true
	}

	for i := range g.bossBullets {
		if g.bossBullets[i].Active && core.Overlaps(pr, g.bossBullets[i].Rect()) {
			return true
		}
	}
	return false
}

// handlePlayerHit costs one life and restarts the current wave or boss approach.
func (g *Game) handlePlayerHit() {
	g.player.Lives--

	if g.player.Lives <= 0 {
		g.emit(core.CueMusicStop)
		g.emit(core.CueGameOver)
		g.player.IsAlive = false
		g.gameOver = true
		g.state = StateGameOver
		return
	}

	g.emit(core.CuePlayerHit)
	g.recenterPlayer()
	clearBullets(g.bullets)
	clearBullets(g.bossBullets)

	if g.state == StateBossFight {
		// The boss keeps its health
		g.placeBoss()
		return
	}
	g.spawnWave()
}

// updateScoreAndLevel levels up on the score threshold, otherwise sends a
// tougher wave once the current one is cleared.
func (g *Game) updateScoreAndLevel() {
	if g.score >= g.level*g.cfg.Scoring.PointsPerLevel {
		g.level++

		switch {
		case g.level <= g.variant.LevelCap:
			// New level starts with easier enemies again
			g.hitsToKill = 1
			g.resetLevel()
		case g.variant.HasBossPhase:
			g.enterBossPhase()
		default:
			g.win()
		}
		return
	}

	if g.allEnemiesDestroyed() {
		g.hitsToKill++
		g.spawnWave()
	}
}

// resetLevel clears projectiles, respawns the wave and recenters the player.
func (g *Game) resetLevel() {
	clearBullets(g.bullets)
	clearBullets(g.bossBullets)
	g.boss.Active = false
	g.spawnWave()
	g.recenterPlayer()
}

// enterBossPhase replaces the enemy waves with a freshly spawned boss.
func (g *Game) enterBossPhase() {
	for i := range g.enemies {
		g.enemies[i].Active = false
		g.enemies[i].Health = 0
	}
	g.enemyCount = 0

	clearBullets(g.bullets)
	clearBullets(g.bossBullets)
	g.recenterPlayer()

	bc := g.cfg.Boss
	g.boss = Boss{
		Width:         bc.Width,
		Height:        bc.Height,
		Health:        bc.Health,
		InitialHealth: bc.Health,
		Active:        true,
	}
	g.placeBoss()

	g.bossActive = true
	g.state = StateBossFight
}

// placeBoss centres the boss at its spawn height and rearms its first volley.
func (g *Game) placeBoss() {
	b := &g.boss
	b.X = float64(g.cfg.World.Width)/2 - float64(b.Width)/2
	b.Y = float64(g.cfg.Boss.Y)
	b.Speed = g.cfg.Boss.Speed
	b.ShootTimer = g.cfg.Boss.FirstVolley
}

// win ends the run as a victory.
func (g *Game) win() {
	g.gameWon = true
	g.state = StateWin
	g.emit(core.CueMusicStop)
	g.emit(core.CueWin)
}

func (g *Game) addScore(points int) {
	g.score += points
	if g.score > g.highScore {
		g.highScore = g.score
	}
}

// allEnemiesDestroyed reports whether the current wave has no active enemy.
func (g *Game) allEnemiesDestroyed() bool {
	for i := range g.enemyCount {
		if g.enemies[i].Active {
			return false
		}
	}
	return true
}
