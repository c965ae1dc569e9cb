package shooter

import (
	"testing"

	"github.com/vovakirdan/space-arcade/internal/core"
)

func TestGameDeterminism(t *testing.T) {
	// Hold right, fire every 10 ticks, drift left in between
	inputs := make([]core.InputFrame, 600)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i == 0:
			inputs[i].Set(core.ActionNewGame)
		case i%10 == 0:
			inputs[i].Set(core.ActionFire)
		case i%40 < 20:
			inputs[i].Hold(core.ActionRight)
		default:
			inputs[i].Hold(core.ActionLeft)
		}
	}

	for _, v := range []Variant{Classic(), BossRush()} {
		t.Run(v.ID, func(t *testing.T) {
			run := func() Snapshot {
				g := newTestGame(t, v)
				for _, in := range inputs {
					if g.Step(in).State.GameOver {
						break
					}
				}
				return g.Snapshot()
			}

			snap1 := run()
			snap2 := run()

			if snap1.Hash() != snap2.Hash() {
				t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
			}
			if snap1.Score != snap2.Score {
				t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", snap1.Score, snap2.Score)
			}
			if snap1.Tick != snap2.Tick {
				t.Errorf("Determinism failed: tick counts differ. Run1=%d, Run2=%d", snap1.Tick, snap2.Tick)
			}
		})
	}
}

func TestSummary(t *testing.T) {
	tests := []struct {
		variant Variant
		want    string
	}{
		{Classic(), "10 levels, then victory"},
		{BossRush(), "5 levels, then a boss fight"},
	}

	for _, tt := range tests {
		if got := New(tt.variant).Summary(); got != tt.want {
			t.Errorf("%s summary = %q, want %q", tt.variant.ID, got, tt.want)
		}
	}
}

func TestGameReset(t *testing.T) {
	g := startedGame(t, Classic())

	for range 30 {
		g.Step(press(core.ActionFire))
	}

	g.Reset(testRuntime())

	if g.state != StateMenu {
		t.Errorf("Reset should show the title screen, got %s", g.state)
	}
	if g.score != 0 || g.level != 1 || g.hitsToKill != 1 {
		t.Errorf("Reset should restore defaults, got score=%d level=%d hits=%d", g.score, g.level, g.hitsToKill)
	}
	if g.tickCount != 0 {
		t.Errorf("Reset should clear tickCount, got %d", g.tickCount)
	}
	if g.player.Lives != 3 || !g.player.IsAlive {
		t.Errorf("Reset should restore the player, got lives=%d alive=%v", g.player.Lives, g.player.IsAlive)
	}
	if activeCount(g.bullets) != 0 {
		t.Errorf("Reset should clear bullets, got %d active", activeCount(g.bullets))
	}
	if g.enemyCount != 6 || activeEnemies(g) != 6 {
		t.Errorf("Reset should spawn the level 1 wave, got count=%d active=%d", g.enemyCount, activeEnemies(g))
	}
}

func TestGamePools(t *testing.T) {
	tests := []struct {
		variant     Variant
		enemies     int
		bullets     int
		bossBullets int
	}{
		{Classic(), 20, 50, 0},
		{BossRush(), 30, 10, 20},
	}

	for _, tt := range tests {
		t.Run(tt.variant.ID, func(t *testing.T) {
			g := newTestGame(t, tt.variant)
			if len(g.enemies) != tt.enemies || len(g.bullets) != tt.bullets || len(g.bossBullets) != tt.bossBullets {
				t.Errorf("pools = %d/%d/%d, want %d/%d/%d",
					len(g.enemies), len(g.bullets), len(g.bossBullets),
					tt.enemies, tt.bullets, tt.bossBullets)
			}
		})
	}
}

func TestMenuTransitions(t *testing.T) {
	tests := []struct {
		name   string
		action core.Action
		want   string
	}{
		{"new game", core.ActionNewGame, StatePlaying},
		{"enter", core.ActionConfirm, StatePlaying},
		{"load without save", core.ActionLoad, StatePlaying},
		{"fire ignored", core.ActionFire, StateMenu},
		{"pause ignored", core.ActionPause, StateMenu},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, Classic())
			res := g.Step(press(tt.action))
			if g.state != tt.want {
				t.Errorf("state = %s, want %s", g.state, tt.want)
			}
			if tt.want == StatePlaying && !hasCue(res.Cues, core.CueMusicStart) {
				t.Errorf("entering play should start music, cues=%v", res.Cues)
			}
		})
	}
}

func TestPlayerMovement(t *testing.T) {
	g := startedGame(t, Classic())
	parkEnemies(g)
	startX := g.player.X

	in := idle()
	in.Hold(core.ActionLeft)
	g.Step(in)
	if g.player.X != startX-g.player.Speed {
		t.Errorf("held left: x = %.1f, want %.1f", g.player.X, startX-g.player.Speed)
	}

	// Clamp at the left wall
	for range 200 {
		g.Step(in)
	}
	if g.player.X != 0 {
		t.Errorf("player should clamp at 0, got %.1f", g.player.X)
	}

	// Clamp at the right wall
	right := idle()
	right.Hold(core.ActionRight)
	for range 400 {
		g.Step(right)
	}
	if want := float64(g.cfg.World.Width - g.player.Width); g.player.X != want {
		t.Errorf("player should clamp at %.0f, got %.1f", want, g.player.X)
	}
}

func TestShootingUsesFirstFreeSlot(t *testing.T) {
	g := startedGame(t, Classic())
	parkEnemies(g)

	res := g.Step(press(core.ActionFire))
	if !hasCue(res.Cues, core.CueShoot) {
		t.Errorf("firing should raise a shoot cue, cues=%v", res.Cues)
	}
	b := g.bullets[0]
	if !b.Active {
		t.Fatal("first slot should be active after firing")
	}

	wantX := g.player.X + float64(g.player.Width)/2 - float64(b.Width)/2
	wantY := g.player.Y - float64(b.Height) - b.Speed // fired then advanced once
	if b.X != wantX || b.Y != wantY {
		t.Errorf("bullet at (%.1f, %.1f), want (%.1f, %.1f)", b.X, b.Y, wantX, wantY)
	}

	// Free slot 0, keep slot 1 busy: the next shot reuses slot 0
	g.bullets[0].Active = false
	g.bullets[1].Active = true
	g.bullets[1].Y = 300
	g.Step(press(core.ActionFire))
	if !g.bullets[0].Active {
		t.Error("next shot should reuse slot 0")
	}
	if activeCount(g.bullets) != 2 {
		t.Errorf("expected 2 active bullets, got %d", activeCount(g.bullets))
	}
}

func TestShootingHeldDoesNotRepeat(t *testing.T) {
	g := startedGame(t, Classic())
	parkEnemies(g)

	in := idle()
	in.Hold(core.ActionFire)
	for range 10 {
		g.Step(in)
	}
	if n := activeCount(g.bullets); n != 0 {
		t.Errorf("held fire without a press should not shoot, got %d bullets", n)
	}
}

func TestFireWithFullPoolIsNoop(t *testing.T) {
	g := startedGame(t, BossRush())
	parkEnemies(g)

	for i := range g.bullets {
		g.bullets[i].Active = true
		g.bullets[i].Y = 300
	}
	before := make([]Bullet, len(g.bullets))
	copy(before, g.bullets)

	g.handlePlayerShooting(press(core.ActionFire))

	for i := range g.bullets {
		if g.bullets[i] != before[i] {
			t.Errorf("slot %d changed on a full pool: %+v -> %+v", i, before[i], g.bullets[i])
		}
	}
	if hasCue(g.cues, core.CueShoot) {
		t.Error("a full pool should not play the shoot cue")
	}
}

func TestBulletsRetireAboveTop(t *testing.T) {
	g := startedGame(t, Classic())
	parkEnemies(g)

	g.bullets[0] = Bullet{X: 100, Y: -25, Width: 30, Height: 30, Speed: 8, Active: true}
	g.updateBullets()
	if g.bullets[0].Active {
		t.Error("bullet fully above the top should be retired")
	}

	g.bullets[1] = Bullet{X: 100, Y: -10, Width: 30, Height: 30, Speed: 8, Active: true}
	g.updateBullets()
	if !g.bullets[1].Active {
		t.Error("bullet still partly visible should stay active")
	}
}

func TestEnemiesWrapBelowBottom(t *testing.T) {
	g := startedGame(t, Classic())

	e := &g.enemies[0]
	e.Y = float64(g.cfg.World.Height)
	e.Speed = 2
	g.updateEnemies()

	if !e.Active {
		t.Fatal("wrapping enemy should stay active")
	}
	if e.Y != -float64(e.Height) {
		t.Errorf("enemy y = %.1f, want %d", e.Y, -e.Height)
	}
}

func TestBulletKillsOneHealthEnemy(t *testing.T) {
	g := startedGame(t, Classic())
	parkEnemies(g)

	e := &g.enemies[0]
	e.X, e.Y, e.Speed, e.Health = 300, 200, 0, 1
	g.bullets[0] = Bullet{X: 320, Y: 230, Width: 30, Height: 30, Speed: 8, Active: true}

	res := g.Step(idle())

	if g.bullets[0].Active {
		t.Error("bullet should be spent")
	}
	if e.Active {
		t.Error("enemy with 1 health should be destroyed")
	}
	if g.score != 1 {
		t.Errorf("score = %d, want 1", g.score)
	}
	if g.highScore != 1 {
		t.Errorf("highScore = %d, want 1", g.highScore)
	}
	if !hasCue(res.Cues, core.CueExplode) {
		t.Errorf("hit should raise an explode cue, cues=%v", res.Cues)
	}
}

func TestBulletDamagesToughEnemy(t *testing.T) {
	g := startedGame(t, Classic())
	parkEnemies(g)

	e := &g.enemies[0]
	e.X, e.Y, e.Speed, e.Health = 300, 200, 0, 2
	g.bullets[0] = Bullet{X: 320, Y: 230, Width: 30, Height: 30, Speed: 8, Active: true}

	g.Step(idle())

	if !e.Active || e.Health != 1 {
		t.Errorf("enemy should survive with 1 health, got active=%v health=%d", e.Active, e.Health)
	}
	if g.score != 0 {
		t.Errorf("damage alone should not score, got %d", g.score)
	}
}

func TestBulletHitsFirstEnemyInSlotOrder(t *testing.T) {
	g := startedGame(t, Classic())
	parkEnemies(g)

	// Two co-located enemies: only the lower slot takes the hit
	for _, i := range []int{2, 3} {
		e := &g.enemies[i]
		e.X, e.Y, e.Speed, e.Health = 300, 200, 0, 1
	}
	g.bullets[0] = Bullet{X: 320, Y: 230, Width: 30, Height: 30, Speed: 8, Active: true}

	g.Step(idle())

	if g.enemies[2].Active {
		t.Error("enemy in slot 2 should be destroyed")
	}
	if !g.enemies[3].Active || g.enemies[3].Health != 1 {
		t.Error("enemy in slot 3 should be untouched this frame")
	}
	if g.score != 1 {
		t.Errorf("one bullet should score once, got %d", g.score)
	}
}

func TestLevelUpOncePerFrame(t *testing.T) {
	tests := []struct {
		name      string
		level     int
		score     int
		wantLevel int
	}{
		{"exact threshold", 1, 10, 2},
		{"score jumped past two thresholds", 1, 35, 2},
		{"below threshold", 3, 29, 3},
		{"mid game", 4, 40, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := startedGame(t, Classic())
			g.level = tt.level
			g.score = tt.score
			g.hitsToKill = 3

			g.updateScoreAndLevel()

			if g.level != tt.wantLevel {
				t.Errorf("level = %d, want %d", g.level, tt.wantLevel)
			}
			if tt.wantLevel > tt.level {
				if g.hitsToKill != 1 {
					t.Errorf("level-up should reset hitsToKill to 1, got %d", g.hitsToKill)
				}
				if want := g.spawner.WaveSize(tt.wantLevel, len(g.enemies)); g.enemyCount != want {
					t.Errorf("new level wave = %d, want %d", g.enemyCount, want)
				}
			}
		})
	}
}

func TestLevelUpBeatsWaveClear(t *testing.T) {
	g := startedGame(t, Classic())
	for i := range g.enemies {
		g.enemies[i].Active = false
	}
	g.score = 10
	g.hitsToKill = 2

	g.updateScoreAndLevel()

	if g.level != 2 {
		t.Errorf("level = %d, want 2", g.level)
	}
	if g.hitsToKill != 1 {
		t.Errorf("threshold takes priority over the clear check, hitsToKill = %d", g.hitsToKill)
	}
}

func TestWaveClearEscalates(t *testing.T) {
	g := startedGame(t, Classic())

	if g.enemyCount != 6 {
		t.Fatalf("level 1 wave = %d, want 6", g.enemyCount)
	}

	// One bullet inside each enemy
	for i := range g.enemyCount {
		e := &g.enemies[i]
		g.bullets[i] = Bullet{X: e.X + 25, Y: e.Y + 25, Width: 30, Height: 30, Speed: 8, Active: true}
	}

	g.Step(idle())

	if g.score != 6 {
		t.Fatalf("score = %d, want 6", g.score)
	}
	if g.level != 1 {
		t.Errorf("level = %d, want 1", g.level)
	}
	if g.hitsToKill != 2 {
		t.Errorf("hitsToKill = %d, want 2", g.hitsToKill)
	}
	if g.enemyCount != 6 || activeEnemies(g) != 6 {
		t.Errorf("fresh wave should have 6 enemies, got count=%d active=%d", g.enemyCount, activeEnemies(g))
	}
	for i := range g.enemyCount {
		if g.enemies[i].Health != 2 {
			t.Errorf("enemy %d health = %d, want 2", i, g.enemies[i].Health)
		}
	}
}

func TestClassicWinsAfterLevelCap(t *testing.T) {
	g := startedGame(t, Classic())
	parkEnemies(g)
	g.level = 10
	g.score = 100

	res := g.Step(idle())

	if g.state != StateWin {
		t.Fatalf("state = %s, want %s", g.state, StateWin)
	}
	if !g.gameWon || !res.State.GameOver {
		t.Error("win should end the run")
	}
	if !hasCue(res.Cues, core.CueMusicStop) || !hasCue(res.Cues, core.CueWin) {
		t.Errorf("win should stop music and play the win cue, cues=%v", res.Cues)
	}
}

func TestPlayerHitRespawnsWave(t *testing.T) {
	g := startedGame(t, Classic())
	g.bullets[4] = Bullet{X: 10, Y: 300, Width: 30, Height: 30, Speed: 8, Active: true}
	g.player.X = 100

	e := &g.enemies[0]
	e.X, e.Y, e.Speed = g.player.X, g.player.Y, 0
	before := g.enemies[1].X

	res := g.Step(idle())

	if g.player.Lives != 2 {
		t.Errorf("lives = %d, want 2", g.player.Lives)
	}
	if !hasCue(res.Cues, core.CuePlayerHit) {
		t.Errorf("hit should raise a player hit cue, cues=%v", res.Cues)
	}
	if want := float64(g.cfg.World.Width)/2 - float64(g.player.Width)/2; g.player.X != want {
		t.Errorf("player should respawn at %.0f, got %.0f", want, g.player.X)
	}
	if activeCount(g.bullets) != 0 {
		t.Error("player bullets should be cleared")
	}
	if g.enemies[1].X == before && g.enemies[0].X == g.player.X {
		t.Error("wave should be respawned")
	}
	if activeEnemies(g) != 6 {
		t.Errorf("respawned wave = %d, want 6", activeEnemies(g))
	}
	if g.state != StatePlaying {
		t.Errorf("state = %s, want %s", g.state, StatePlaying)
	}
}

func TestLastLifeIsTerminal(t *testing.T) {
	g := startedGame(t, Classic())
	g.player.Lives = 1
	g.addScore(4)

	e := &g.enemies[0]
	e.X, e.Y, e.Speed = g.player.X, g.player.Y, 0

	xs := make([]float64, len(g.enemies))
	for i := range g.enemies {
		xs[i] = g.enemies[i].X
	}

	res := g.Step(idle())

	if g.state != StateGameOver {
		t.Fatalf("state = %s, want %s", g.state, StateGameOver)
	}
	if g.player.Lives != 0 || g.player.IsAlive {
		t.Errorf("player should be dead with 0 lives, got lives=%d alive=%v", g.player.Lives, g.player.IsAlive)
	}
	if !res.State.GameOver || !g.gameOver {
		t.Error("game over flags should be set")
	}
	if !hasCue(res.Cues, core.CueGameOver) || !hasCue(res.Cues, core.CueMusicStop) {
		t.Errorf("game over should stop music and play the game over cue, cues=%v", res.Cues)
	}
	for i := range g.enemies {
		if g.enemies[i].X != xs[i] {
			t.Errorf("enemy %d moved on game over: no reset expected", i)
		}
	}

	// Nothing changes until confirm
	snap := g.Snapshot()
	for range 30 {
		g.Step(press(core.ActionFire, core.ActionNewGame, core.ActionLoad))
	}
	after := g.Snapshot()
	if snap.Hash() != after.Hash() {
		t.Error("state changed after game over without confirm")
	}

	res = g.Step(press(core.ActionConfirm))
	if g.state != StatePlaying {
		t.Errorf("confirm should restart, state = %s", g.state)
	}
	if g.score != 0 || g.level != 1 || g.player.Lives != 3 {
		t.Errorf("restart should reset to level 1, got score=%d level=%d lives=%d", g.score, g.level, g.player.Lives)
	}
	if g.highScore != 4 {
		t.Errorf("restart should keep the best score, got %d", g.highScore)
	}
	if !hasCue(res.Cues, core.CueMusicStart) {
		t.Error("restart should resume music")
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := startedGame(t, Classic())

	res := g.Step(press(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("pause should be reported")
	}

	snap := g.Snapshot()
	for range 20 {
		in := press(core.ActionFire)
		in.Hold(core.ActionLeft)
		g.Step(in)
	}
	after := g.Snapshot()
	if snap.Hash() != after.Hash() {
		t.Error("paused game should not advance")
	}

	g.Step(press(core.ActionPause))
	if g.paused {
		t.Error("second pause press should resume")
	}
}

func TestQuitSavesAndExits(t *testing.T) {
	g := startedGame(t, Classic())
	g.score = 7
	g.highScore = 12

	res := g.Step(press(core.ActionQuit))

	if !res.State.Exit {
		t.Error("quit should ask the host to leave")
	}
	if g.state != StateMenu {
		t.Errorf("state = %s, want %s", g.state, StateMenu)
	}

	data, err := g.readSave()
	if err != nil {
		t.Fatalf("quit should write a save: %v", err)
	}
	if data.Score != 7 || data.HighScore != 12 {
		t.Errorf("saved %+v, want score 7 and best 12", data)
	}

	// Exit is only reported for the quitting tick
	if g.Step(idle()).State.Exit {
		t.Error("exit should not persist into later ticks")
	}
}

func TestCuesResetEachStep(t *testing.T) {
	g := startedGame(t, Classic())
	parkEnemies(g)

	res := g.Step(press(core.ActionFire))
	if len(res.Cues) != 1 {
		t.Fatalf("cues = %v, want one shoot cue", res.Cues)
	}
	res = g.Step(idle())
	if len(res.Cues) != 0 {
		t.Errorf("cues should be empty on a quiet tick, got %v", res.Cues)
	}
}

func TestResizeKeepsRun(t *testing.T) {
	g := startedGame(t, Classic())
	g.addScore(3)

	g.Resize(20, 10)
	if !g.screenTooSmall {
		t.Fatal("20x10 should be too small")
	}
	snap := g.Snapshot()
	before := snap.Hash()
	g.Step(idle())
	after := g.Snapshot()
	if after.Hash() != before {
		t.Error("simulation should hold while the screen is too small")
	}

	g.Resize(80, 24)
	if g.screenTooSmall {
		t.Error("80x24 should be large enough")
	}
	if g.score != 3 || g.state != StatePlaying {
		t.Errorf("resize should keep the run, got score %d state %s", g.score, g.state)
	}
}
