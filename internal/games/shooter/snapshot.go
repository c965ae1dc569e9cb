package shooter

import "math"

// Snapshot contains the complete simulation state for determinism testing.
// Uses primitive types only; positions are stored in thousandths of a pixel.
type Snapshot struct {
	Tick       uint64
	State      string
	Paused     bool
	Score      int
	Level      int
	HighScore  int
	HitsToKill int
	BossActive bool

	PlayerX     int
	PlayerY     int
	PlayerLives int
	PlayerAlive bool

	// Each enemy is 5 ints: X, Y, Speed, Health, Active
	EnemyCount int
	EnemyData  []int

	// Each bullet is 3 ints: X, Y, Active
	BulletData     []int
	BossBulletData []int

	// Boss is 5 ints: X, Y, Speed, Health, Active
	BossData []int
}

// fixed converts a world coordinate to thousandths of a pixel.
func fixed(v float64) int {
	return int(math.Round(v * 1000))
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	enemyData := make([]int, 0, len(g.enemies)*5)
	for i := range g.enemies {
		e := &g.enemies[i]
		enemyData = append(enemyData, fixed(e.X), fixed(e.Y), fixed(e.Speed), e.Health, boolInt(e.Active))
	}

	bulletData := make([]int, 0, len(g.bullets)*3)
	for i := range g.bullets {
		b := &g.bullets[i]
		bulletData = append(bulletData, fixed(b.X), fixed(b.Y), boolInt(b.Active))
	}

	bossBulletData := make([]int, 0, len(g.bossBullets)*3)
	for i := range g.bossBullets {
		b := &g.bossBullets[i]
		bossBulletData = append(bossBulletData, fixed(b.X), fixed(b.Y), boolInt(b.Active))
	}

	b := &g.boss
	return Snapshot{
		Tick:       uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		State:      g.state,
		Paused:     g.paused,
		Score:      g.score,
		Level:      g.level,
		HighScore:  g.highScore,
		HitsToKill: g.hitsToKill,
		BossActive: g.bossActive,

		PlayerX:     fixed(g.player.X),
		PlayerY:     fixed(g.player.Y),
		PlayerLives: g.player.Lives,
		PlayerAlive: g.player.IsAlive,

		EnemyCount: g.enemyCount,
		EnemyData:  enemyData,

		BulletData:     bulletData,
		BossBulletData: bossBulletData,

		BossData: []int{fixed(b.X), fixed(b.Y), fixed(b.Speed), b.Health, boolInt(b.Active)},
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, c := range snap.State {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(boolInt(snap.Paused))      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)                //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)                //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.HighScore)            //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.HitsToKill)           //#nosec G115 -- hash computation
	h = h*31 + uint64(boolInt(snap.BossActive))  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerX)              //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerY)              //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerLives)          //#nosec G115 -- hash computation
	h = h*31 + uint64(boolInt(snap.PlayerAlive)) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EnemyCount)           //#nosec G115 -- hash computation

	for _, data := range [][]int{snap.EnemyData, snap.BulletData, snap.BossBulletData, snap.BossData} {
		for _, v := range data {
			h = h*31 + uint64(v) //#nosec G115 -- hash computation
		}
	}

	return h
}
