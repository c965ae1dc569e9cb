package shooter

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/space-arcade/internal/config"
	"github.com/vovakirdan/space-arcade/internal/core"
)

func TestSpawnWaveSizeAndHealth(t *testing.T) {
	cfg := config.DefaultShooterConfig()

	tests := []struct {
		name       string
		variant    Variant
		level      int
		hitsToKill int
		want       int
	}{
		{"classic level 1", Classic(), 1, 1, 6},
		{"classic level 3", Classic(), 3, 2, 12},
		{"classic level 5 capped", Classic(), 5, 1, 18},
		{"classic level 6 capped", Classic(), 6, 4, 20},
		{"classic level 10 capped", Classic(), 10, 1, 20},
		{"boss level 1", BossRush(), 1, 1, 6},
		{"boss level 5", BossRush(), 5, 3, 18},
		{"boss level 9 capped", BossRush(), 9, 1, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSpawner(tt.variant, cfg, rand.New(rand.NewSource(7)))
			pool := make([]Enemy, tt.variant.MaxEnemies)

			// Stale slots from a previous wave must be cleared
			for i := range pool {
				pool[i] = Enemy{Active: true, Health: 9}
			}

			got := s.Spawn(pool, tt.level, tt.hitsToKill)
			if got != tt.want {
				t.Fatalf("Spawn() = %d, want %d", got, tt.want)
			}

			for i := range pool {
				e := pool[i]
				if i >= got {
					if e.Active || e.Health != 0 {
						t.Errorf("slot %d beyond wave should be inactive with 0 health, got active=%v health=%d", i, e.Active, e.Health)
					}
					continue
				}
				if !e.Active {
					t.Errorf("enemy %d should be active", i)
				}
				if e.Health != tt.hitsToKill {
					t.Errorf("enemy %d health = %d, want %d", i, e.Health, tt.hitsToKill)
				}
				if e.Speed < 0.5 {
					t.Errorf("enemy %d speed %.2f below floor", i, e.Speed)
				}
			}
		})
	}
}

func TestSpawnWavePlacementBand(t *testing.T) {
	cfg := config.DefaultShooterConfig()

	for _, v := range []Variant{Classic(), BossRush()} {
		t.Run(v.ID, func(t *testing.T) {
			s := NewSpawner(v, cfg, rand.New(rand.NewSource(99)))
			pool := make([]Enemy, v.MaxEnemies)
			minX := float64(cfg.World.Width/2 - v.SpawnBand/2)
			maxX := float64(cfg.World.Width/2 + v.SpawnBand/2 - cfg.Enemy.Width)

			for level := 1; level <= 10; level++ {
				n := s.Spawn(pool, level, 1)
				for i := range n {
					e := pool[i]
					if e.X < minX || e.X > maxX {
						t.Errorf("level %d enemy %d x=%.0f outside [%.0f, %.0f]", level, i, e.X, minX, maxX)
					}
					if e.Y < float64(v.SpawnYMin) || e.Y > float64(v.SpawnYMax) {
						t.Errorf("level %d enemy %d y=%.0f outside [%d, %d]", level, i, e.Y, v.SpawnYMin, v.SpawnYMax)
					}
				}
			}
		})
	}
}

func TestSpawnWaveSpeedScalesWithLevel(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	cfg.Enemy.JitterSteps = 0
	s := NewSpawner(Classic(), cfg, rand.New(rand.NewSource(1)))
	pool := make([]Enemy, 20)

	tests := []struct {
		level int
		want  float64
	}{
		{1, 1.3},
		{2, 1.6},
		{5, 2.5},
	}

	for _, tt := range tests {
		s.Spawn(pool, tt.level, 1)
		if diff := pool[0].Speed - tt.want; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("level %d speed = %.3f, want %.3f", tt.level, pool[0].Speed, tt.want)
		}
	}
}

func TestSpawnWaveSpeedFloor(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	cfg.Enemy.BaseSpeed = 0
	cfg.Enemy.SpeedPerLevel = 0
	s := NewSpawner(Classic(), cfg, rand.New(rand.NewSource(3)))
	pool := make([]Enemy, 20)

	n := s.Spawn(pool, 2, 1)
	for i := range n {
		if pool[i].Speed != cfg.Enemy.MinSpeed {
			t.Errorf("enemy %d speed = %.2f, want floor %.2f", i, pool[i].Speed, cfg.Enemy.MinSpeed)
		}
	}
}

func TestSpawnWaveRejectsOverlapWhenRoomExists(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	cfg.World.Width = 100000

	v := BossRush()
	v.SpawnBand = 100000
	v.SpawnYMax = 100000

	s := NewSpawner(v, cfg, rand.New(rand.NewSource(5)))
	pool := make([]Enemy, v.MaxEnemies)
	n := s.Spawn(pool, 9, 1)

	for i := range n {
		for j := i + 1; j < n; j++ {
			if core.Overlaps(pool[i].Rect(), pool[j].Rect()) {
				t.Errorf("enemies %d and %d overlap", i, j)
			}
		}
	}
}

func TestSpawnWaveAcceptsOverlapWhenCrowded(t *testing.T) {
	cfg := config.DefaultShooterConfig()

	// A band exactly one enemy wide and a single spawn row force overlaps
	v := BossRush()
	v.SpawnBand = cfg.Enemy.Width
	v.SpawnYMin = 100
	v.SpawnYMax = 100

	s := NewSpawner(v, cfg, rand.New(rand.NewSource(5)))
	pool := make([]Enemy, v.MaxEnemies)

	n := s.Spawn(pool, 1, 1)
	if n != 6 {
		t.Fatalf("Spawn() = %d, want 6", n)
	}
	for i := 1; i < n; i++ {
		if pool[i].X != pool[0].X || pool[i].Y != pool[0].Y {
			t.Errorf("enemy %d at (%.0f, %.0f), want stacked at (%.0f, %.0f)", i, pool[i].X, pool[i].Y, pool[0].X, pool[0].Y)
		}
	}
}

func TestSpawnWaveDeterministic(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	a := make([]Enemy, 30)
	b := make([]Enemy, 30)

	NewSpawner(BossRush(), cfg, rand.New(rand.NewSource(11))).Spawn(a, 4, 2)
	NewSpawner(BossRush(), cfg, rand.New(rand.NewSource(11))).Spawn(b, 4, 2)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("slot %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}
