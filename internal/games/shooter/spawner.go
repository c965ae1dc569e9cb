package shooter

import (
	"math/rand"

	"github.com/vovakirdan/space-arcade/internal/config"
	"github.com/vovakirdan/space-arcade/internal/core"
)

// Spawner places enemy waves. It owns no state besides its RNG.
type Spawner struct {
	variant Variant
	world   config.ShooterWorld
	enemy   config.ShooterEnemy
	rng     *rand.Rand
}

// NewSpawner creates a spawner for a variant and enemy configuration.
func NewSpawner(v Variant, cfg config.ShooterConfig, rng *rand.Rand) *Spawner {
	return &Spawner{
		variant: v,
		world:   cfg.World,
		enemy:   cfg.Enemy,
		rng:     rng,
	}
}

// WaveSize returns how many enemies a wave at the given level contains.
func (s *Spawner) WaveSize(level, capacity int) int {
	n := s.enemy.BaseCount + level*s.enemy.CountPerLevel
	if n > capacity {
		n = capacity
	}
	if n < 0 {
		n = 0
	}
	return n
}

// Spawn repopulates pool with a fresh wave and returns the number of active enemies.
// Every enemy gets hitsToKill health. Slots past the wave size are cleared.
func (s *Spawner) Spawn(pool []Enemy, level, hitsToKill int) int {
	count := s.WaveSize(level, len(pool))
	base := s.enemy.BaseSpeed + float64(level)*s.enemy.SpeedPerLevel

	w, h := s.enemy.Width, s.enemy.Height
	minX, maxX := s.bandX(w)

	for i := range count {
		x, y := s.randomPosition(minX, maxX)

		// Reject positions overlapping enemies already placed in this wave
		for retry := 0; retry < s.variant.PlacementRetries; retry++ {
			if !overlapsPlaced(pool[:i], core.NewRectF(x, y, w, h)) {
				break
			}
			x, y = s.randomPosition(minX, maxX)
		}

		offset := float64(randRange(s.rng, -s.enemy.JitterSteps, s.enemy.JitterSteps)) * s.enemy.JitterStep
		speed := (base + offset) * s.enemy.SpeedScale
		if speed < s.enemy.MinSpeed {
			speed = s.enemy.MinSpeed
		}

		pool[i] = Enemy{
			X:      x,
			Y:      y,
			Width:  w,
			Height: h,
			Speed:  speed,
			Health: hitsToKill,
			Active: true,
		}
	}

	for i := count; i < len(pool); i++ {
		pool[i].Active = false
		pool[i].Health = 0
	}

	return count
}

// bandX returns the x range of a centred spawn band, clipped to the world.
func (s *Spawner) bandX(width int) (int, int) {
	center := s.world.Width / 2
	half := s.variant.SpawnBand / 2

	minX := center - half
	if minX < 0 {
		minX = 0
	}
	maxX := center + half - width
	if maxX > s.world.Width-width {
		maxX = s.world.Width - width
	}
	if maxX < minX {
		maxX = minX
	}
	return minX, maxX
}

func (s *Spawner) randomPosition(minX, maxX int) (float64, float64) {
	x := randRange(s.rng, minX, maxX)
	y := randRange(s.rng, s.variant.SpawnYMin, s.variant.SpawnYMax)
	return float64(x), float64(y)
}

func overlapsPlaced(placed []Enemy, r core.RectF) bool {
	for i := range placed {
		if core.Overlaps(placed[i].Rect(), r) {
			return true
		}
	}
	return false
}

// randRange returns a uniform integer in [lo, hi].
func randRange(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
