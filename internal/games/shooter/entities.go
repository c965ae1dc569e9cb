package shooter

import "github.com/vovakirdan/space-arcade/internal/core"

// Player is the ship controlled by the user.
type Player struct {
	X, Y    float64
	Width   int
	Height  int
	Speed   float64
	Lives   int
	IsAlive bool
}

// Rect returns the player's bounding box.
func (p *Player) Rect() core.RectF {
	return core.NewRectF(p.X, p.Y, p.Width, p.Height)
}

// Enemy is one slot of the enemy pool.
type Enemy struct {
	X, Y   float64
	Width  int
	Height int
	Speed  float64
	Health int // Hits remaining
	Active bool
}

// Rect returns the enemy's bounding box.
func (e *Enemy) Rect() core.RectF {
	return core.NewRectF(e.X, e.Y, e.Width, e.Height)
}

// Bullet is one slot of a projectile pool. Player bullets move up,
// boss bullets move down.
type Bullet struct {
	X, Y   float64
	Width  int
	Height int
	Speed  float64
	Active bool
}

// Rect returns the bullet's bounding box.
func (b *Bullet) Rect() core.RectF {
	return core.NewRectF(b.X, b.Y, b.Width, b.Height)
}

// Boss is the single adversary of the boss phase.
type Boss struct {
	X, Y          float64
	Width         int
	Height        int
	Speed         float64 // Signed; flips at the side walls
	Health        int
	InitialHealth int
	Active        bool
	ShootTimer    float64 // Seconds until the next volley
}

// Rect returns the boss's bounding box.
func (b *Boss) Rect() core.RectF {
	return core.NewRectF(b.X, b.Y, b.Width, b.Height)
}

// firstFree returns the index of the first inactive bullet, or -1 when the pool is full.
func firstFree(pool []Bullet) int {
	for i := range pool {
		if !pool[i].Active {
			return i
		}
	}
	return -1
}

// clearBullets deactivates every slot of a pool.
func clearBullets(pool []Bullet) {
	for i := range pool {
		pool[i].Active = false
	}
}

// initBullets resets a pool to inactive slots of the given shape.
func initBullets(pool []Bullet, w, h int, speed float64) {
	for i := range pool {
		pool[i] = Bullet{Width: w, Height: h, Speed: speed}
	}
}
