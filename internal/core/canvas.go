package core

// Sprite identifies a texture the host knows how to paint.
type Sprite int

const (
	SpriteBackground Sprite = iota
	SpritePlayer
	SpriteEnemy
	SpriteBullet
	SpriteBoss
	SpriteBossBullet
)

// Canvas is a pixel-space drawing surface supplied by a windowed host.
// Games draw whole frames through it and never keep references between frames.
type Canvas interface {
	// DrawSprite paints a sprite stretched to fill r.
	DrawSprite(s Sprite, r RectF)

	// DrawText draws text with its top-left corner at (x, y) using a font
	// of the given pixel size.
	DrawText(text string, x, y, size int, c Color)

	// MeasureText returns the pixel width text would occupy at size.
	MeasureText(text string, size int) int
}
