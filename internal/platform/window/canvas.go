package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/vovakirdan/space-arcade/internal/core"
)

// spriteColors stands in for textures: every sprite is a filled rectangle.
var spriteColors = map[core.Sprite]color.RGBA{
	core.SpriteBackground: {8, 8, 24, 255},
	core.SpritePlayer:     core.ColorBrightGreen.RGB(),
	core.SpriteEnemy:      core.ColorBrightRed.RGB(),
	core.SpriteBullet:     core.ColorBrightYellow.RGB(),
	core.SpriteBoss:       core.ColorMagenta.RGB(),
	core.SpriteBossBullet: core.ColorOrange.RGB(),
}

// fontCache holds one face per pixel size.
type fontCache struct {
	tt    *opentype.Font
	faces map[int]font.Face
}

func newFontCache() (*fontCache, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	return &fontCache{tt: tt, faces: make(map[int]font.Face)}, nil
}

// face returns the face for size, falling back to the built-in bitmap font.
func (fc *fontCache) face(size int) font.Face {
	if f, ok := fc.faces[size]; ok {
		return f
	}
	f, err := opentype.NewFace(fc.tt, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		f = basicfont.Face7x13
	}
	fc.faces[size] = f
	return f
}

func (fc *fontCache) measure(s string, size int) int {
	return font.MeasureString(fc.face(size), s).Ceil()
}

// canvas implements core.Canvas on top of an ebiten image.
type canvas struct {
	dst   *ebiten.Image
	fonts *fontCache
}

func (c *canvas) DrawSprite(s core.Sprite, r core.RectF) {
	clr, ok := spriteColors[s]
	if !ok {
		return
	}
	ebitenutil.DrawRect(c.dst, r.X, r.Y, float64(r.W), float64(r.H), clr)
}

func (c *canvas) DrawText(s string, x, y, size int, clr core.Color) {
	face := c.fonts.face(size)
	// text.Draw positions the baseline
	text.Draw(c.dst, s, face, x, y+face.Metrics().Ascent.Ceil(), clr.RGB())
}

func (c *canvas) MeasureText(s string, size int) int {
	return c.fonts.measure(s, size)
}
