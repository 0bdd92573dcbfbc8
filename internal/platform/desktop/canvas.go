package desktop

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/skyraid/internal/core"
	"github.com/vovakirdan/skyraid/internal/games/shooter"
)

// background is the sky behind the playfield.
var background = color.RGBA{R: 12, G: 16, B: 36, A: 255}

// canvas adapts an Ebitengine image to shooter.Canvas.
type canvas struct {
	dst *ebiten.Image
}

func (c *canvas) Clear() {
	c.dst.Fill(background)
}

// DrawImage stretches img over r. Sprites that failed to load, and
// foreign images, draw as flat rectangles.
func (c *canvas) DrawImage(img shooter.Image, r core.Rect) {
	sp, ok := img.(*Sprite)
	if !ok {
		c.FillRect(r, core.ColorWhite)
		return
	}
	src := sp.image()
	if src == nil {
		c.FillRect(r, sp.fallback)
		return
	}

	b := src.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.W/float64(b.Dx()), r.H/float64(b.Dy()))
	op.GeoM.Translate(r.X, r.Y)
	op.Filter = ebiten.FilterLinear
	c.dst.DrawImage(src, op)
}

func (c *canvas) FillRect(r core.Rect, col core.Color) {
	red, green, blue, alpha := col.RGBA()
	vector.DrawFilledRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H),
		color.RGBA{R: red, G: green, B: blue, A: alpha}, false)
}
