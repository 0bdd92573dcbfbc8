package shooter

import (
	"math"

	"github.com/vovakirdan/skyraid/internal/config"
	"github.com/vovakirdan/skyraid/internal/core"
)

// Visual characters for rendering
const (
	FillChar   = '█'
	BorderChar = '│'
)

// DrawFrame paints the playfield onto a raster canvas. Before a run only
// the player is shown.
func (g *Game) DrawFrame(c Canvas) {
	c.Clear()
	if g.state == StateNotStarted {
		g.world.Player.Draw(c)
		return
	}
	g.world.Draw(c)
}

// Render draws the current game state to a character screen. Row 0 holds
// the HUD; the surface is letterboxed into the rows below.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	vp := fitViewport(g.cfg.Surface, dst.Width(), dst.Height())
	g.renderBorder(dst, vp)
	g.DrawFrame(&screenCanvas{dst: dst, vp: vp})

	g.renderHUD(dst)
	g.renderOverlay(dst)
}

// ScreenToSurface maps a screen cell to surface coordinates, using the same
// layout Render does for a w×h screen.
func (g *Game) ScreenToSurface(col, row, w, h int) (float64, float64) {
	vp := fitViewport(g.cfg.Surface, w, h)
	x := (float64(col) + 0.5 - vp.ox) / vp.sx
	y := (float64(row) + 0.5 - vp.oy) / vp.sy
	return x, y
}

// renderHUD draws lives on the left and the run clock on the right.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextColored(1, 0, g.hud.Text(FieldLives), core.ColorBrightWhite)
	if g.state != StateNotStarted {
		clock := FormatElapsed(g.now)
		dst.DrawText(dst.Width()-len(clock)-1, 0, clock)
	}
}

// renderOverlay draws the visible panels.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch {
	case g.hud.Visible(PanelTitle):
		hint := "Press ENTER to start"
		if g.cfg.Start.Mode == config.StartPointer {
			hint = "Click or press ENTER to start"
		}
		if !g.CanStart() {
			hint = "Loading..."
		}
		drawCenteredBox(dst, "SKY RAID", hint)
	case g.hud.Visible(PanelGameOver):
		drawCenteredBox(dst, "GAME OVER", g.hud.Text(FieldTime), "ENTER or click to continue")
	case g.paused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")
	}
}

// renderBorder draws side rails around the letterboxed surface.
func (g *Game) renderBorder(dst *core.Screen, vp viewport) {
	left := int(math.Floor(vp.ox)) - 1
	right := int(math.Ceil(vp.ox + g.cfg.Surface.Width*vp.sx))
	top := int(vp.oy)
	for y := top; y < dst.Height(); y++ {
		dst.SetColored(left, y, BorderChar, core.ColorGray)
		dst.SetColored(right, y, BorderChar, core.ColorGray)
	}
}

// drawCenteredBox draws a centered message box with one line per entry.
func drawCenteredBox(dst *core.Screen, lines ...string) {
	boxW := 0
	for _, l := range lines {
		boxW = core.Max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines)*2 + 1
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	// Draw box background
	dst.DrawCells(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	for i, l := range lines {
		dst.DrawTextCentered(boxY+1+i*2, l)
	}
}

// viewport maps surface pixels to screen cells.
type viewport struct {
	ox, oy float64 // Screen offset of the surface origin
	sx, sy float64 // Cells per pixel
	w, h   float64 // Surface size in cells
}

// cellAspect is how many times taller a terminal cell is than it is wide.
const cellAspect = 2.0

// fitViewport letterboxes the surface below the HUD row, keeping its
// aspect ratio on cells that are twice as tall as they are wide.
func fitViewport(s config.SurfaceConfig, cols, rows int) viewport {
	avail := float64(core.Max(rows-1, 1))
	scale := math.Min(float64(cols)/s.Width, avail*cellAspect/s.Height)
	vp := viewport{
		sx: scale,
		sy: scale / cellAspect,
	}
	vp.w = s.Width * vp.sx
	vp.h = s.Height * vp.sy
	vp.ox = math.Floor((float64(cols) - vp.w) / 2)
	vp.oy = 1
	return vp
}

// project converts a surface rectangle to screen cells, clipped to the
// viewport.
func (vp viewport) project(r core.Rect) core.Rect {
	p := r.Scale(vp.sx, vp.sy).Translate(vp.ox, vp.oy)
	x0 := math.Max(p.X, vp.ox)
	y0 := math.Max(p.Y, vp.oy)
	x1 := math.Min(p.Right(), vp.ox+vp.w)
	y1 := math.Min(p.Bottom(), vp.oy+vp.h)
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// screenCanvas adapts a character screen to Canvas.
type screenCanvas struct {
	dst *core.Screen
	vp  viewport
}

func (c *screenCanvas) Clear() {
	c.dst.DrawCells(int(c.vp.ox), int(c.vp.oy), int(math.Ceil(c.vp.w)), int(math.Ceil(c.vp.h)), ' ', core.ColorDefault)
}

func (c *screenCanvas) DrawImage(img Image, r core.Rect) {
	if gl, ok := img.(Glyph); ok {
		c.dst.DrawRectColored(c.vp.project(r), gl.Rune, gl.Color)
		return
	}
	c.FillRect(r, core.ColorWhite)
}

func (c *screenCanvas) FillRect(r core.Rect, col core.Color) {
	c.dst.DrawRectColored(c.vp.project(r), FillChar, col)
}
