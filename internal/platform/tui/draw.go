package tui

import (
	"github.com/arcadeworks/tui-breakout/internal/config"
	"github.com/arcadeworks/tui-breakout/internal/core"
	"github.com/arcadeworks/tui-breakout/internal/sim"
)

// Visual characters for entities.
const (
	PaddleChar = '='
	BallChar   = '●'
	WallChar   = '█'
)

// Brick glyphs by row (cycling through)
var brickGlyphs = []rune{'█', '▓', '▒', '░', '#', '+', '*', '='}

// brickColors cycles per brick row.
var brickColors = []core.Color{
	core.ColorRed,
	core.ColorOrange,
	core.ColorYellow,
	core.ColorGreen,
	core.ColorCyan,
	core.ColorBlue,
	core.ColorMagenta,
}

// hudRows is the number of screen rows reserved above the arena.
const hudRows = 1

// Viewport maps world coordinates onto screen cells. World Y grows upward,
// screen Y grows downward; the projection flips the axis.
type Viewport struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// ViewportFor returns a viewport covering the arena including its walls.
func ViewportFor(cfg config.Config) Viewport {
	t := cfg.Arena.WallThickness
	return Viewport{
		MinX: cfg.Arena.Left - t,
		MaxX: cfg.Arena.Right + t,
		MinY: cfg.Arena.Bottom - t,
		MaxY: cfg.Arena.Top + t,
	}
}

// cellRect projects a world-space box (center, full size) onto screen cells.
func (v Viewport) cellRect(x, y, w, h float64, screenW, screenH int) core.Rect {
	viewH := screenH - hudRows
	if viewH < 1 || screenW < 1 {
		return core.Rect{}
	}

	worldW := v.MaxX - v.MinX
	worldH := v.MaxY - v.MinY

	x0 := int((x - w/2 - v.MinX) / worldW * float64(screenW))
	x1 := int((x + w/2 - v.MinX) / worldW * float64(screenW))
	// Flip: world top maps to the first arena row.
	y0 := int((v.MaxY - (y + h/2)) / worldH * float64(viewH))
	y1 := int((v.MaxY - (y - h/2)) / worldH * float64(viewH))

	// Every entity occupies at least one cell so small balls stay visible.
	cw := core.Max(x1-x0, 1)
	ch := core.Max(y1-y0, 1)
	return core.NewRect(x0, y0+hudRows, cw, ch)
}

// DrawWorld renders a simulation snapshot into the screen buffer.
func DrawWorld(dst *core.Screen, snap sim.Snapshot, vp Viewport) {
	w, h := dst.Width(), dst.Height()

	// Brick rows are colored in order of appearance. Snapshot order is
	// row-major from the bottom row up, so the color changes whenever the
	// brick Y coordinate does.
	brickRow := -1
	lastBrickY := 0.0

	for _, e := range snap.Entities {
		r := vp.cellRect(e.X, e.Y, e.W, e.H, w, h)

		switch e.Kind {
		case sim.KindWall:
			dst.DrawRect(r, WallChar, core.ColorGray)
		case sim.KindPaddle:
			dst.DrawRect(r, PaddleChar, core.ColorCyan)
		case sim.KindBall:
			dst.DrawRect(r, BallChar, core.ColorBrightYellow)
		case sim.KindBrick:
			if brickRow < 0 || e.Y != lastBrickY {
				brickRow++
				lastBrickY = e.Y
			}
			glyph := brickGlyphs[brickRow%len(brickGlyphs)]
			color := brickColors[brickRow%len(brickColors)]
			dst.DrawRect(r, glyph, color)
		}
	}
}
