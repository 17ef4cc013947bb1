package sim

import (
	"github.com/arcadeworks/tui-breakout/internal/config"
	"github.com/arcadeworks/tui-breakout/internal/core"
)

// PaddleBounds returns the range of legal paddle center positions: the arena
// half-width shrunk by half a wall, half a paddle and the padding constant.
func PaddleBounds(cfg config.Config) (minX, maxX float64) {
	inset := cfg.Arena.WallThickness/2 + cfg.Paddle.Width/2 + cfg.Paddle.Padding
	return cfg.Arena.Left + inset, cfg.Arena.Right - inset
}

// MovePaddle displaces the paddle by the directional intent for one tick and
// clamps it inside the arena. dir is +1, -1 or 0 as reported by
// InputFrame.Direction; the paddle can never leave the play field.
func MovePaddle(w *World, cfg config.Config, dir, dt float64) {
	p := w.Paddle()
	if p == nil {
		return
	}

	newX := p.Pos.X + dir*cfg.Paddle.Speed*dt
	minX, maxX := PaddleBounds(cfg)
	p.Pos.X = core.ClampF(newX, minX, maxX)
}
