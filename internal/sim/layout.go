package sim

import (
	"fmt"
	"math"

	"github.com/arcadeworks/tui-breakout/internal/config"
	"github.com/arcadeworks/tui-breakout/internal/core"
)

// BuildWorld constructs the starting world from the configuration: four
// perimeter walls, the paddle, the ball with its launch velocity, and the
// brick grid. Layout errors are configuration mistakes and are returned for
// the caller to treat as fatal.
func BuildWorld(cfg config.Config) (*World, error) {
	arenaW := cfg.Arena.Width()
	arenaH := cfg.Arena.Height()
	if arenaW <= 0 || arenaH <= 0 {
		return nil, fmt.Errorf("layout: arena dimensions must be positive, got %vx%v", arenaW, arenaH)
	}

	w := NewWorld()

	if err := spawnWalls(w, cfg); err != nil {
		return nil, err
	}

	paddleY := cfg.Arena.Bottom + cfg.Paddle.FloorGap
	_, err := w.Spawn(Entity{
		Kind: KindPaddle,
		Caps: CapCollider,
		Pos:  core.Vec3{X: arenaCenterX(cfg), Y: paddleY},
		Size: core.Vec3{X: cfg.Paddle.Width, Y: cfg.Paddle.Height},
	})
	if err != nil {
		return nil, err
	}

	launch := core.Vec2{X: cfg.Ball.DirectionX, Y: cfg.Ball.DirectionY}.Normalize().Scale(cfg.Ball.Speed)
	_, err = w.Spawn(Entity{
		Kind: KindBall,
		Caps: CapVelocity,
		Pos:  core.Vec3{X: cfg.Ball.StartX, Y: cfg.Ball.StartY},
		Size: core.Vec3{X: cfg.Ball.Width, Y: cfg.Ball.Height},
		Vel:  launch,
	})
	if err != nil {
		return nil, err
	}

	if err := spawnBricks(w, cfg, paddleY); err != nil {
		return nil, err
	}

	return w, nil
}

// wallRects returns position and size for each of the four walls. Walls sit
// on the arena perimeter and extend half a thickness outward on each side,
// so side walls are a thickness taller than the arena and the top/bottom
// walls a thickness wider; the corners close up exactly.
func wallRects(cfg config.Config) []Entity {
	t := cfg.Arena.WallThickness
	cx := arenaCenterX(cfg)
	cy := (cfg.Arena.Top + cfg.Arena.Bottom) / 2
	sideSize := core.Vec3{X: t, Y: cfg.Arena.Height() + t}
	capSize := core.Vec3{X: cfg.Arena.Width() + t, Y: t}

	return []Entity{
		{Kind: KindWall, Caps: CapCollider, Pos: core.Vec3{X: cfg.Arena.Left, Y: cy}, Size: sideSize},
		{Kind: KindWall, Caps: CapCollider, Pos: core.Vec3{X: cfg.Arena.Right, Y: cy}, Size: sideSize},
		{Kind: KindWall, Caps: CapCollider, Pos: core.Vec3{X: cx, Y: cfg.Arena.Top}, Size: capSize},
		{Kind: KindWall, Caps: CapCollider, Pos: core.Vec3{X: cx, Y: cfg.Arena.Bottom}, Size: capSize},
	}
}

func spawnWalls(w *World, cfg config.Config) error {
	for _, wall := range wallRects(cfg) {
		if _, err := w.Spawn(wall); err != nil {
			return err
		}
	}
	return nil
}

// spawnBricks lays out the brick grid. Row and column counts are derived by
// floor-dividing the space left between the fixed gaps by one brick-plus-gap
// stride; the grid is centered horizontally and filled row-major from the
// bottom-left corner.
func spawnBricks(w *World, cfg config.Config, paddleY float64) error {
	bw := cfg.Bricks.Width
	bh := cfg.Bricks.Height
	gap := cfg.Bricks.Gap

	totalWidth := cfg.Arena.Width() - 2*cfg.Bricks.SideGap
	bottomEdge := paddleY + cfg.Bricks.PaddleGap
	totalHeight := cfg.Arena.Top - bottomEdge - cfg.Bricks.CeilingGap

	if totalWidth <= 0 {
		return fmt.Errorf("layout: no horizontal space left for bricks, got %v", totalWidth)
	}
	if totalHeight <= 0 {
		return fmt.Errorf("layout: no vertical space left for bricks, got %v", totalHeight)
	}

	nColumns := int(math.Floor(totalWidth / (bw + gap)))
	nRows := int(math.Floor(totalHeight / (bh + gap)))
	if nColumns < 1 || nRows < 1 {
		return fmt.Errorf("layout: bricks of %vx%v do not fit in %vx%v", bw, bh, totalWidth, totalHeight)
	}

	// Center the grid horizontally.
	nVerticalGaps := float64(nColumns - 1)
	leftEdge := arenaCenterX(cfg) - float64(nColumns)*bw/2 - nVerticalGaps*gap/2
	offsetX := leftEdge + bw/2
	offsetY := bottomEdge + bh/2

	for row := 0; row < nRows; row++ {
		for col := 0; col < nColumns; col++ {
			pos := core.Vec3{
				X: offsetX + float64(col)*(bw+gap),
				Y: offsetY + float64(row)*(bh+gap),
			}
			if _, err := w.Spawn(Entity{
				Kind: KindBrick,
				Caps: CapCollider,
				Pos:  pos,
				Size: core.Vec3{X: bw, Y: bh},
			}); err != nil {
				return err
			}
		}
	}

	return nil
}

func arenaCenterX(cfg config.Config) float64 {
	return (cfg.Arena.Left + cfg.Arena.Right) / 2
}
