package sim

import (
	"github.com/charmbracelet/log"

	"github.com/arcadeworks/tui-breakout/internal/core"
)

// CollisionEvent is an ephemeral notification that the ball struck a
// collider this tick. It carries no payload; observers (sound triggers,
// visual feedback) only need the occurrence.
type CollisionEvent struct{}

// ResolveCollisions runs the per-tick ball-versus-collider pass. It must run
// after the paddle controller and the integrator so both the paddle and the
// ball are at their new positions; checking stale positions would lag every
// collision by one frame.
//
// For each collider the ball overlaps, one CollisionEvent is emitted; bricks
// additionally score a point and despawn. The velocity component on the
// struck axis is reversed only when the ball is still moving into the
// surface, so a ball already receding is never re-reflected into the
// collider it just left.
//
// Multiple simultaneous overlaps are resolved independently in collider
// iteration order; no first-hit priority is imposed, so a perfect corner hit
// can reflect on both axes in the same tick.
func ResolveCollisions(w *World, score *Scoreboard, logger *log.Logger) []CollisionEvent {
	ball := w.Ball()
	if ball == nil {
		return nil
	}

	ballPos := ball.Pos.XY()
	ballSize := ball.Size.XY()

	var events []CollisionEvent
	w.ForEachWith(CapCollider, func(e *Entity) {
		side, hit := core.Collide(ballPos, ballSize, e.Pos.XY(), e.Size.XY())
		if !hit {
			return
		}

		if side == core.SideInside {
			// Degenerate: the ball is fully embedded and no side is
			// meaningful. Leave the velocity alone and let the next tick's
			// motion separate the objects.
			if logger != nil {
				logger.Warn("ball embedded in collider", "kind", e.Kind.String(), "entity", int(e.ID))
			}
			return
		}

		events = append(events, CollisionEvent{})

		if e.Kind == KindBrick {
			score.Add(1)
			w.Despawn(e.ID)
		}

		switch side {
		case core.SideLeft:
			if ball.Vel.X > 0 {
				ball.Vel.X = -ball.Vel.X
			}
		case core.SideRight:
			if ball.Vel.X < 0 {
				ball.Vel.X = -ball.Vel.X
			}
		case core.SideTop:
			if ball.Vel.Y < 0 {
				ball.Vel.Y = -ball.Vel.Y
			}
		case core.SideBottom:
			if ball.Vel.Y > 0 {
				ball.Vel.Y = -ball.Vel.Y
			}
		}
	})

	return events
}
