// Package sim implements the fixed-timestep Breakout simulation core: the
// entity world, arena layout, motion integration, paddle control and
// ball-versus-collider resolution. It is pure per-tick logic; the platform
// layer supplies input intent and consumes snapshots.
package sim

import (
	"fmt"

	"github.com/arcadeworks/tui-breakout/internal/core"
)

// EntityID is an opaque handle into the world's entity arena.
type EntityID int

// Kind tags what an entity is. The set is closed.
type Kind uint8

const (
	KindBall Kind = iota
	KindPaddle
	KindWall
	KindBrick
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindBall:
		return "ball"
	case KindPaddle:
		return "paddle"
	case KindWall:
		return "wall"
	case KindBrick:
		return "brick"
	default:
		return "unknown"
	}
}

// Caps is a small capability bitset. Capabilities mark what the per-tick
// systems do with an entity, independent of its kind.
type Caps uint8

const (
	// CapCollider marks the entity as a target for ball collision tests.
	CapCollider Caps = 1 << iota
	// CapVelocity marks the entity as moved by the integrator.
	CapVelocity
)

// Has reports whether all the given capability bits are set.
func (c Caps) Has(flag Caps) bool {
	return c&flag == flag
}

// Entity is one object in the world. Position and size describe an
// axis-aligned box centered on Pos spanning Pos +/- Size/2; Vel is only
// meaningful when CapVelocity is set.
type Entity struct {
	ID   EntityID
	Kind Kind
	Caps Caps
	Pos  core.Vec3
	Size core.Vec3
	Vel  core.Vec2
}

// World is an arena of entities addressed by handle. Handles stay valid for
// the lifetime of the world; despawned slots are skipped during iteration.
// Iteration follows insertion order, which the layout generator relies on
// for the row-major brick grid.
type World struct {
	entities []Entity
	alive    []bool
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{}
}

// Spawn adds an entity to the world and returns its handle.
// Entity sizes must be strictly positive on both planar axes.
func (w *World) Spawn(e Entity) (EntityID, error) {
	if e.Size.X <= 0 || e.Size.Y <= 0 {
		return 0, fmt.Errorf("world: %s size must be positive, got %vx%v", e.Kind, e.Size.X, e.Size.Y)
	}

	id := EntityID(len(w.entities))
	e.ID = id
	w.entities = append(w.entities, e)
	w.alive = append(w.alive, true)
	return id, nil
}

// Despawn removes the entity with the given handle.
// Returns false if the handle is unknown or already despawned.
func (w *World) Despawn(id EntityID) bool {
	if int(id) < 0 || int(id) >= len(w.entities) || !w.alive[id] {
		return false
	}
	w.alive[id] = false
	return true
}

// Get returns the entity with the given handle, or nil if it is not alive.
func (w *World) Get(id EntityID) *Entity {
	if int(id) < 0 || int(id) >= len(w.entities) || !w.alive[id] {
		return nil
	}
	return &w.entities[id]
}

// Ball returns the single ball entity, or nil if none exists.
func (w *World) Ball() *Entity {
	return w.first(KindBall)
}

// Paddle returns the single paddle entity, or nil if none exists.
func (w *World) Paddle() *Entity {
	return w.first(KindPaddle)
}

func (w *World) first(kind Kind) *Entity {
	for i := range w.entities {
		if w.alive[i] && w.entities[i].Kind == kind {
			return &w.entities[i]
		}
	}
	return nil
}

// Count returns the number of alive entities of the given kind.
func (w *World) Count(kind Kind) int {
	n := 0
	for i := range w.entities {
		if w.alive[i] && w.entities[i].Kind == kind {
			n++
		}
	}
	return n
}

// Len returns the number of alive entities.
func (w *World) Len() int {
	n := 0
	for _, a := range w.alive {
		if a {
			n++
		}
	}
	return n
}

// ForEach calls fn for every alive entity in insertion order.
// Despawning the current or later entities during iteration is allowed.
func (w *World) ForEach(fn func(*Entity)) {
	for i := range w.entities {
		if w.alive[i] {
			fn(&w.entities[i])
		}
	}
}

// ForEachWith calls fn for every alive entity carrying all the given
// capabilities, in insertion order.
func (w *World) ForEachWith(caps Caps, fn func(*Entity)) {
	for i := range w.entities {
		if w.alive[i] && w.entities[i].Caps.Has(caps) {
			fn(&w.entities[i])
		}
	}
}
