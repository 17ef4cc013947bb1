package sim

import "math"

// EntityState is the read-only view of one entity that the presentation
// layer consumes for draw transforms.
type EntityState struct {
	ID     EntityID
	Kind   Kind
	X, Y   float64 // center position
	W, H   float64 // full size
	VX, VY float64 // zero unless the entity carries velocity
}

// Snapshot is the complete observable state of one tick: entity transforms,
// scoreboard value and tick counter. It is a copy; mutating it has no effect
// on the simulation.
type Snapshot struct {
	Tick     uint64
	Score    int
	Bricks   int
	Entities []EntityState
}

// Snapshot captures the current state for the presentation layer and for
// determinism tests.
func (s *Simulation) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:     s.tick,
		Score:    s.score.Value(),
		Bricks:   s.world.Count(KindBrick),
		Entities: make([]EntityState, 0, s.world.Len()),
	}

	s.world.ForEach(func(e *Entity) {
		snap.Entities = append(snap.Entities, EntityState{
			ID:   e.ID,
			Kind: e.Kind,
			X:    e.Pos.X,
			Y:    e.Pos.Y,
			W:    e.Size.X,
			H:    e.Size.Y,
			VX:   e.Vel.X,
			VY:   e.Vel.Y,
		})
	})

	return snap
}

// Hash folds the snapshot into a single value for determinism testing: two
// runs fed identical input sequences must produce identical hashes.
func (snap Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)  //#nosec G115 -- score is non-negative
	h = h*31 + uint64(snap.Bricks) //#nosec G115 -- count is non-negative

	for _, e := range snap.Entities {
		h = h*31 + uint64(e.Kind)
		h = h*31 + math.Float64bits(e.X)
		h = h*31 + math.Float64bits(e.Y)
		h = h*31 + math.Float64bits(e.VX)
		h = h*31 + math.Float64bits(e.VY)
	}

	return h
}
