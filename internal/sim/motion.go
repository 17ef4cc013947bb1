package sim

// ApplyVelocity advances every velocity-carrying entity by one fixed
// timestep: position += velocity * dt. The timestep is a constant, never a
// wall-clock delta, which keeps the simulation deterministic regardless of
// how fast the host loop actually runs.
func ApplyVelocity(w *World, dt float64) {
	w.ForEachWith(CapVelocity, func(e *Entity) {
		e.Pos.X += e.Vel.X * dt
		e.Pos.Y += e.Vel.Y * dt
	})
}
