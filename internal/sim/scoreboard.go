package sim

// Scoreboard is a monotonically non-decreasing counter of destroyed bricks.
// It only resets when the session restarts.
type Scoreboard struct {
	value int
}

// Add increases the score by n. Negative deltas are ignored to preserve
// monotonicity.
func (s *Scoreboard) Add(n int) {
	if n > 0 {
		s.value += n
	}
}

// Value returns the current score.
func (s *Scoreboard) Value() int {
	return s.value
}

// Reset zeroes the score for a new session.
func (s *Scoreboard) Reset() {
	s.value = 0
}
