package sim

import (
	"math"
	"testing"

	"github.com/arcadeworks/tui-breakout/internal/config"
	"github.com/arcadeworks/tui-breakout/internal/core"
)

func testConfig() config.Config {
	return config.Default()
}

// scriptedInput returns the input frame for a tick of the determinism script:
// alternating stretches of left, right and idle.
func scriptedInput(tick int) core.InputFrame {
	var in core.InputFrame
	switch {
	case tick%90 < 30:
		in.Set(core.ActionUp)
	case tick%90 < 60:
		in.Set(core.ActionDown)
	}
	return in
}

func TestSimulationDeterminism(t *testing.T) {
	a, err := New(testConfig(), nil)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	b, err := New(testConfig(), nil)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if a.Snapshot().Hash() != b.Snapshot().Hash() {
		t.Fatal("fresh simulations disagree before the first tick")
	}

	for tick := 0; tick < 300; tick++ {
		a.Step(scriptedInput(tick))
		b.Step(scriptedInput(tick))
	}

	sa, sb := a.Snapshot(), b.Snapshot()
	if sa.Hash() != sb.Hash() {
		t.Errorf("snapshots diverged after 300 ticks: %#x != %#x", sa.Hash(), sb.Hash())
	}
	if sa.Tick != 300 || sb.Tick != 300 {
		t.Errorf("tick counters = %d and %d, want 300", sa.Tick, sb.Tick)
	}
}

func TestSimulationKeepsBallInArena(t *testing.T) {
	cfg := testConfig()
	s, err := New(cfg, nil)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	outerLeft := cfg.Arena.Left - cfg.Arena.WallThickness
	outerRight := cfg.Arena.Right + cfg.Arena.WallThickness
	outerBottom := cfg.Arena.Bottom - cfg.Arena.WallThickness
	outerTop := cfg.Arena.Top + cfg.Arena.WallThickness

	sawRightToLeft := false
	var in core.InputFrame
	for tick := 0; tick < 5000; tick++ {
		s.Step(in)

		ball := s.World().Ball()
		if ball == nil {
			t.Fatalf("ball vanished at tick %d", tick)
		}
		if ball.Pos.X < outerLeft || ball.Pos.X > outerRight ||
			ball.Pos.Y < outerBottom || ball.Pos.Y > outerTop {
			t.Fatalf("ball escaped to %v at tick %d", ball.Pos, tick)
		}
		if ball.Vel.X < 0 {
			sawRightToLeft = true
		}

		// Reflection only flips signs, so speed is conserved.
		speed := math.Hypot(ball.Vel.X, ball.Vel.Y)
		if math.Abs(speed-cfg.Ball.Speed) > 1e-6 {
			t.Fatalf("ball speed drifted to %v at tick %d", speed, tick)
		}
	}

	if !sawRightToLeft {
		t.Error("ball never bounced back off the right side")
	}
}

func TestSimulationScoreIsMonotonic(t *testing.T) {
	s, err := New(testConfig(), nil)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	prev := 0
	var in core.InputFrame
	for tick := 0; tick < 5000; tick++ {
		res := s.Step(in)
		if res.Score < prev {
			t.Fatalf("score went from %d to %d at tick %d", prev, res.Score, tick)
		}
		prev = res.Score
	}
}

func TestSimulationScoresBrokenBricks(t *testing.T) {
	s, err := New(testConfig(), nil)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	start := s.World().Count(KindBrick)
	var in core.InputFrame
	for tick := 0; tick < 20000 && s.Score() == 0; tick++ {
		s.Step(in)
	}

	if s.Score() == 0 {
		t.Fatal("ball never reached a brick")
	}
	broken := start - s.World().Count(KindBrick)
	if s.Score() != broken {
		t.Errorf("score = %d, bricks broken = %d", s.Score(), broken)
	}
}

func TestSimulationReset(t *testing.T) {
	s, err := New(testConfig(), nil)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	startBricks := s.World().Count(KindBrick)
	startHash := s.Snapshot().Hash()

	var in core.InputFrame
	in.Set(core.ActionUp)
	for tick := 0; tick < 1000; tick++ {
		s.Step(in)
	}

	if err := s.Reset(); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}

	if s.Tick() != 0 {
		t.Errorf("tick after reset = %d, want 0", s.Tick())
	}
	if s.Score() != 0 {
		t.Errorf("score after reset = %d, want 0", s.Score())
	}
	if got := s.World().Count(KindBrick); got != startBricks {
		t.Errorf("bricks after reset = %d, want %d", got, startBricks)
	}
	if got := s.Snapshot().Hash(); got != startHash {
		t.Errorf("snapshot hash after reset = %#x, want the initial %#x", got, startHash)
	}
}

func TestSimulationRejectsBadConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Sim.TickRate = 0

	if _, err := New(cfg, nil); err == nil {
		t.Error("New() accepted a zero tick rate")
	}
}

func TestSnapshotHashTracksState(t *testing.T) {
	s, err := New(testConfig(), nil)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	before := s.Snapshot()
	s.Step(core.InputFrame{})
	after := s.Snapshot()

	if before.Hash() == after.Hash() {
		t.Error("hash unchanged although the ball moved")
	}
	if len(after.Entities) == 0 {
		t.Error("snapshot carries no entities")
	}
	if after.Tick != 1 {
		t.Errorf("snapshot tick = %d, want 1", after.Tick)
	}
}
