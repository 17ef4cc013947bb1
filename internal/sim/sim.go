package sim

import (
	"github.com/charmbracelet/log"

	"github.com/arcadeworks/tui-breakout/internal/config"
	"github.com/arcadeworks/tui-breakout/internal/core"
)

// StepResult is returned by Simulation.Step after each tick.
type StepResult struct {
	Score  int              // current scoreboard value
	Bricks int              // bricks still alive
	Events []CollisionEvent // impacts detected this tick, nil when none
}

// Simulation owns the world and the scoreboard and advances them one fixed
// tick at a time. It is a pure per-tick transform with no long-lived mode
// state: there is no win or lose handling, a cleared grid simply leaves the
// ball bouncing. Not safe for concurrent use; the host loop is the sole
// owner.
type Simulation struct {
	cfg    config.Config
	world  *World
	score  Scoreboard
	tick   uint64
	dt     float64
	logger *log.Logger
}

// New validates the configuration, builds the starting world and returns a
// ready simulation. Configuration errors are fatal by contract: callers
// should abort, not retry.
func New(cfg config.Config, logger *log.Logger) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	world, err := BuildWorld(cfg)
	if err != nil {
		return nil, err
	}

	return &Simulation{
		cfg:    cfg,
		world:  world,
		dt:     cfg.Sim.Timestep(),
		logger: logger,
	}, nil
}

// Step advances the simulation by one fixed tick. The order inside a tick is
// load-bearing: paddle input applies first, then the integrator moves the
// ball, then collisions resolve against the updated positions.
func (s *Simulation) Step(in core.InputFrame) StepResult {
	MovePaddle(s.world, s.cfg, in.Direction(), s.dt)
	ApplyVelocity(s.world, s.dt)
	events := ResolveCollisions(s.world, &s.score, s.logger)
	s.tick++

	return StepResult{
		Score:  s.score.Value(),
		Bricks: s.world.Count(KindBrick),
		Events: events,
	}
}

// Reset rebuilds the world from the original configuration and zeroes the
// scoreboard and tick counter.
func (s *Simulation) Reset() error {
	world, err := BuildWorld(s.cfg)
	if err != nil {
		return err
	}
	s.world = world
	s.score.Reset()
	s.tick = 0
	return nil
}

// World exposes the entity arena. The simulation loop is the sole mutator;
// everything else must treat it as read-only.
func (s *Simulation) World() *World {
	return s.world
}

// Score returns the current scoreboard value.
func (s *Simulation) Score() int {
	return s.score.Value()
}

// Tick returns the number of ticks stepped since the last reset.
func (s *Simulation) Tick() uint64 {
	return s.tick
}

// Config returns the configuration the simulation was built with.
func (s *Simulation) Config() config.Config {
	return s.cfg
}
