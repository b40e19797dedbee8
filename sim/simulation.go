package sim

import (
	"fmt"
	"math/rand/v2"

	"github.com/automoto/brownian/components"
	cfg "github.com/automoto/brownian/config"
	"github.com/automoto/brownian/loop"
	"github.com/automoto/brownian/shared/gamemath"
	"github.com/automoto/brownian/systems"
	"github.com/automoto/brownian/systems/factory"
	"github.com/yohamta/donburi"
)

// Simulation owns the world, its random stream and the ordered frame pipeline.
type Simulation struct {
	World     donburi.World
	Rand      *rand.Rand
	scheduler *loop.Scheduler
}

// New validates the configuration, builds every startup entity and wires the
// per-frame systems. The world is fully populated before the first Tick.
func New(seed uint64) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	world := donburi.NewWorld()
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	spaceEntry := factory.CreateSpace(world)
	indexEntry := factory.CreateVisibilityIndex(world)
	factory.CreateInput(world)
	factory.CreateAnchor(world)
	factory.CreateCamera(world)

	space := components.Space.Get(spaceEntry)
	index := components.VisibilityIndex.Get(indexEntry)
	factory.SpawnSwarm(world, space.Space, index, rng)

	scheduler := loop.NewScheduler(world, rng)
	scheduler.
		AddSystem("input", systems.UpdateInput).
		AddSystem("brownian", systems.UpdateBrownianMotion).
		AddSystem("physics", systems.UpdatePhysics).
		AddSystem("anchor", systems.UpdateAnchor).
		AddSystem("camera", systems.UpdateCamera).
		AddSystem("zoom", systems.UpdateZoom).
		AddSystem("visibility", systems.UpdateVisibility)

	return &Simulation{
		World:     world,
		Rand:      rng,
		scheduler: scheduler,
	}, nil
}

// SetInput sets the source polled at the start of every frame. nil means no input.
func (s *Simulation) SetInput(in loop.InputSource) {
	s.scheduler.SetInput(in)
}

// Tick advances the simulation by one frame of dt seconds.
// dt is clamped to [0, cfg.Loop.MaxFrameTime].
func (s *Simulation) Tick(dt float64) {
	s.scheduler.Tick(gamemath.ClampFrameTime(dt, cfg.Loop.MaxFrameTime))
}

// Frames returns the number of completed ticks.
func (s *Simulation) Frames() uint64 {
	return s.scheduler.Frames()
}

// Phases lists the per-frame systems in execution order.
func (s *Simulation) Phases() []string {
	return s.scheduler.Systems()
}

// Camera returns a copy of the camera state, if exactly one camera exists.
func (s *Simulation) Camera() (components.CameraData, bool) {
	entry, ok := systems.FindCamera(s.World)
	if !ok {
		return components.CameraData{}, false
	}
	return *components.Camera.Get(entry), true
}

// Anchor returns a copy of the anchor state, if exactly one anchor exists.
func (s *Simulation) Anchor() (components.AnchorData, bool) {
	entry, ok := systems.FindAnchor(s.World)
	if !ok {
		return components.AnchorData{}, false
	}
	return *components.Anchor.Get(entry), true
}
