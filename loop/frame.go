package loop

import (
	"math/rand/v2"

	cfg "github.com/automoto/brownian/config"
	"github.com/yohamta/donburi"
)

// InputSource is polled once per frame for directional state and scroll deltas.
type InputSource interface {
	Pressed(action cfg.ActionID) bool
	// DrainScroll returns the vertical wheel deltas received since the last call, oldest first.
	DrainScroll() []float64
}

// Frame is everything a system may touch during one tick.
type Frame struct {
	World donburi.World
	Rand  *rand.Rand  // Simulation-owned random stream
	Input InputSource // May be nil
	Dt    float64     // Seconds since the previous frame
	Count uint64      // Frames completed before this one
}

// System is one phase of the per-frame pipeline.
type System func(f *Frame)

type namedSystem struct {
	name string
	fn   System
}

// Scheduler runs its systems in registration order, once per Tick.
type Scheduler struct {
	frame   Frame
	systems []namedSystem
}

func NewScheduler(w donburi.World, rng *rand.Rand) *Scheduler {
	return &Scheduler{
		frame: Frame{World: w, Rand: rng},
	}
}

// AddSystem appends a phase to the end of the pipeline.
func (s *Scheduler) AddSystem(name string, fn System) *Scheduler {
	s.systems = append(s.systems, namedSystem{name: name, fn: fn})
	return s
}

// Systems returns the phase names in execution order.
func (s *Scheduler) Systems() []string {
	names := make([]string, len(s.systems))
	for i, sys := range s.systems {
		names[i] = sys.name
	}
	return names
}

// SetInput replaces the input source used by subsequent ticks.
func (s *Scheduler) SetInput(in InputSource) {
	s.frame.Input = in
}

// Tick runs every system once with the given frame time.
func (s *Scheduler) Tick(dt float64) {
	s.frame.Dt = dt
	for _, sys := range s.systems {
		sys.fn(&s.frame)
	}
	s.frame.Count++
}

// Frames returns how many ticks have completed.
func (s *Scheduler) Frames() uint64 {
	return s.frame.Count
}
