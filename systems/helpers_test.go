package systems

import (
	"math/rand/v2"
	"testing"

	cfg "github.com/automoto/brownian/config"
	"github.com/automoto/brownian/loop"
	"github.com/yohamta/donburi"
)

type fakeInput struct {
	pressed map[cfg.ActionID]bool
	scroll  []float64
}

func (f *fakeInput) Pressed(action cfg.ActionID) bool {
	return f.pressed[action]
}

func (f *fakeInput) DrainScroll() []float64 {
	s := f.scroll
	f.scroll = nil
	return s
}

func newFrame(w donburi.World, dt float64) *loop.Frame {
	return &loop.Frame{
		World: w,
		Rand:  rand.New(rand.NewPCG(42, 1337)),
		Dt:    dt,
	}
}

// restoreConfig puts back any config globals a test mutates.
func restoreConfig(t *testing.T) {
	t.Helper()
	swarm, anchor, camera, physics := cfg.Swarm, cfg.Anchor, cfg.Camera, cfg.Physics
	t.Cleanup(func() {
		cfg.Swarm, cfg.Anchor, cfg.Camera, cfg.Physics = swarm, anchor, camera, physics
	})
}
