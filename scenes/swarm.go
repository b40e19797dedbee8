package scenes

import (
	"log"
	"sync"

	cfg "github.com/automoto/brownian/config"
	"github.com/automoto/brownian/render"
	"github.com/automoto/brownian/sim"
	"github.com/hajimehoshi/ebiten/v2"
)

// SwarmScene runs the simulation one frame per ebiten Update and draws it.
type SwarmScene struct {
	seed  uint64
	sim   *sim.Simulation
	input *render.KeyboardInput
	hud   *render.HUD
	once  sync.Once
}

func NewSwarmScene(seed uint64) *SwarmScene {
	return &SwarmScene{seed: seed}
}

func (s *SwarmScene) Update() {
	s.once.Do(s.configure)

	dt := 1.0 / float64(ebiten.TPS())
	s.input.Poll()
	s.sim.Tick(dt)

	if camera, ok := s.sim.Camera(); ok {
		s.hud.Update(dt, camera)
	}
}

func (s *SwarmScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.C.ClearColor)
	if s.sim == nil {
		return
	}

	render.DrawBodies(s.sim.World, screen)

	stats := s.sim.Stats()
	info := render.HUDInfo{Bodies: stats.Bodies, Visible: stats.Visible}
	if anchor, ok := s.sim.Anchor(); ok {
		info.Anchor = anchor.Position.XY()
	}
	s.hud.Draw(screen, info)
}

func (s *SwarmScene) configure() {
	simulation, err := sim.New(s.seed)
	if err != nil {
		panic(err)
	}
	hud, err := render.NewHUD()
	if err != nil {
		panic(err)
	}

	s.input = render.NewKeyboardInput()
	simulation.SetInput(s.input)
	s.sim = simulation
	s.hud = hud

	log.Printf("Spawned %d bodies (seed %d)", cfg.Swarm.Count, s.seed)
}
