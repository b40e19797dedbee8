package factory

import (
	"math/rand/v2"

	"github.com/automoto/brownian/components"
	cfg "github.com/automoto/brownian/config"
	"github.com/automoto/brownian/shared/gamemath"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// SpawnSwarm creates cfg.Swarm.Count bodies with randomized initial state drawn from rng.
func SpawnSwarm(w donburi.World, space *cp.Space, index *components.VisibilityIndexData, rng *rand.Rand) []*donburi.Entry {
	bodies := make([]*donburi.Entry, 0, cfg.Swarm.Count)
	for i := 0; i < cfg.Swarm.Count; i++ {
		spawn := BodySpawn{
			Position: dmath.Vec2{
				X: gamemath.Symmetric(rng, cfg.Swarm.PositionRange),
				Y: gamemath.Symmetric(rng, cfg.Swarm.PositionRange),
			},
			Velocity: dmath.Vec2{
				X: gamemath.Symmetric(rng, cfg.Swarm.VelocityRange),
				Y: gamemath.Symmetric(rng, cfg.Swarm.VelocityRange),
			},
			AngularVelocity: gamemath.Symmetric(rng, cfg.Swarm.AngularVelocityRange),
			Color: components.SpriteData{
				R: rng.Float32(),
				G: rng.Float32(),
				B: rng.Float32(),
			},
		}
		bodies = append(bodies, CreateBody(w, space, index, spawn))
	}
	return bodies
}
