package systems

import (
	"github.com/automoto/brownian/components"
	cfg "github.com/automoto/brownian/config"
	"github.com/automoto/brownian/loop"
	"github.com/automoto/brownian/shared/gamemath"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdateBrownianMotion draws a fresh random impulse for every body, replacing
// whatever was pending.
func UpdateBrownianMotion(f *loop.Frame) {
	magnitude := cfg.Swarm.ImpulseMagnitude
	torque := cfg.Swarm.TorqueFactor * magnitude

	components.Impulse.Each(f.World, func(e *donburi.Entry) {
		impulse := components.Impulse.Get(e)
		impulse.Linear = dmath.Vec2{
			X: gamemath.Symmetric(f.Rand, magnitude),
			Y: gamemath.Symmetric(f.Rand, magnitude),
		}
		impulse.Torque = gamemath.Symmetric(f.Rand, torque)
	})
}
