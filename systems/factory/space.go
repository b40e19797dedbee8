package factory

import (
	"math"

	"github.com/automoto/brownian/archetypes"
	"github.com/automoto/brownian/components"
	cfg "github.com/automoto/brownian/config"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
)

// CreateSpace adds the physics space singleton. Sleeping is switched off engine-wide;
// bodies additionally carry their own SleepDisabled flag.
func CreateSpace(w donburi.World) *donburi.Entry {
	entry := archetypes.Space.Spawn(w)

	space := cp.NewSpace()
	space.Iterations = cfg.Physics.Iterations
	space.SetGravity(cp.Vector{X: 0, Y: cfg.Physics.Gravity})
	space.SetDamping(cfg.Physics.SpaceDamping)
	space.SleepTimeThreshold = math.Inf(1)

	components.Space.SetValue(entry, components.SpaceData{Space: space})
	return entry
}
