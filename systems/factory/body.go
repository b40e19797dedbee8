package factory

import (
	"math"

	"github.com/automoto/brownian/archetypes"
	"github.com/automoto/brownian/components"
	cfg "github.com/automoto/brownian/config"
	"github.com/automoto/brownian/shared/gamemath"
	"github.com/automoto/brownian/tags"
	"github.com/jakecoffman/cp"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// BodySpawn is the initial kinematic state of a body.
type BodySpawn struct {
	Position        dmath.Vec2
	Velocity        dmath.Vec2
	AngularVelocity float64
	Color           components.SpriteData
}

// CreateBody spawns a square body, registers it with the physics space and, when index is
// non-nil, with the visibility index.
func CreateBody(w donburi.World, space *cp.Space, index *components.VisibilityIndexData, spawn BodySpawn) *donburi.Entry {
	entry := archetypes.Body.Spawn(w)

	data := components.BodyData{
		HalfExtent:     cfg.Swarm.HalfExtent,
		LinearDamping:  cfg.Swarm.LinearDamping,
		AngularDamping: cfg.Swarm.AngularDamping,
		GravityScale:   cfg.Swarm.GravityScale,
		SleepDisabled:  true,
	}
	components.Body.SetValue(entry, data)
	components.Impulse.SetValue(entry, components.ImpulseData{})
	components.Sprite.SetValue(entry, spawn.Color)

	side := data.HalfExtent * 2
	mass := cfg.Physics.Density * side * side

	body := space.AddBody(cp.NewBody(mass, cp.MomentForBox(mass, side, side)))
	body.SetPosition(cp.Vector{X: spawn.Position.X, Y: spawn.Position.Y})
	body.SetVelocityVector(cp.Vector{X: spawn.Velocity.X, Y: spawn.Velocity.Y})
	body.SetAngularVelocity(spawn.AngularVelocity)
	body.SetVelocityUpdateFunc(velocityFunc(data))
	body.UserData = entry.Entity()

	shape := space.AddShape(cp.NewBox(body, side, side, 0))
	shape.SetFriction(cfg.Physics.Friction)
	shape.SetElasticity(cfg.Physics.Elasticity)

	components.PhysicsBody.SetValue(entry, components.PhysicsBodyData{Body: body, Shape: shape})
	components.Transform.SetValue(entry, components.TransformData{
		Position:        spawn.Position,
		Velocity:        spawn.Velocity,
		AngularVelocity: spawn.AngularVelocity,
		Visible:         true,
	})

	if index != nil {
		r := BoundingRadius(data.HalfExtent)
		obj := resolv.NewObject(spawn.Position.X-r+index.Offset, spawn.Position.Y-r+index.Offset, 2*r, 2*r, tags.ResolvBody)
		obj.SetShape(resolv.NewRectangle(0, 0, 2*r, 2*r))
		obj.Data = entry.Entity()
		index.Add(obj)
		components.Object.SetValue(entry, components.ObjectData{Object: obj})
	}

	return entry
}

// BoundingRadius is the half-size of an axis-aligned box that contains the square at any rotation.
func BoundingRadius(halfExtent float64) float64 {
	return halfExtent * math.Sqrt2
}

// velocityFunc integrates velocity with the body's own gravity scale and damping.
// The engine-wide damping is still honored on top.
func velocityFunc(data components.BodyData) func(body *cp.Body, gravity cp.Vector, damping, dt float64) {
	return func(body *cp.Body, gravity cp.Vector, damping, dt float64) {
		body.UpdateVelocity(gravity.Mult(data.GravityScale), damping, dt)
		body.SetVelocityVector(body.Velocity().Mult(gamemath.DampingFactor(data.LinearDamping, dt)))
		body.SetAngularVelocity(body.AngularVelocity() * gamemath.DampingFactor(data.AngularDamping, dt))
	}
}
