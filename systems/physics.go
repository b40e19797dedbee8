package systems

import (
	"github.com/automoto/brownian/components"
	"github.com/automoto/brownian/loop"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdatePhysics hands pending impulses to the engine, steps the space by the frame time
// and copies the resulting body state back into Transform.
func UpdatePhysics(f *loop.Frame) {
	spaceEntry, ok := components.Space.First(f.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	if space.Space == nil || f.Dt <= 0 {
		return
	}

	components.PhysicsBody.Each(f.World, func(e *donburi.Entry) {
		pb := components.PhysicsBody.Get(e)
		if pb.Body == nil {
			return
		}
		if e.HasComponent(components.Impulse) {
			applyImpulse(pb.Body, components.Impulse.Get(e))
		}
		if e.HasComponent(components.Body) && components.Body.Get(e).SleepDisabled {
			pb.Body.Activate()
		}
	})

	space.Step(f.Dt)

	components.PhysicsBody.Each(f.World, func(e *donburi.Entry) {
		pb := components.PhysicsBody.Get(e)
		if pb.Body == nil || !e.HasComponent(components.Transform) {
			return
		}
		syncTransform(pb.Body, components.Transform.Get(e))
	})
}

// applyImpulse applies the linear part at the center of mass and the torque part as
// an angular velocity change, then clears the slot so it is used once.
func applyImpulse(body *cp.Body, impulse *components.ImpulseData) {
	if impulse.Linear.X != 0 || impulse.Linear.Y != 0 {
		body.ApplyImpulseAtWorldPoint(cp.Vector{X: impulse.Linear.X, Y: impulse.Linear.Y}, body.Position())
	}
	if impulse.Torque != 0 {
		if moment := body.Moment(); moment > 0 {
			body.SetAngularVelocity(body.AngularVelocity() + impulse.Torque/moment)
		}
	}
	*impulse = components.ImpulseData{}
}

func syncTransform(body *cp.Body, t *components.TransformData) {
	p := body.Position()
	v := body.Velocity()
	t.Position = dmath.Vec2{X: p.X, Y: p.Y}
	t.Rotation = body.Angle()
	t.Velocity = dmath.Vec2{X: v.X, Y: v.Y}
	t.AngularVelocity = body.AngularVelocity()
}
