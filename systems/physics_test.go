package systems

import (
	"math"
	"testing"

	"github.com/automoto/brownian/components"
	cfg "github.com/automoto/brownian/config"
	"github.com/automoto/brownian/shared/gamemath"
	"github.com/automoto/brownian/systems/factory"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

func newPhysicsWorld(spawns ...factory.BodySpawn) (donburi.World, []*donburi.Entry) {
	w := donburi.NewWorld()
	space := components.Space.Get(factory.CreateSpace(w))
	var bodies []*donburi.Entry
	for _, s := range spawns {
		bodies = append(bodies, factory.CreateBody(w, space.Space, nil, s))
	}
	return w, bodies
}

func TestPhysicsAppliesImpulseOnce(t *testing.T) {
	w, bodies := newPhysicsWorld(factory.BodySpawn{})
	entry := bodies[0]

	side := 2 * cfg.Swarm.HalfExtent
	mass := cfg.Physics.Density * side * side
	moment := mass * (side*side + side*side) / 12

	components.Impulse.SetValue(entry, components.ImpulseData{
		Linear: dmath.Vec2{X: 10 * mass},
		Torque: 2 * moment,
	})

	dt := 1.0 / 60
	f := newFrame(w, dt)
	UpdatePhysics(f)

	tr := components.Transform.Get(entry)
	wantV := 10 * gamemath.DampingFactor(cfg.Swarm.LinearDamping, dt)
	wantW := 2 * gamemath.DampingFactor(cfg.Swarm.AngularDamping, dt)
	if math.Abs(tr.Velocity.X-wantV) > 1e-6 || math.Abs(tr.Velocity.Y) > 1e-9 {
		t.Errorf("velocity after impulse = %+v, want (%v, 0)", tr.Velocity, wantV)
	}
	if math.Abs(tr.AngularVelocity-wantW) > 1e-6 {
		t.Errorf("angular velocity after impulse = %v, want %v", tr.AngularVelocity, wantW)
	}
	if imp := components.Impulse.Get(entry); *imp != (components.ImpulseData{}) {
		t.Errorf("impulse slot not consumed: %+v", imp)
	}

	UpdatePhysics(f)

	wantV *= gamemath.DampingFactor(cfg.Swarm.LinearDamping, dt)
	if math.Abs(tr.Velocity.X-wantV) > 1e-6 {
		t.Errorf("second step velocity = %v, want %v (impulse applied twice?)", tr.Velocity.X, wantV)
	}
	if tr.Position.X <= 0 {
		t.Errorf("body did not move: %+v", tr.Position)
	}
}

func TestPhysicsZeroGravityScale(t *testing.T) {
	w, bodies := newPhysicsWorld(factory.BodySpawn{Position: dmath.Vec2{X: 10, Y: 20}})
	f := newFrame(w, 1.0/60)
	for i := 0; i < 120; i++ {
		UpdatePhysics(f)
	}

	tr := components.Transform.Get(bodies[0])
	if tr.Position != (dmath.Vec2{X: 10, Y: 20}) {
		t.Errorf("weightless body drifted to %+v", tr.Position)
	}
}

func TestPhysicsGravityScaleIsHonored(t *testing.T) {
	restoreConfig(t)
	cfg.Swarm.GravityScale = 1

	w, bodies := newPhysicsWorld(factory.BodySpawn{})
	f := newFrame(w, 1.0/60)
	for i := 0; i < 30; i++ {
		UpdatePhysics(f)
	}

	if vy := components.Transform.Get(bodies[0]).Velocity.Y; vy >= 0 {
		t.Errorf("body with gravity scale 1 has vy = %v, expected it to fall", vy)
	}
}

func TestPhysicsDampingSlowsBodies(t *testing.T) {
	w, bodies := newPhysicsWorld(factory.BodySpawn{
		Velocity:        dmath.Vec2{X: 40, Y: -30},
		AngularVelocity: 4,
	})
	f := newFrame(w, 1.0/60)
	for i := 0; i < 60; i++ {
		UpdatePhysics(f)
	}

	tr := components.Transform.Get(bodies[0])
	speed := math.Hypot(tr.Velocity.X, tr.Velocity.Y)
	if speed >= 50 || speed <= 0 {
		t.Errorf("speed after one second = %v, want in (0, 50)", speed)
	}
	if tr.AngularVelocity >= 4 || tr.AngularVelocity <= 0 {
		t.Errorf("angular velocity after one second = %v, want in (0, 4)", tr.AngularVelocity)
	}
}

func TestPhysicsBodiesNeverSleep(t *testing.T) {
	w, bodies := newPhysicsWorld(factory.BodySpawn{})
	f := newFrame(w, 1.0/60)
	for i := 0; i < 600; i++ {
		UpdatePhysics(f)
	}

	body := components.PhysicsBody.Get(bodies[0]).Body
	if body.IsSleeping() {
		t.Fatal("a sleep-disabled body fell asleep")
	}

	components.Impulse.SetValue(bodies[0], components.ImpulseData{Linear: dmath.Vec2{X: 1e5}})
	UpdatePhysics(f)
	if vx := components.Transform.Get(bodies[0]).Velocity.X; vx <= 0 {
		t.Errorf("impulse had no effect after a long idle period, vx = %v", vx)
	}
}

func TestPhysicsResolvesOverlap(t *testing.T) {
	w, bodies := newPhysicsWorld(
		factory.BodySpawn{Position: dmath.Vec2{X: 0}},
		factory.BodySpawn{Position: dmath.Vec2{X: 10}},
	)
	f := newFrame(w, 1.0/60)
	for i := 0; i < 120; i++ {
		UpdatePhysics(f)
	}

	a := components.Transform.Get(bodies[0]).Position
	b := components.Transform.Get(bodies[1]).Position
	if d := math.Hypot(b.X-a.X, b.Y-a.Y); d < 10 {
		t.Errorf("overlapping bodies were not pushed apart, distance %v", d)
	}
}

func TestPhysicsSkipsZeroFrameTime(t *testing.T) {
	w, bodies := newPhysicsWorld(factory.BodySpawn{Velocity: dmath.Vec2{X: 100}})
	UpdatePhysics(newFrame(w, 0))

	if tr := components.Transform.Get(bodies[0]); tr.Position != (dmath.Vec2{}) {
		t.Errorf("zero dt moved the body to %+v", tr.Position)
	}
}

func TestPhysicsWithoutSpace(t *testing.T) {
	UpdatePhysics(newFrame(donburi.NewWorld(), 1.0/60))
}
