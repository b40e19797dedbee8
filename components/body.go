package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// BodyData holds the static physical attributes of a swarm body.
type BodyData struct {
	HalfExtent     float64 // Half the side of the square collider
	LinearDamping  float64
	AngularDamping float64
	GravityScale   float64 // 0 = unaffected by gravity
	SleepDisabled  bool    // Never let the engine put the body to sleep
}

var Body = donburi.NewComponentType[BodyData]()

// ImpulseData is the pending impulse for the next physics step.
// It is overwritten each frame and zeroed once the step consumes it.
type ImpulseData struct {
	Linear math.Vec2
	Torque float64
}

var Impulse = donburi.NewComponentType[ImpulseData]()

// TransformData is the kinematic state read back from the physics engine after each step.
type TransformData struct {
	Position        math.Vec2
	Rotation        float64 // Radians, counter-clockwise
	Velocity        math.Vec2
	AngularVelocity float64
	Visible         bool // Inside the camera view this frame
}

var Transform = donburi.NewComponentType[TransformData]()
