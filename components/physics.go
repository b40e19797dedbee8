package components

import (
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
)

// PhysicsBodyData links an entity to its rigid body in the physics space.
type PhysicsBodyData struct {
	Body  *cp.Body
	Shape *cp.Shape
}

var PhysicsBody = donburi.NewComponentType[PhysicsBodyData]()

// SpaceData wraps the physics engine space.
type SpaceData struct {
	*cp.Space
}

var Space = donburi.NewComponentType[SpaceData]()
