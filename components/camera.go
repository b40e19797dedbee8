package components

import "github.com/yohamta/donburi"

type CameraData struct {
	Position Vec3    // Z stays constant for the whole run
	Scale    float64 // Uniform zoom; >1 shows more of the world
}

var Camera = donburi.NewComponentType[CameraData]()
