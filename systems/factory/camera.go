package factory

import (
	"github.com/automoto/brownian/archetypes"
	"github.com/automoto/brownian/components"
	cfg "github.com/automoto/brownian/config"
	"github.com/yohamta/donburi"
)

func CreateCamera(w donburi.World) *donburi.Entry {
	camera := archetypes.Camera.Spawn(w)
	components.Camera.SetValue(camera, components.CameraData{
		Position: components.Vec3{X: 0, Y: 0, Z: cfg.Camera.Z},
		Scale:    cfg.Camera.InitialScale,
	})
	return camera
}
