package systems

import (
	"github.com/automoto/brownian/components"
	cfg "github.com/automoto/brownian/config"
	"github.com/automoto/brownian/loop"
	"github.com/automoto/brownian/shared/gamemath"
)

// UpdateCamera eases the camera toward the anchor on x and y. The remaining distance
// decays as exp(-DecayRate*t), so the path does not depend on the frame rate.
// Nothing happens unless exactly one camera and one anchor exist.
func UpdateCamera(f *loop.Frame) {
	cameraEntry, ok := FindCamera(f.World)
	if !ok {
		return
	}
	anchorEntry, ok := FindAnchor(f.World)
	if !ok {
		return // no anchor yet, skip camera update
	}

	camera := components.Camera.Get(cameraEntry)
	anchor := components.Anchor.Get(anchorEntry)

	// Depth is never tracked
	target := anchor.Position.XY()
	decay := cfg.Camera.DecayRate
	camera.Position.X = gamemath.SmoothNudge(camera.Position.X, target.X, decay, f.Dt)
	camera.Position.Y = gamemath.SmoothNudge(camera.Position.Y, target.Y, decay, f.Dt)
}
