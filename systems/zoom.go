package systems

import (
	"github.com/automoto/brownian/components"
	cfg "github.com/automoto/brownian/config"
	"github.com/automoto/brownian/loop"
)

// UpdateZoom applies the frame's scroll events to the camera scale, oldest first.
// Scrolling up (positive Y) zooms in. The scale is not clamped, so enough scrolling
// drives it through zero and negative.
// The queue is emptied even when there is no camera to apply it to.
func UpdateZoom(f *loop.Frame) {
	inputEntry, ok := FindInput(f.World)
	if !ok {
		return
	}
	queue := components.ScrollQueue.Get(inputEntry)

	cameraEntry, ok := FindCamera(f.World)
	if !ok {
		queue.Drain(func(components.ScrollEvent) {})
		return
	}
	camera := components.Camera.Get(cameraEntry)

	queue.Drain(func(e components.ScrollEvent) {
		camera.Scale -= ZoomDelta(e.Y, cfg.Camera.ZoomSpeed, f.Dt)
	})
}

// ZoomDelta is the amount one scroll event removes from the camera scale.
func ZoomDelta(scrollY, zoomSpeed, dt float64) float64 {
	return scrollY * zoomSpeed * dt
}
