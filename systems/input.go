package systems

import (
	"github.com/automoto/brownian/components"
	cfg "github.com/automoto/brownian/config"
	"github.com/automoto/brownian/loop"
)

// UpdateInput polls the frame's input source into the Input component and queues
// scroll events. Must run BEFORE UpdateAnchor and UpdateZoom.
func UpdateInput(f *loop.Frame) {
	entry, ok := FindInput(f.World)
	if !ok {
		return
	}
	input := components.Input.Get(entry)

	input.Current = [cfg.ActionCount]bool{}

	if f.Input == nil {
		return
	}

	for action := cfg.ActionNone + 1; action < cfg.ActionCount; action++ {
		input.Current[action] = f.Input.Pressed(action)
	}

	queue := components.ScrollQueue.Get(entry)
	for _, y := range f.Input.DrainScroll() {
		queue.Push(components.ScrollEvent{Y: y})
	}
}
