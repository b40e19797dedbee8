package factory

import (
	"github.com/automoto/brownian/archetypes"
	"github.com/automoto/brownian/components"
	"github.com/yohamta/donburi"
)

// CreateInput spawns the entity holding action state and the scroll queue.
func CreateInput(w donburi.World) *donburi.Entry {
	input := archetypes.Input.Spawn(w)
	components.Input.SetValue(input, components.InputData{})
	components.ScrollQueue.SetValue(input, components.ScrollQueueData{
		Events: make([]components.ScrollEvent, 0, 8),
	})
	return input
}
