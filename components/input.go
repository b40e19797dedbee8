package components

import (
	cfg "github.com/automoto/brownian/config"
	"github.com/yohamta/donburi"
)

// InputData stores this frame's pressed state for all actions.
type InputData struct {
	Current [cfg.ActionCount]bool
}

// Pressed reports whether the action is held this frame.
func (i *InputData) Pressed(action cfg.ActionID) bool {
	return i.Current[action]
}

var Input = donburi.NewComponentType[InputData]()
