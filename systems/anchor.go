package systems

import (
	"github.com/automoto/brownian/components"
	cfg "github.com/automoto/brownian/config"
	"github.com/automoto/brownian/loop"
	"github.com/automoto/brownian/shared/gamemath"
)

// UpdateAnchor moves the player anchor from directional input at cfg.Anchor.Speed units
// per second. Diagonals are normalized so they are no faster than a single axis.
func UpdateAnchor(f *loop.Frame) {
	anchorEntry, ok := FindAnchor(f.World)
	if !ok {
		return
	}

	var dirX, dirY float64
	if inputEntry, ok := FindInput(f.World); ok {
		dirX, dirY = AnchorDirection(components.Input.Get(inputEntry))
	}
	if dirX == 0 && dirY == 0 {
		return
	}

	anchor := components.Anchor.Get(anchorEntry)
	step := cfg.Anchor.Speed * f.Dt
	anchor.Position.X += dirX * step
	anchor.Position.Y += dirY * step
}

// AnchorDirection returns the unit movement direction for the held actions, or zero.
func AnchorDirection(input *components.InputData) (float64, float64) {
	return gamemath.NormalizeOrZero(gamemath.DirectionFromInput(
		input.Pressed(cfg.ActionMoveUp),
		input.Pressed(cfg.ActionMoveDown),
		input.Pressed(cfg.ActionMoveLeft),
		input.Pressed(cfg.ActionMoveRight),
	))
}
