package factory

import (
	"github.com/automoto/brownian/archetypes"
	"github.com/automoto/brownian/components"
	"github.com/yohamta/donburi"
)

// CreateAnchor spawns the player anchor at the origin.
func CreateAnchor(w donburi.World) *donburi.Entry {
	anchor := archetypes.Anchor.Spawn(w)
	components.Anchor.SetValue(anchor, components.AnchorData{})
	return anchor
}
