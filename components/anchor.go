package components

import "github.com/yohamta/donburi"

// AnchorData is the player-driven point the camera follows.
type AnchorData struct {
	Position Vec3 // Z is carried but never moved
}

var Anchor = donburi.NewComponentType[AnchorData]()
