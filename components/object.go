package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is an entity's box in the visibility index.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// VisibilityIndexData is the broad-phase grid used for viewport culling.
// World coordinates are shifted by Offset so the grid only sees non-negative values.
type VisibilityIndexData struct {
	*resolv.Space
	Offset float64
	View   *resolv.Object
}

var VisibilityIndex = donburi.NewComponentType[VisibilityIndexData]()
