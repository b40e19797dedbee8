package factory

import (
	"github.com/automoto/brownian/archetypes"
	"github.com/automoto/brownian/components"
	cfg "github.com/automoto/brownian/config"
	"github.com/automoto/brownian/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateVisibilityIndex builds the culling grid, centered on the world origin.
func CreateVisibilityIndex(w donburi.World) *donburi.Entry {
	entry := archetypes.VisibilityIndex.Spawn(w)

	extent := cfg.Visibility.Extent
	space := resolv.NewSpace(extent, extent, cfg.Visibility.CellSize, cfg.Visibility.CellSize)

	view := resolv.NewObject(0, 0, 1, 1, tags.ResolvView)
	space.Add(view)

	components.VisibilityIndex.SetValue(entry, components.VisibilityIndexData{
		Space:  space,
		Offset: float64(extent) / 2,
		View:   view,
	})
	return entry
}
