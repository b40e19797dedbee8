package systems

import (
	"github.com/automoto/brownian/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var (
	cameraQuery = donburi.NewQuery(filter.Contains(components.Camera))
	anchorQuery = donburi.NewQuery(filter.Contains(components.Anchor))
	inputQuery  = donburi.NewQuery(filter.Contains(components.Input, components.ScrollQueue))
)

// unique returns the only entry matching q. No match and several matches both report false.
func unique(w donburi.World, q *donburi.Query) (*donburi.Entry, bool) {
	var found *donburi.Entry
	n := 0
	q.Each(w, func(e *donburi.Entry) {
		n++
		if n == 1 {
			found = e
		}
	})
	if n != 1 {
		return nil, false
	}
	return found, true
}

// FindCamera returns the camera when exactly one exists.
func FindCamera(w donburi.World) (*donburi.Entry, bool) {
	return unique(w, cameraQuery)
}

// FindAnchor returns the player anchor when exactly one exists.
func FindAnchor(w donburi.World) (*donburi.Entry, bool) {
	return unique(w, anchorQuery)
}

// FindInput returns the input/scroll-queue holder when exactly one exists.
func FindInput(w donburi.World) (*donburi.Entry, bool) {
	return unique(w, inputQuery)
}
