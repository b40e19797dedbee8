package systems

import (
	"math"

	"github.com/automoto/brownian/components"
	cfg "github.com/automoto/brownian/config"
	"github.com/automoto/brownian/loop"
	"github.com/automoto/brownian/tags"
	"github.com/yohamta/donburi"
)

// Rect is an axis-aligned rectangle in world units.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Overlaps reports whether r and o share any area or edge.
func (r Rect) Overlaps(o Rect) bool {
	return r.MinX <= o.MaxX && o.MinX <= r.MaxX && r.MinY <= o.MaxY && o.MinY <= r.MaxY
}

// ViewRect returns the world-space area shown by the camera on a width x height screen.
func ViewRect(camera *components.CameraData, width, height float64) Rect {
	scale := math.Abs(camera.Scale)
	halfW := width/2*scale + cfg.Visibility.Padding
	halfH := height/2*scale + cfg.Visibility.Padding
	return Rect{
		MinX: camera.Position.X - halfW,
		MinY: camera.Position.Y - halfH,
		MaxX: camera.Position.X + halfW,
		MaxY: camera.Position.Y + halfH,
	}
}

// UpdateVisibility refreshes the culling grid from body transforms and flags the bodies
// inside the camera view. Without a unique camera every body is flagged visible.
func UpdateVisibility(f *loop.Frame) {
	indexEntry, ok := components.VisibilityIndex.First(f.World)
	if !ok {
		return
	}
	index := components.VisibilityIndex.Get(indexEntry)

	cameraEntry, hasCamera := FindCamera(f.World)

	extent := float64(cfg.Visibility.Extent)
	var outside []*donburi.Entry

	components.Object.Each(f.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		if obj.Object == nil || !e.HasComponent(components.Transform) {
			return
		}
		tr := components.Transform.Get(e)

		r := obj.W / 2
		obj.X = tr.Position.X - r + index.Offset
		obj.Y = tr.Position.Y - r + index.Offset
		obj.Update()

		tr.Visible = !hasCamera
		if obj.X < 0 || obj.Y < 0 || obj.X+obj.W > extent || obj.Y+obj.H > extent {
			outside = append(outside, e)
		}
	})

	if !hasCamera {
		return
	}

	view := ViewRect(components.Camera.Get(cameraEntry), float64(cfg.C.Width), float64(cfg.C.Height))

	if window, ok := IndexWindow(view, index.Offset, extent); ok {
		index.View.X = window.MinX
		index.View.Y = window.MinY
		index.View.W = window.MaxX - window.MinX
		index.View.H = window.MaxY - window.MinY
		index.View.Update()

		if check := index.View.Check(0, 0, tags.ResolvBody); check != nil {
			for _, obj := range check.ObjectsByTags(tags.ResolvBody) {
				entity, ok := obj.Data.(donburi.Entity)
				if !ok || !f.World.Valid(entity) {
					continue
				}
				markVisible(f.World.Entry(entity), view, index.Offset)
			}
		}
	}

	// The grid cannot see bodies that drifted past its edge
	for _, e := range outside {
		markVisible(e, view, index.Offset)
	}
}

// IndexWindow converts a world view rectangle into index coordinates, clipped to
// [0, extent] on both axes, since the grid walks every cell the window spans.
// ok is false when the view does not touch the index at all.
func IndexWindow(view Rect, offset, extent float64) (Rect, bool) {
	w := Rect{
		MinX: math.Max(view.MinX+offset, 0),
		MinY: math.Max(view.MinY+offset, 0),
		MaxX: math.Min(view.MaxX+offset, extent),
		MaxY: math.Min(view.MaxY+offset, extent),
	}
	if w.MinX > w.MaxX || w.MinY > w.MaxY {
		return Rect{}, false
	}
	return w, true
}

func markVisible(e *donburi.Entry, view Rect, offset float64) {
	obj := components.Object.Get(e)
	tr := components.Transform.Get(e)
	bounds := Rect{
		MinX: obj.X - offset,
		MinY: obj.Y - offset,
		MaxX: obj.X - offset + obj.W,
		MaxY: obj.Y - offset + obj.H,
	}
	tr.Visible = view.Overlaps(bounds)
}
