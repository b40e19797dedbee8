package render

import (
	"image/color"

	"github.com/automoto/brownian/components"
	"github.com/automoto/brownian/systems"
	"github.com/automoto/brownian/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

var (
	drawOp     = &ebiten.DrawImageOptions{}
	whiteImage *ebiten.Image
)

func pixel() *ebiten.Image {
	if whiteImage == nil {
		whiteImage = ebiten.NewImage(1, 1)
		whiteImage.Fill(color.White)
	}
	return whiteImage
}

// View maps world coordinates (y up) to screen pixels (y down).
type View struct {
	CenterX, CenterY float64 // Camera position in the world
	Scale            float64 // World units per pixel
	Width, Height    float64 // Screen size in pixels
}

// CurrentView builds the view from the unique camera, or an identity view at the origin.
func CurrentView(w donburi.World, screen *ebiten.Image) View {
	v := View{
		Scale:  1,
		Width:  float64(screen.Bounds().Dx()),
		Height: float64(screen.Bounds().Dy()),
	}
	if entry, ok := systems.FindCamera(w); ok {
		camera := components.Camera.Get(entry)
		v.CenterX = camera.Position.X
		v.CenterY = camera.Position.Y
		v.Scale = camera.Scale
	}
	return v
}

// ToScreen converts a world point to screen pixels.
func (v View) ToScreen(x, y float64) (float64, float64) {
	return (x-v.CenterX)/v.Scale + v.Width/2, -(y-v.CenterY)/v.Scale + v.Height/2
}

// DrawBodies renders every visible body as a rotated, tinted square.
func DrawBodies(w donburi.World, screen *ebiten.Image) {
	view := CurrentView(w, screen)
	if view.Scale == 0 {
		return // degenerate zoom, nothing has a size
	}
	img := pixel()

	tags.Body.Each(w, func(e *donburi.Entry) {
		tr := components.Transform.Get(e)
		if !tr.Visible {
			return
		}
		body := components.Body.Get(e)
		sprite := components.Sprite.Get(e)
		side := body.HalfExtent * 2

		sx, sy := view.ToScreen(tr.Position.X, tr.Position.Y)

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()

		// Unit pixel centered on the origin, sized to the body
		drawOp.GeoM.Translate(-0.5, -0.5)
		drawOp.GeoM.Scale(side/view.Scale, side/view.Scale)
		// Counter-clockwise in world space is clockwise on a y-down screen
		drawOp.GeoM.Rotate(-tr.Rotation)
		drawOp.GeoM.Translate(sx, sy)

		drawOp.ColorScale.ScaleWithColor(sprite.RGBA())
		screen.DrawImage(img, drawOp)
	})
}
