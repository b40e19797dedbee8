package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// SpriteData is the cosmetic appearance of a body. Channels are in [0, 1].
type SpriteData struct {
	R, G, B float32
}

// RGBA converts the sprite color to an opaque 8-bit color.
func (s SpriteData) RGBA() color.RGBA {
	return color.RGBA{
		R: uint8(s.R*255 + 0.5),
		G: uint8(s.G*255 + 0.5),
		B: uint8(s.B*255 + 0.5),
		A: 255,
	}
}

var Sprite = donburi.NewComponentType[SpriteData]()
