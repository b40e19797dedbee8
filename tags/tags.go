package tags

import "github.com/yohamta/donburi"

var (
	Body   = donburi.NewTag().SetName("Body")
	Anchor = donburi.NewTag().SetName("Anchor")
	Camera = donburi.NewTag().SetName("Camera")
)

// Resolv tags for the visibility index
const (
	ResolvBody = "body"
	ResolvView = "view"
)
