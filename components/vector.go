package components

import "github.com/yohamta/donburi/features/math"

// Vec3 is a 3D point; the simulation only moves x and y.
type Vec3 struct {
	X, Y, Z float64
}

// XY drops the depth coordinate.
func (v Vec3) XY() math.Vec2 {
	return math.Vec2{X: v.X, Y: v.Y}
}
