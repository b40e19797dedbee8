package components

import "testing"

func TestVec3XYDropsDepth(t *testing.T) {
	v := Vec3{X: 3, Y: -4, Z: 9}.XY()
	if v.X != 3 || v.Y != -4 {
		t.Errorf("XY() = %v, want (3, -4)", v)
	}
}
