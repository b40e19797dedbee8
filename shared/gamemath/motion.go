package gamemath

import "math"

// DirectionFromInput sums one unit per active direction on each axis.
// Y grows upward: up adds +1, down adds -1.
func DirectionFromInput(up, down, left, right bool) (dirX, dirY float64) {
	if up {
		dirY += 1.0
	}
	if down {
		dirY -= 1.0
	}
	if left {
		dirX -= 1.0
	}
	if right {
		dirX += 1.0
	}
	return dirX, dirY
}

// NormalizeOrZero returns the unit vector of (x, y), or (0, 0) for the null vector.
func NormalizeOrZero(x, y float64) (float64, float64) {
	length := math.Hypot(x, y)
	if length == 0 || math.IsNaN(length) || math.IsInf(length, 0) {
		return 0, 0
	}
	return x / length, y / length
}
