package gamemath

// DampingFactor returns the velocity multiplier for one step of implicit damping:
// v' = v / (1 + dt*damping). Stays in (0, 1] for damping, dt >= 0.
func DampingFactor(damping, dt float64) float64 {
	return 1.0 / (1.0 + dt*damping)
}

// ClampFrameTime limits dt to [0, max].
func ClampFrameTime(dt, max float64) float64 {
	if dt < 0 {
		return 0
	}
	if dt > max {
		return max
	}
	return dt
}
