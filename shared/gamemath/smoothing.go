package gamemath

import "math"

// NudgeFactor is the fraction of the remaining distance covered in dt when decaying
// exponentially at decayRate. Always in [0, 1) for decayRate, dt >= 0.
func NudgeFactor(decayRate, dt float64) float64 {
	return 1 - math.Exp(-decayRate*dt)
}

// SmoothNudge moves current toward target by NudgeFactor(decayRate, dt).
// Splitting an interval into more steps lands on the same value.
func SmoothNudge(current, target, decayRate, dt float64) float64 {
	return current + (target-current)*NudgeFactor(decayRate, dt)
}
