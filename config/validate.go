package config

import (
	"errors"
	"fmt"
	"math"
)

// Validate checks the build-time constants for values the simulation cannot run with.
// A non-nil result is a programming error, not something to recover from at runtime.
func Validate() error {
	var errs []error

	nonNegative := func(name string, v float64) {
		if v < 0 || math.IsNaN(v) {
			errs = append(errs, fmt.Errorf("%s must be >= 0, got %v", name, v))
		}
	}
	positive := func(name string, v float64) {
		if !(v > 0) {
			errs = append(errs, fmt.Errorf("%s must be > 0, got %v", name, v))
		}
	}

	if Swarm.Count < 0 {
		errs = append(errs, fmt.Errorf("swarm count must be >= 0, got %d", Swarm.Count))
	}
	nonNegative("swarm position range", Swarm.PositionRange)
	nonNegative("swarm velocity range", Swarm.VelocityRange)
	nonNegative("swarm angular velocity range", Swarm.AngularVelocityRange)
	positive("body half extent", Swarm.HalfExtent)
	nonNegative("linear damping", Swarm.LinearDamping)
	nonNegative("angular damping", Swarm.AngularDamping)
	nonNegative("impulse magnitude", Swarm.ImpulseMagnitude)
	nonNegative("torque factor", Swarm.TorqueFactor)

	nonNegative("anchor speed", Anchor.Speed)

	nonNegative("camera decay rate", Camera.DecayRate)
	if math.IsNaN(Camera.ZoomSpeed) || math.IsInf(Camera.ZoomSpeed, 0) {
		errs = append(errs, fmt.Errorf("camera zoom speed must be finite, got %v", Camera.ZoomSpeed))
	}

	positive("physics density", Physics.Density)
	if Physics.Iterations == 0 {
		errs = append(errs, errors.New("physics iterations must be > 0"))
	}
	nonNegative("physics friction", Physics.Friction)
	nonNegative("physics elasticity", Physics.Elasticity)
	if Physics.SpaceDamping <= 0 || Physics.SpaceDamping > 1 {
		errs = append(errs, fmt.Errorf("physics space damping must be in (0, 1], got %v", Physics.SpaceDamping))
	}

	if Visibility.CellSize <= 0 || Visibility.Extent < Visibility.CellSize {
		errs = append(errs, fmt.Errorf("visibility index needs 0 < cell size <= extent, got %d/%d",
			Visibility.CellSize, Visibility.Extent))
	}

	positive("max frame time", Loop.MaxFrameTime)

	return errors.Join(errs...)
}
