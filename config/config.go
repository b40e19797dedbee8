package config

import "image/color"

// Config holds window-level settings
type Config struct {
	Width      int
	Height     int
	Title      string
	ClearColor color.RGBA
}

// SwarmConfig contains population setup and Brownian forcing values
type SwarmConfig struct {
	Count int

	// Initial state ranges (symmetric, sampled uniformly)
	PositionRange        float64 // x, y in [-PositionRange, PositionRange]
	VelocityRange        float64 // vx, vy in [-VelocityRange, VelocityRange]
	AngularVelocityRange float64 // w in [-AngularVelocityRange, AngularVelocityRange]

	// Body attributes
	HalfExtent     float64
	LinearDamping  float64
	AngularDamping float64
	GravityScale   float64

	// Brownian forcing
	ImpulseMagnitude float64 // linear in [-M, M], torque in [-TorqueFactor*M, TorqueFactor*M]
	TorqueFactor     float64
}

// AnchorConfig contains the player anchor movement values
type AnchorConfig struct {
	Speed float64 // units per second
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	DecayRate    float64 // Exponential follow rate (1/s), higher = snappier
	ZoomSpeed    float64 // Scale change per scroll unit per second
	InitialScale float64
	Z            float64 // Constant depth for the 2D projection
}

// PhysicsConfig contains physics engine configuration values
type PhysicsConfig struct {
	Gravity      float64 // Global gravity (y axis), scaled per body
	Iterations   uint    // Solver iterations per step
	Density      float64 // Mass per square unit of collider area
	Friction     float64
	Elasticity   float64
	SpaceDamping float64 // Engine-wide velocity retention per second (1 = none)
}

// VisibilityConfig contains the broad-phase index used for viewport culling
type VisibilityConfig struct {
	Extent   int // Side of the indexed square, centered on the origin
	CellSize int
	Padding  float64 // Extra world units around the view rectangle
}

// LoopConfig contains frame timing configuration
type LoopConfig struct {
	MaxFrameTime float64 // Longest dt a single frame may integrate (seconds)
	TickRate     int     // Headless ticks per second
	Seed         uint64  // Default random seed
}

// HUDConfig contains on-screen overlay configuration
type HUDConfig struct {
	FontSize        float64
	Margin          float64
	ZoomFadeSeconds float32
	TextColor       color.RGBA
}

var C *Config

var Swarm SwarmConfig

var Anchor AnchorConfig

var Camera CameraConfig

var Physics PhysicsConfig

var Visibility VisibilityConfig

var Loop LoopConfig

var HUD HUDConfig

func init() {
	C = &Config{
		Width:      1280,
		Height:     720,
		Title:      "Brownian Swarm",
		ClearColor: color.RGBA{R: 26, G: 26, B: 26, A: 255}, // 0.1 gray
	}

	Swarm = SwarmConfig{
		Count: 50,

		PositionRange:        300.0,
		VelocityRange:        50.0,
		AngularVelocityRange: 5.0,

		HalfExtent:     25.0,
		LinearDamping:  0.5,
		AngularDamping: 0.5,
		GravityScale:   0.0, // Bodies float

		ImpulseMagnitude: 10000.0,
		TorqueFactor:     10.0,
	}

	Anchor = AnchorConfig{
		Speed: 500.0,
	}

	Camera = CameraConfig{
		DecayRate:    8.0,
		ZoomSpeed:    3.0,
		InitialScale: 1.0,
		Z:            0.0,
	}

	Physics = PhysicsConfig{
		Gravity:      -981.0, // Only felt by bodies with a non-zero gravity scale
		Iterations:   10,
		Density:      1.0, // 50x50 box weighs 2500
		Friction:     0.5,
		Elasticity:   0.0,
		SpaceDamping: 1.0,
	}

	Visibility = VisibilityConfig{
		Extent:   16384,
		CellSize: 128,
		Padding:  8.0,
	}

	Loop = LoopConfig{
		MaxFrameTime: 0.25,
		TickRate:     60,
		Seed:         1,
	}

	HUD = HUDConfig{
		FontSize:        14,
		Margin:          10,
		ZoomFadeSeconds: 1.5,
		TextColor:       color.RGBA{R: 230, G: 230, B: 230, A: 255},
	}
}
