package config

import "github.com/AnubhabL4002/Ignatius-GameDev-scripts/tags"

// Config contains global application settings
type Config struct {
	Width  int
	Height int
	Title  string
}

// PlayerConfig contains all locomotion tuning values
type PlayerConfig struct {
	MoveSpeed float64 // Units per second of horizontal movement
	JumpForce float64 // Desired jump height in units
	Gravity   float64 // Units per second squared, negative is down

	// Grounded vertical velocity is clamped to this instead of zero so
	// the capsule stays pressed against the floor between frames.
	GroundedStickVelocity float64

	// Capsule dimensions
	Height float64
	Radius float64
}

// CameraConfig contains all orbit camera tuning values
type CameraConfig struct {
	MouseSensitivity float64 // Degrees of rotation per unit of mouse delta

	MinDistance float64 // Boom arm length when looking steeply down
	MaxDistance float64 // Boom arm length at shallow pitch
	Height      float64 // Vertical offset of the boom above the pivot

	MinVerticalAngle float64 // Degrees, lower pitch clamp
	MaxVerticalAngle float64 // Degrees, upper pitch clamp

	InvertY bool // Flip vertical mouse look

	CollisionMask uint32 // Layers the occlusion and clearance rays test
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu bool // Skip menu and go directly to the world scene
}

var C *Config
var Player PlayerConfig
var Camera CameraConfig
var Debug DebugConfig

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		Title:  "Ignatius",
	}

	Player = PlayerConfig{
		MoveSpeed:             5.0,
		JumpForce:             5.0,
		Gravity:               -9.81,
		GroundedStickVelocity: -2.0,
		Height:                1.8,
		Radius:                0.35,
	}

	Camera = CameraConfig{
		MouseSensitivity: 0.25,
		MinDistance:      2.0,
		MaxDistance:      5.0,
		Height:           1.8,
		MinVerticalAngle: -20.0,
		MaxVerticalAngle: 80.0,
		CollisionMask:    tags.MaskSolid | tags.MaskGround,
	}

	Debug = DebugConfig{
		SkipMenu: false,
	}
}
