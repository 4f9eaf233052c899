package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// LocomotionData is the per-frame motion state of the player capsule.
type LocomotionData struct {
	// Velocity carries the integrated fall/jump speed in Y. The
	// horizontal components stay zero; horizontal movement is applied
	// as a separate displacement each frame.
	Velocity mgl64.Vec3

	// Grounded is re-derived every frame from the mover's contact
	// report; it is stored only so the camera and debug HUD can read it.
	Grounded bool
}

var Locomotion = donburi.NewComponentType[LocomotionData]()
