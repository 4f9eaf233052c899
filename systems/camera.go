package systems

import (
	"math"

	"github.com/AnubhabL4002/Ignatius-GameDev-scripts/components"
	cfg "github.com/AnubhabL4002/Ignatius-GameDev-scripts/config"
	"github.com/AnubhabL4002/Ignatius-GameDev-scripts/physics"
	"github.com/AnubhabL4002/Ignatius-GameDev-scripts/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi/ecs"
)

// boomThreshold is the pitch above which the boom arm starts shortening.
// Fixed constant, not a tunable.
const boomThreshold = 60.0

// groundClearance is how far the camera is kept above whatever surface
// lies directly beneath it.
const groundClearance = 1.0

// UpdateCamera orbits the follow camera around the player and resolves
// occlusion. Must run after UpdateLocomotion.
func UpdateCamera(e *ecs.ECS) {
	camEntry, ok := tags.Camera.First(e.World)
	if !ok {
		return
	}
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}

	cam := components.OrbitCamera.Get(camEntry)
	input := components.Input.Get(playerEntry)
	body := components.Body.Get(playerEntry)
	space := components.Space.Get(spaceEntry)

	// The orbit pivot sits at the capsule's root.
	pivot := body.Position.Sub(mgl64.Vec3{0, body.Half[1], 0})

	stepCamera(cam, input, pivot, space.Space)
}

// stepCamera integrates mouse deltas into yaw/pitch, derives the boom
// distance from pitch, and resolves the camera position against the level.
func stepCamera(cam *components.OrbitCameraData, in *components.InputData, pivot mgl64.Vec3, caster physics.Caster) {
	cam.Yaw += in.MouseDeltaX * cfg.Camera.MouseSensitivity
	cam.Pitch -= in.MouseDeltaY * cfg.Camera.MouseSensitivity
	cam.Pitch = clamp(cam.Pitch, cfg.Camera.MinVerticalAngle, cfg.Camera.MaxVerticalAngle)

	cam.Distance = boomDistance(cam.Pitch)

	desired := pivot.Add(cam.Orientation().Rotate(mgl64.Vec3{0, cfg.Camera.Height, -cam.Distance}))
	pos := desired

	// Snap to the nearest obstruction between pivot and desired position.
	if hit, ok := caster.CastRay(pivot, desired.Sub(pivot), cam.Distance, cfg.Camera.CollisionMask); ok {
		pos = hit.Point
	}

	// Keep clearance above the surface directly underneath.
	probe := pos.Add(mgl64.Vec3{0, groundClearance, 0})
	if hit, ok := caster.CastRay(probe, mgl64.Vec3{0, -1, 0}, math.Inf(1), cfg.Camera.CollisionMask); ok {
		if pos[1] < hit.Point[1]+groundClearance {
			pos[1] = hit.Point[1] + groundClearance
		}
	}

	// A non-finite result keeps the previous frame's position.
	if finite(pos) {
		cam.Position = pos
	}

	cam.LookTarget = pivot.Add(mgl64.Vec3{0, cfg.Camera.Height, 0})
}

// boomDistance maps pitch to boom arm length: full length at or below the
// threshold, shrinking linearly to MinDistance at the upper pitch clamp.
func boomDistance(pitch float64) float64 {
	span := cfg.Camera.MaxVerticalAngle - boomThreshold
	if span <= 0 {
		return cfg.Camera.MaxDistance
	}
	t := clamp((pitch-boomThreshold)/span, 0, 1)
	return cfg.Camera.MaxDistance + (cfg.Camera.MinDistance-cfg.Camera.MaxDistance)*t
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func finite(v mgl64.Vec3) bool {
	for i := 0; i < 3; i++ {
		if math.IsNaN(v[i]) || math.IsInf(v[i], 0) {
			return false
		}
	}
	return true
}
