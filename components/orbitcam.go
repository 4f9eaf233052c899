package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// OrbitCameraData holds the orbit state of the follow camera.
type OrbitCameraData struct {
	Yaw   float64 // Degrees around the world Y axis, unbounded
	Pitch float64 // Degrees, clamped to the configured vertical range

	// Distance is re-derived from pitch each frame; kept for the HUD
	// and for the occlusion ray length.
	Distance float64

	// Position is the last committed camera position. It survives a
	// frame whose computed position came out non-finite.
	Position mgl64.Vec3

	// LookTarget is the point the camera orients toward, updated
	// unconditionally every frame.
	LookTarget mgl64.Vec3
}

var OrbitCamera = donburi.NewComponentType[OrbitCameraData]()

// Orientation returns the pivot rotation encoding yaw then pitch.
func (c *OrbitCameraData) Orientation() mgl64.Quat {
	yaw := mgl64.QuatRotate(mgl64.DegToRad(c.Yaw), mgl64.Vec3{0, 1, 0})
	pitch := mgl64.QuatRotate(mgl64.DegToRad(c.Pitch), mgl64.Vec3{1, 0, 0})
	return yaw.Mul(pitch)
}

// Forward returns the pivot's forward direction projected onto the
// ground plane. Not renormalized: when the camera pitches, the vector
// shortens by cos(pitch) and movement slows with it.
func (c *OrbitCameraData) Forward() mgl64.Vec3 {
	f := c.Orientation().Rotate(mgl64.Vec3{0, 0, 1})
	f[1] = 0
	return f
}

// Right returns the pivot's right direction projected onto the ground
// plane. Pitch rotates around this axis, so its length stays 1.
func (c *OrbitCameraData) Right() mgl64.Vec3 {
	r := c.Orientation().Rotate(mgl64.Vec3{1, 0, 0})
	r[1] = 0
	return r
}
