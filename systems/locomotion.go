package systems

import (
	"math"

	"github.com/AnubhabL4002/Ignatius-GameDev-scripts/components"
	cfg "github.com/AnubhabL4002/Ignatius-GameDev-scripts/config"
	"github.com/AnubhabL4002/Ignatius-GameDev-scripts/physics"
	"github.com/AnubhabL4002/Ignatius-GameDev-scripts/tags"
	"github.com/yohamta/donburi/ecs"
)

// Delta is the fixed simulation step. Ebiten ticks at 60 TPS.
const Delta = 1.0 / 60.0

// UpdateLocomotion advances the player capsule one frame. Must run after
// UpdateInput and before UpdateCamera.
func UpdateLocomotion(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	camEntry, ok := tags.Camera.First(e.World)
	if !ok {
		return
	}
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}

	input := components.Input.Get(playerEntry)
	loco := components.Locomotion.Get(playerEntry)
	body := components.Body.Get(playerEntry)
	cam := components.OrbitCamera.Get(camEntry)
	space := components.Space.Get(spaceEntry)

	mover := &physics.CharacterMover{
		Space: space.Space,
		Body:  body.Body,
		Mask:  tags.MaskAll,
	}
	stepLocomotion(loco, input, cam, Delta, mover)
}

// stepLocomotion applies one frame of movement: ground snap, camera-relative
// horizontal displacement, jump impulse, gravity integration. The horizontal
// move and the integrated velocity are submitted to the mover as two separate
// sweeps, so their collision responses resolve independently.
func stepLocomotion(loco *components.LocomotionData, in *components.InputData, cam *components.OrbitCameraData, dt float64, mover physics.Mover) {
	grounded := mover.Grounded()

	if grounded && loco.Velocity[1] < 0 {
		// Keep the capsule pressed against the floor instead of zeroing
		// out, so the contact test stays stable between frames.
		loco.Velocity[1] = cfg.Player.GroundedStickVelocity
	}

	// Not renormalized: diagonal input moves faster than axis-aligned.
	move := cam.Forward().Mul(in.Vertical).Add(cam.Right().Mul(in.Horizontal))
	move[1] = 0

	if in.Action(cfg.ActionJump).JustPressed && grounded {
		loco.Velocity[1] = math.Sqrt(cfg.Player.JumpForce * -2 * cfg.Player.Gravity)
	}

	loco.Velocity[1] += cfg.Player.Gravity * dt

	mover.Move(move.Mul(cfg.Player.MoveSpeed * dt))
	res := mover.Move(loco.Velocity.Mul(dt))
	loco.Grounded = res.Grounded
}
