package systems

import (
	"math"
	"testing"

	"github.com/AnubhabL4002/Ignatius-GameDev-scripts/components"
	cfg "github.com/AnubhabL4002/Ignatius-GameDev-scripts/config"
	"github.com/AnubhabL4002/Ignatius-GameDev-scripts/physics"
	"github.com/go-gl/mathgl/mgl64"
)

// mockMover records every sweep submitted to it.
type mockMover struct {
	grounded bool
	moves    []mgl64.Vec3
}

func (m *mockMover) Move(delta mgl64.Vec3) physics.MoveResult {
	m.moves = append(m.moves, delta)
	return physics.MoveResult{Moved: delta, Grounded: m.grounded}
}

func (m *mockMover) Grounded() bool { return m.grounded }

func jumpInput() *components.InputData {
	in := &components.InputData{}
	in.Current[cfg.ActionJump] = true
	return in
}

func TestStepLocomotionGroundedVelocityClamp(t *testing.T) {
	const dt = 1.0 / 60.0

	tests := []struct {
		name     string
		grounded bool
		startVY  float64
		wantVY   float64
	}{
		{
			name:     "falling velocity clamps to stick value on ground",
			grounded: true,
			startVY:  -25,
			wantVY:   cfg.Player.GroundedStickVelocity + cfg.Player.Gravity*dt,
		},
		{
			name:     "upward velocity on ground is untouched",
			grounded: true,
			startVY:  3,
			wantVY:   3 + cfg.Player.Gravity*dt,
		},
		{
			name:     "airborne velocity keeps integrating",
			grounded: false,
			startVY:  -25,
			wantVY:   -25 + cfg.Player.Gravity*dt,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loco := &components.LocomotionData{Velocity: mgl64.Vec3{0, tt.startVY, 0}}
			mover := &mockMover{grounded: tt.grounded}

			stepLocomotion(loco, &components.InputData{}, &components.OrbitCameraData{}, dt, mover)

			if math.Abs(loco.Velocity[1]-tt.wantVY) > 1e-12 {
				t.Errorf("velocity.y = %v, want %v", loco.Velocity[1], tt.wantVY)
			}
		})
	}
}

func TestStepLocomotionJumpImpulse(t *testing.T) {
	const dt = 1.0 / 60.0

	loco := &components.LocomotionData{}
	mover := &mockMover{grounded: true}

	stepLocomotion(loco, jumpInput(), &components.OrbitCameraData{}, dt, mover)

	// jumpForce=5, gravity=-9.81 gives an impulse of sqrt(98.1) ~= 9.905,
	// minus one frame of gravity already integrated.
	want := math.Sqrt(cfg.Player.JumpForce*-2*cfg.Player.Gravity) + cfg.Player.Gravity*dt
	if math.Abs(loco.Velocity[1]-want) > 1e-12 {
		t.Errorf("velocity.y after jump = %v, want %v", loco.Velocity[1], want)
	}
}

func TestStepLocomotionNoJumpInAir(t *testing.T) {
	loco := &components.LocomotionData{Velocity: mgl64.Vec3{0, -1, 0}}
	mover := &mockMover{grounded: false}

	stepLocomotion(loco, jumpInput(), &components.OrbitCameraData{}, 1.0/60.0, mover)

	if loco.Velocity[1] > 0 {
		t.Errorf("airborne jump applied an impulse: velocity.y = %v", loco.Velocity[1])
	}
}

func TestStepLocomotionTwoSweeps(t *testing.T) {
	loco := &components.LocomotionData{Velocity: mgl64.Vec3{0, -4, 0}}
	in := &components.InputData{Horizontal: 1, Vertical: 1}
	mover := &mockMover{grounded: false}

	stepLocomotion(loco, in, &components.OrbitCameraData{}, 1.0/60.0, mover)

	if len(mover.moves) != 2 {
		t.Fatalf("got %d sweeps, want 2", len(mover.moves))
	}
	if mover.moves[0][1] != 0 {
		t.Errorf("horizontal sweep has vertical component %v", mover.moves[0][1])
	}
	if mover.moves[1][0] != 0 || mover.moves[1][2] != 0 {
		t.Errorf("velocity sweep has horizontal components %v", mover.moves[1])
	}
}

func TestStepLocomotionDisplacement(t *testing.T) {
	// horizontal=1, dt=0.1, moveSpeed=5 must displace 0.5 along camera right.
	const dt = 0.1

	loco := &components.LocomotionData{}
	in := &components.InputData{Horizontal: 1}
	cam := &components.OrbitCameraData{Yaw: 0, Pitch: 0}
	mover := &mockMover{grounded: true}

	stepLocomotion(loco, in, cam, dt, mover)

	move := mover.moves[0]
	if math.Abs(move.Len()-0.5) > 1e-9 {
		t.Errorf("horizontal displacement magnitude = %v, want 0.5", move.Len())
	}
	right := cam.Right().Mul(0.5)
	if move.Sub(right).Len() > 1e-9 {
		t.Errorf("displacement %v not along camera right %v", move, right)
	}
}

func TestStepLocomotionDiagonalNotNormalized(t *testing.T) {
	const dt = 0.1

	loco := &components.LocomotionData{}
	in := &components.InputData{Horizontal: 1, Vertical: 1}
	mover := &mockMover{grounded: true}

	stepLocomotion(loco, in, &components.OrbitCameraData{}, dt, mover)

	// Diagonal input covers sqrt(2) times the axis-aligned distance.
	want := math.Sqrt2 * cfg.Player.MoveSpeed * dt
	if math.Abs(mover.moves[0].Len()-want) > 1e-9 {
		t.Errorf("diagonal displacement = %v, want %v", mover.moves[0].Len(), want)
	}
}

func TestStepLocomotionPitchSlowsForward(t *testing.T) {
	const dt = 0.1

	loco := &components.LocomotionData{}
	in := &components.InputData{Vertical: 1}
	cam := &components.OrbitCameraData{Pitch: 60}
	mover := &mockMover{grounded: true}

	stepLocomotion(loco, in, cam, dt, mover)

	// The projected forward basis is not renormalized, so forward input
	// under a 60 degree pitch covers cos(60) = half the level-camera
	// distance: 5 * 0.1 * 0.5 = 0.25.
	want := cfg.Player.MoveSpeed * dt * math.Cos(mgl64.DegToRad(60))
	if math.Abs(mover.moves[0].Len()-want) > 1e-9 {
		t.Errorf("forward displacement at pitch 60 = %v, want %v", mover.moves[0].Len(), want)
	}
}

func TestStepLocomotionCameraRelative(t *testing.T) {
	const dt = 0.1

	loco := &components.LocomotionData{}
	in := &components.InputData{Vertical: 1}
	cam := &components.OrbitCameraData{Yaw: 90}
	mover := &mockMover{grounded: true}

	stepLocomotion(loco, in, cam, dt, mover)

	want := cam.Forward().Mul(cfg.Player.MoveSpeed * dt)
	if mover.moves[0].Sub(want).Len() > 1e-9 {
		t.Errorf("move %v does not follow camera forward %v", mover.moves[0], want)
	}
	if math.Abs(mover.moves[0][1]) > 1e-12 {
		t.Errorf("move has vertical component %v", mover.moves[0][1])
	}
}
