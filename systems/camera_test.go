package systems

import (
	"math"
	"testing"

	"github.com/AnubhabL4002/Ignatius-GameDev-scripts/components"
	cfg "github.com/AnubhabL4002/Ignatius-GameDev-scripts/config"
	"github.com/AnubhabL4002/Ignatius-GameDev-scripts/physics"
	"github.com/go-gl/mathgl/mgl64"
)

// mockCaster returns scripted hits in call order.
type mockCaster struct {
	hits  []*physics.Hit
	calls int
}

func (c *mockCaster) CastRay(origin, dir mgl64.Vec3, maxDist float64, mask uint32) (physics.Hit, bool) {
	i := c.calls
	c.calls++
	if i >= len(c.hits) || c.hits[i] == nil {
		return physics.Hit{}, false
	}
	return *c.hits[i], true
}

func noHits() *mockCaster { return &mockCaster{} }

func mouseInput(dx, dy float64) *components.InputData {
	return &components.InputData{MouseDeltaX: dx, MouseDeltaY: dy}
}

func TestStepCameraPitchClamp(t *testing.T) {
	tests := []struct {
		name    string
		start   float64
		mouseY  float64
		wantMin bool
		wantMax bool
	}{
		{name: "large downward drag hits upper clamp", start: 0, mouseY: -100000, wantMax: true},
		{name: "large upward drag hits lower clamp", start: 0, mouseY: 100000, wantMin: true},
		{name: "small drag stays inside", start: 10, mouseY: -4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := &components.OrbitCameraData{Pitch: tt.start}
			stepCamera(cam, mouseInput(0, tt.mouseY), mgl64.Vec3{}, noHits())

			if cam.Pitch < cfg.Camera.MinVerticalAngle || cam.Pitch > cfg.Camera.MaxVerticalAngle {
				t.Fatalf("pitch %v outside [%v, %v]", cam.Pitch, cfg.Camera.MinVerticalAngle, cfg.Camera.MaxVerticalAngle)
			}
			if tt.wantMax && cam.Pitch != cfg.Camera.MaxVerticalAngle {
				t.Errorf("pitch = %v, want clamp at %v", cam.Pitch, cfg.Camera.MaxVerticalAngle)
			}
			if tt.wantMin && cam.Pitch != cfg.Camera.MinVerticalAngle {
				t.Errorf("pitch = %v, want clamp at %v", cam.Pitch, cfg.Camera.MinVerticalAngle)
			}
		})
	}
}

func TestStepCameraYawUnbounded(t *testing.T) {
	cam := &components.OrbitCameraData{}
	for i := 0; i < 10; i++ {
		stepCamera(cam, mouseInput(720/cfg.Camera.MouseSensitivity/10, 0), mgl64.Vec3{}, noHits())
	}
	if math.Abs(cam.Yaw-720) > 1e-9 {
		t.Errorf("yaw = %v, want 720 (no wrapping)", cam.Yaw)
	}
}

func TestBoomDistance(t *testing.T) {
	tests := []struct {
		name  string
		pitch float64
		want  float64
	}{
		{name: "below threshold", pitch: 0, want: cfg.Camera.MaxDistance},
		{name: "negative pitch", pitch: cfg.Camera.MinVerticalAngle, want: cfg.Camera.MaxDistance},
		{name: "at threshold", pitch: 60, want: cfg.Camera.MaxDistance},
		{name: "at upper clamp", pitch: cfg.Camera.MaxVerticalAngle, want: cfg.Camera.MinDistance},
		{
			name:  "midpoint",
			pitch: (60 + cfg.Camera.MaxVerticalAngle) / 2,
			want:  (cfg.Camera.MaxDistance + cfg.Camera.MinDistance) / 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := boomDistance(tt.pitch)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("boomDistance(%v) = %v, want %v", tt.pitch, got, tt.want)
			}
		})
	}
}

func TestBoomDistanceMonotonic(t *testing.T) {
	prev := boomDistance(60)
	for pitch := 60.5; pitch <= cfg.Camera.MaxVerticalAngle; pitch += 0.5 {
		d := boomDistance(pitch)
		if d > prev {
			t.Fatalf("distance increased from %v to %v at pitch %v", prev, d, pitch)
		}
		if d < cfg.Camera.MinDistance || d > cfg.Camera.MaxDistance {
			t.Fatalf("distance %v outside [%v, %v]", d, cfg.Camera.MinDistance, cfg.Camera.MaxDistance)
		}
		prev = d
	}
}

func TestStepCameraOcclusionSnap(t *testing.T) {
	hitPoint := mgl64.Vec3{1, 2, 3}
	caster := &mockCaster{hits: []*physics.Hit{
		{Point: hitPoint, Distance: 1.5},
		nil, // ground probe misses
	}}

	cam := &components.OrbitCameraData{}
	stepCamera(cam, &components.InputData{}, mgl64.Vec3{0, 0, 0}, caster)

	if cam.Position != hitPoint {
		t.Errorf("camera position = %v, want occlusion hit point %v", cam.Position, hitPoint)
	}
}

func TestStepCameraGroundClearance(t *testing.T) {
	// No occlusion; the ground probe finds a surface at y=2 while the
	// desired camera sits lower. The camera must rise to surface + 1.
	pivot := mgl64.Vec3{0, 0, 0}
	caster := &mockCaster{hits: []*physics.Hit{
		nil,
		{Point: mgl64.Vec3{0, 2, 0}, Distance: 0.5},
	}}

	cam := &components.OrbitCameraData{}
	stepCamera(cam, &components.InputData{}, pivot, caster)

	if math.Abs(cam.Position[1]-3) > 1e-9 {
		t.Errorf("camera height = %v, want 3 (surface 2 + clearance 1)", cam.Position[1])
	}
}

func TestStepCameraGroundClearanceNotLowered(t *testing.T) {
	// Surface far below must not pull the camera down.
	caster := &mockCaster{hits: []*physics.Hit{
		nil,
		{Point: mgl64.Vec3{0, -10, 0}, Distance: 12},
	}}

	cam := &components.OrbitCameraData{}
	stepCamera(cam, &components.InputData{}, mgl64.Vec3{0, 0, 0}, caster)

	if cam.Position[1] <= -9 {
		t.Errorf("camera was pulled down to %v", cam.Position[1])
	}
}

func TestStepCameraNaNGuard(t *testing.T) {
	prev := mgl64.Vec3{4, 5, 6}
	caster := &mockCaster{hits: []*physics.Hit{
		{Point: mgl64.Vec3{math.NaN(), 2, 3}},
		nil,
	}}

	cam := &components.OrbitCameraData{Position: prev}
	stepCamera(cam, &components.InputData{}, mgl64.Vec3{0, 0, 0}, caster)

	if cam.Position != prev {
		t.Errorf("camera position = %v, want previous %v retained", cam.Position, prev)
	}

	// The look target still updates on a guarded frame.
	want := mgl64.Vec3{0, cfg.Camera.Height, 0}
	if cam.LookTarget != want {
		t.Errorf("look target = %v, want %v", cam.LookTarget, want)
	}
}

func TestStepCameraDesiredPosition(t *testing.T) {
	// With no obstructions and pitch below threshold, the camera hangs a
	// full boom length behind the pivot at the configured height.
	pivot := mgl64.Vec3{10, 0, 10}

	cam := &components.OrbitCameraData{Yaw: 0, Pitch: 0}
	stepCamera(cam, &components.InputData{}, pivot, noHits())

	want := pivot.Add(mgl64.Vec3{0, cfg.Camera.Height, -cfg.Camera.MaxDistance})
	if cam.Position.Sub(want).Len() > 1e-9 {
		t.Errorf("camera position = %v, want %v", cam.Position, want)
	}
}
