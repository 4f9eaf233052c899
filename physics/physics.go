// Package physics provides a minimal 3D collision space for the character
// controller: axis-aligned boxes, swept moves with contact reporting, and
// nearest-hit raycasts. Capsules are approximated by their bounding box.
package physics

import "github.com/go-gl/mathgl/mgl64"

// Hit describes the nearest intersection of a ray with the space.
type Hit struct {
	Point    mgl64.Vec3
	Normal   mgl64.Vec3
	Distance float64
	Body     *Body
}

// MoveResult reports the outcome of a swept move.
type MoveResult struct {
	Moved    mgl64.Vec3 // displacement actually applied after resolution
	Grounded bool       // the move ended resting on a surface below
}

// Mover performs swept moves of a collision volume and reports contact state.
// The controller consumes this instead of talking to a Space directly so that
// tests can substitute deterministic doubles.
type Mover interface {
	Move(delta mgl64.Vec3) MoveResult
	Grounded() bool
}

// Caster resolves rays against collision geometry filtered by a layer mask.
type Caster interface {
	CastRay(origin, dir mgl64.Vec3, maxDist float64, mask uint32) (Hit, bool)
}
