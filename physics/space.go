package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// skin keeps resolved bodies a hair apart so repeated sweeps don't
// re-detect the surface they already rest against.
const skin = 1e-3

// groundProbe is how far below a body a surface may be and still count
// as supporting it.
const groundProbe = 0.1

// Space holds all collision bodies of a level.
type Space struct {
	bodies []*Body
}

func NewSpace() *Space {
	return &Space{}
}

func (s *Space) Add(bodies ...*Body) {
	s.bodies = append(s.bodies, bodies...)
}

func (s *Space) Remove(b *Body) {
	for i, o := range s.bodies {
		if o == b {
			s.bodies = append(s.bodies[:i], s.bodies[i+1:]...)
			return
		}
	}
}

// Move sweeps b through the space by delta, resolving each axis
// independently against bodies matching mask. It mutates b.Position and
// reports the applied displacement and ground contact.
func (s *Space) Move(b *Body, delta mgl64.Vec3, mask uint32) MoveResult {
	var res MoveResult

	// Horizontal axes first, then vertical, so walking into a wall while
	// falling still lands cleanly.
	for _, axis := range [3]int{0, 2, 1} {
		d := delta[axis]
		if d == 0 {
			continue
		}
		moved, blocked := s.sweepAxis(b, axis, d, mask)
		b.Position[axis] += moved
		res.Moved[axis] = moved
		if axis == 1 && d < 0 && blocked {
			res.Grounded = true
		}
	}

	if !res.Grounded && delta[1] <= 0 {
		res.Grounded = s.Grounded(b, mask)
	}
	return res
}

// sweepAxis finds how far b can travel along one axis before touching a
// body it collides with, returning the clamped travel and whether it was
// cut short.
func (s *Space) sweepAxis(b *Body, axis int, d float64, mask uint32) (float64, bool) {
	allowed := d
	blocked := false

	a1 := (axis + 1) % 3
	a2 := (axis + 2) % 3

	for _, o := range s.bodies {
		if o == b || o.Mask&mask == 0 {
			continue
		}
		if !b.overlapsOn(o, a1) || !b.overlapsOn(o, a2) {
			continue
		}

		var gap float64
		if d > 0 {
			gap = (o.Position[axis] - o.Half[axis]) - (b.Position[axis] + b.Half[axis]) - skin
			if gap < allowed && gap > -b.Half[axis] {
				allowed = math.Max(gap, 0)
				blocked = true
			}
		} else {
			gap = (o.Position[axis] + o.Half[axis]) - (b.Position[axis] - b.Half[axis]) + skin
			if gap > allowed && gap < b.Half[axis] {
				allowed = math.Min(gap, 0)
				blocked = true
			}
		}
	}
	return allowed, blocked
}

// Grounded probes a short distance below b for a supporting surface.
func (s *Space) Grounded(b *Body, mask uint32) bool {
	bottom := b.Position[1] - b.Half[1]
	for _, o := range s.bodies {
		if o == b || o.Mask&mask == 0 {
			continue
		}
		if !b.overlapsOn(o, 0) || !b.overlapsOn(o, 2) {
			continue
		}
		top := o.Position[1] + o.Half[1]
		if bottom-top >= -skin && bottom-top <= groundProbe {
			return true
		}
	}
	return false
}

// CastRay returns the nearest intersection of the ray with any body
// matching mask, within maxDist. dir need not be normalized.
func (s *Space) CastRay(origin, dir mgl64.Vec3, maxDist float64, mask uint32) (Hit, bool) {
	if l := dir.Len(); l > 0 {
		dir = dir.Mul(1 / l)
	} else {
		return Hit{}, false
	}

	best := Hit{Distance: math.Inf(1)}
	found := false

	for _, o := range s.bodies {
		if o.Mask&mask == 0 {
			continue
		}
		t, normal, ok := rayBox(origin, dir, o)
		if !ok || t > maxDist || t >= best.Distance {
			continue
		}
		best = Hit{
			Point:    origin.Add(dir.Mul(t)),
			Normal:   normal,
			Distance: t,
			Body:     o,
		}
		found = true
	}
	return best, found
}

// rayBox is the slab test against a single body. Returns the entry
// distance along dir and the surface normal at entry.
func rayBox(origin, dir mgl64.Vec3, b *Body) (float64, mgl64.Vec3, bool) {
	tmin := math.Inf(-1)
	tmax := math.Inf(1)
	minAxis := -1
	lo, hi := b.Min(), b.Max()

	for axis := 0; axis < 3; axis++ {
		if dir[axis] == 0 {
			if origin[axis] < lo[axis] || origin[axis] > hi[axis] {
				return 0, mgl64.Vec3{}, false
			}
			continue
		}
		t1 := (lo[axis] - origin[axis]) / dir[axis]
		t2 := (hi[axis] - origin[axis]) / dir[axis]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
			minAxis = axis
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return 0, mgl64.Vec3{}, false
		}
	}

	// A ray starting on a face and leaving the box (tmax == 0) is a miss,
	// so casts from a surface point don't hit their own support.
	if tmax <= 0 {
		return 0, mgl64.Vec3{}, false
	}
	t := tmin
	if t < 0 {
		// Origin inside the box: surface at exit, but for occlusion
		// purposes treat it as an immediate hit.
		t = 0
	}

	var normal mgl64.Vec3
	if minAxis >= 0 {
		if dir[minAxis] > 0 {
			normal[minAxis] = -1
		} else {
			normal[minAxis] = 1
		}
	}
	return t, normal, true
}

// CharacterMover binds a body to the space it moves in, with the layer
// mask it collides against. It satisfies Mover.
type CharacterMover struct {
	Space *Space
	Body  *Body
	Mask  uint32
}

func (m *CharacterMover) Move(delta mgl64.Vec3) MoveResult {
	return m.Space.Move(m.Body, delta, m.Mask)
}

func (m *CharacterMover) Grounded() bool {
	return m.Space.Grounded(m.Body, m.Mask)
}
