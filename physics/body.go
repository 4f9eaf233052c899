package physics

import "github.com/go-gl/mathgl/mgl64"

// Body is an axis-aligned box in the space. Position is the box center.
type Body struct {
	Position mgl64.Vec3
	Half     mgl64.Vec3 // half extents
	Mask     uint32     // layers this body belongs to
	Data     interface{}
}

// NewBody creates a body centered at pos with the given full size.
func NewBody(pos, size mgl64.Vec3, mask uint32) *Body {
	return &Body{
		Position: pos,
		Half:     size.Mul(0.5),
		Mask:     mask,
	}
}

func (b *Body) Min() mgl64.Vec3 { return b.Position.Sub(b.Half) }
func (b *Body) Max() mgl64.Vec3 { return b.Position.Add(b.Half) }

// overlapsOn reports whether the two bodies overlap on the given axis.
func (b *Body) overlapsOn(o *Body, axis int) bool {
	return b.Position[axis]-b.Half[axis] < o.Position[axis]+o.Half[axis] &&
		b.Position[axis]+b.Half[axis] > o.Position[axis]-o.Half[axis]
}

// Supports reports whether o rests on top of b.
func (b *Body) Supports(o *Body) bool {
	if !b.overlapsOn(o, 0) || !b.overlapsOn(o, 2) {
		return false
	}
	gap := (o.Position[1] - o.Half[1]) - (b.Position[1] + b.Half[1])
	return gap >= -skin && gap <= groundProbe
}
