// Package geom provides the small amount of vector math the room core needs:
// points on the floor plane, 3D positions, poses and a circle-vs-box test.
package geom

import "math"

// Vec2 is a point or offset on the floor plane (X and Z world axes)
type Vec2 struct {
	X float64
	Z float64
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Z: v.Z + o.Z}
}

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Z: v.Z - o.Z}
}

// Scale returns v * s
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Z: v.Z * s}
}

// Len returns the length of v
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Z)
}

// IsZero reports whether both components are zero
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Z == 0
}

// Vec3 is a world-space position. Y is up.
type Vec3 struct {
	X float64
	Y float64
	Z float64
}

// Add returns v + o
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub returns v - o
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Len returns the length of v
func (v Vec3) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// XZ projects v onto the floor plane
func (v Vec3) XZ() Vec2 {
	return Vec2{X: v.X, Z: v.Z}
}

// WithXZ returns v with its floor-plane components replaced
func (v Vec3) WithXZ(p Vec2) Vec3 {
	return Vec3{X: p.X, Y: v.Y, Z: p.Z}
}

// Distance returns the Euclidean distance between a and b
func Distance(a, b Vec3) float64 {
	return a.Sub(b).Len()
}

// Clamp limits value to the range [lo, hi]
func Clamp(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

// Pose is a position, a rotation about the Y axis and a uniform scale
type Pose struct {
	Position Vec3
	Yaw      float64 // radians
	Scale    float64
}

// Rotate turns a local floor-plane offset into world space using the pose yaw.
// Local +Z is "forward", local +X is "right" at yaw 0.
func (p Pose) Rotate(local Vec2) Vec2 {
	sin, cos := math.Sincos(p.Yaw)
	return Vec2{
		X: local.X*cos + local.Z*sin,
		Z: -local.X*sin + local.Z*cos,
	}
}

// Circle is a disc on the floor plane
type Circle struct {
	Center Vec2
	Radius float64
}

// Box is an axis-aligned rectangle on the floor plane.
// Push holds a signed multiplier per axis telling which side of the box a
// displaced circle should end up on; a zero component means "away from the
// box centre".
type Box struct {
	Center Vec2
	Half   Vec2
	Push   Vec2
}

// WithPush returns a copy of b using the given displacement multipliers
func (b Box) WithPush(push Vec2) Box {
	b.Push = push
	return b
}

// Min returns the lower-left corner of the box
func (b Box) Min() Vec2 {
	return b.Center.Sub(b.Half)
}

// Max returns the upper-right corner of the box
func (b Box) Max() Vec2 {
	return b.Center.Add(b.Half)
}

// ClosestPoint returns the point of b nearest to p
func (b Box) ClosestPoint(p Vec2) Vec2 {
	lo, hi := b.Min(), b.Max()
	return Vec2{
		X: Clamp(p.X, lo.X, hi.X),
		Z: Clamp(p.Z, lo.Z, hi.Z),
	}
}

// CircleBoxDisplacement reports whether c overlaps b and, if so, the offset
// that moves c out of b. The offset lies along the box axis with the smaller
// penetration depth only, so a circle entering near a corner is pushed out
// along one axis rather than diagonally.
//
// Contact at exactly the radius is not a collision.
func CircleBoxDisplacement(c Circle, b Box) (Vec2, bool) {
	closest := b.ClosestPoint(c.Center)
	if c.Center.Sub(closest).Len() >= c.Radius {
		return Vec2{}, false
	}

	delta := c.Center.Sub(b.Center)
	penX := b.Half.X + c.Radius - math.Abs(delta.X)
	penZ := b.Half.Z + c.Radius - math.Abs(delta.Z)

	if penX < penZ {
		return Vec2{X: penX * pushSign(b.Push.X, delta.X)}, true
	}
	return Vec2{Z: penZ * pushSign(b.Push.Z, delta.Z)}, true
}

// pushSign picks the direction of a displacement along one axis
func pushSign(multiplier, delta float64) float64 {
	if multiplier != 0 {
		return multiplier
	}
	if delta < 0 {
		return -1
	}
	return 1
}
