// Package geom holds the small vector/shape primitives shared by the
// physics stub, navmesh, sensors, and strategies. Kept separate from
// internal/world so those packages can depend on geometry without importing
// the full match-state graph.
package geom

import "math"

// Vec3 is a point or direction in arena space. Y is the vertical axis.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(k float64) Vec3 {
	return Vec3{v.X * k, v.Y * k, v.Z * k}
}

func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

func (v Vec3) LengthSquared() float64 { return v.Dot(v) }

func (v Vec3) Length() float64 { return math.Sqrt(v.LengthSquared()) }

// Normalized returns a unit-length vector, or the zero vector if v is ~zero.
func (v Vec3) Normalized() Vec3 {
	l := v.Length()
	if l < 1e-9 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// XZDistance returns the horizontal (ground-plane) distance between two
// points, ignoring the vertical axis. Used by throw-vector and pathing math
// where gravity only acts on Y.
func XZDistance(a, b Vec3) float64 {
	dx := b.X - a.X
	dz := b.Z - a.Z
	return math.Sqrt(dx*dx + dz*dz)
}

// Distance is full 3D Euclidean distance.
func Distance(a, b Vec3) float64 {
	return a.Sub(b).Length()
}

// YawTo returns the rotation about the vertical axis that faces `to` from
// `from`, in radians.
func YawTo(from, to Vec3) float64 {
	d := to.Sub(from)
	return math.Atan2(d.X, d.Z)
}

// Cuboid is an axis-local box extending `forward` ahead of an origin,
// `halfWidth` to either side, and `halfHeight` up/down — the field-of-view
// sensor's detection volume.
type Cuboid struct {
	Forward    float64
	HalfWidth  float64
	HalfHeight float64
}

// Contains reports whether a point expressed in the cuboid owner's local
// frame (origin at the owner, +Z forward) falls inside the box.
func (c Cuboid) Contains(localPoint Vec3) bool {
	if localPoint.Z < 0 || localPoint.Z > c.Forward {
		return false
	}
	if math.Abs(localPoint.X) > c.HalfWidth {
		return false
	}
	if math.Abs(localPoint.Y) > c.HalfHeight {
		return false
	}
	return true
}

// Cylinder is the proximity sensor's detection volume, centred on the owner.
type Cylinder struct {
	Radius     float64
	HalfHeight float64
}

func (c Cylinder) Contains(center, point Vec3) bool {
	if math.Abs(point.Y-center.Y) > c.HalfHeight {
		return false
	}
	return XZDistance(center, point) <= c.Radius
}

// WorldToLocal transforms a world point into the local frame of an observer
// standing at origin facing yaw radians about Y, +Z forward.
func WorldToLocal(origin Vec3, yaw float64, p Vec3) Vec3 {
	d := p.Sub(origin)
	sin, cos := math.Sincos(yaw)
	// Inverse rotation about Y.
	localX := cos*d.X - sin*d.Z
	localZ := sin*d.X + cos*d.Z
	return Vec3{X: localX, Y: d.Y, Z: localZ}
}
