// Package geom provides the vectors, bounding boxes, and yaw transforms
// used by the growth engine. The world is Z-up; structures grow along
// axis-aligned horizontal and vertical directions, so orientation is a
// single yaw angle about Z.
package geom

import "math"

// Vec3 is a point or direction in world space.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Scale returns v * s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Neg returns -v.
func (v Vec3) Neg() Vec3 {
	return Vec3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Dot returns the dot product of a and b.
func Dot(a, b Vec3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Length returns the euclidean length of v.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalized returns v scaled to unit length, or the zero vector if v is
// degenerate.
func (v Vec3) Normalized() Vec3 {
	l := v.Length()
	if l < 1e-9 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// verticalCos is the |Z| component above which a unit direction is treated
// as vertical: horizontal yaw is undefined for such directions.
const verticalCos = 0.99

// IsVertical reports whether a unit direction points (near-)straight up
// or down.
func IsVertical(dir Vec3) bool {
	return math.Abs(dir.Z) > verticalCos
}

// Yaw returns the horizontal heading of dir in radians. Callers must
// handle vertical directions themselves (see IsVertical).
func Yaw(dir Vec3) float64 {
	return math.Atan2(dir.Y, dir.X)
}

// RotateYaw rotates v about the Z axis by yaw radians.
func RotateYaw(v Vec3, yaw float64) Vec3 {
	sin, cos := math.Sincos(yaw)
	return Vec3{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
		Z: v.Z,
	}
}

// SnapYawCardinal rounds yaw to the nearest multiple of 90 degrees.
func SnapYawCardinal(yaw float64) float64 {
	quarter := math.Pi / 2
	return math.Round(yaw/quarter) * quarter
}

// NormalizeYaw wraps yaw into (-pi, pi].
func NormalizeYaw(yaw float64) float64 {
	for yaw > math.Pi {
		yaw -= 2 * math.Pi
	}
	for yaw <= -math.Pi {
		yaw += 2 * math.Pi
	}
	return yaw
}
