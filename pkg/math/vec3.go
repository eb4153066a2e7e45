// Package math provides vector and rotation types for pawn movement input.
//
// The coordinate frame is Z-up with X forward and Y right.
package math

import "math"

// smallNumber is the squared-length threshold below which a vector has no
// usable direction.
const smallNumber = 1e-8

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float32
}

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns v * scalar.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product.
func (v Vec3) Dot(other Vec3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// Length returns the magnitude.
func (v Vec3) Length() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y + v.Z*v.Z)))
}

// Normalize returns a unit vector.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}

// IsZero reports whether every component is exactly zero.
func (v Vec3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// SafeNormal returns a unit vector, or zero if v is too short to have a direction.
func (v Vec3) SafeNormal() Vec3 {
	sq := v.X*v.X + v.Y*v.Y + v.Z*v.Z
	if sq < smallNumber {
		return Vec3{}
	}
	return v.Scale(1 / float32(math.Sqrt(float64(sq))))
}

// SafeNormal2D drops Z and normalizes in the XY plane.
// Returns zero if the horizontal part is degenerate.
func (v Vec3) SafeNormal2D() Vec3 {
	sq := v.X*v.X + v.Y*v.Y
	if sq < smallNumber {
		return Vec3{}
	}
	inv := 1 / float32(math.Sqrt(float64(sq)))
	return Vec3{v.X * inv, v.Y * inv, 0}
}

// ProjectOnPlane removes the component of v along normal.
// normal should be unit length.
func (v Vec3) ProjectOnPlane(normal Vec3) Vec3 {
	return v.Sub(normal.Scale(v.Dot(normal)))
}

// Clamp clamps each component into [lo, hi].
func (v Vec3) Clamp(lo, hi float32) Vec3 {
	return Vec3{clamp(v.X, lo, hi), clamp(v.Y, lo, hi), clamp(v.Z, lo, hi)}
}

func clamp(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
