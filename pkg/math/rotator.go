package math

import "math"

// Rotator is an orientation as Euler angles in degrees.
// Yaw turns about +Z, Pitch raises the nose toward +Z, Roll turns about the forward axis.
type Rotator struct {
	Pitch, Yaw, Roll float32
}

// RotatorFromVector returns the rotator whose forward vector points along dir.
// Roll is always zero. A zero vector yields a zero rotator.
func RotatorFromVector(dir Vec3) Rotator {
	yaw := math.Atan2(float64(dir.Y), float64(dir.X))
	horiz := math.Sqrt(float64(dir.X*dir.X + dir.Y*dir.Y))
	pitch := math.Atan2(float64(dir.Z), horiz)
	return Rotator{
		Pitch: float32(pitch * 180 / math.Pi),
		Yaw:   float32(yaw * 180 / math.Pi),
	}
}

// Vector returns the forward unit vector.
func (r Rotator) Vector() Vec3 {
	sp, cp := sinCos(r.Pitch)
	sy, cy := sinCos(r.Yaw)
	return Vec3{cp * cy, cp * sy, sp}
}

// RotateVector rotates v from the rotator's local frame into world space.
func (r Rotator) RotateVector(v Vec3) Vec3 {
	x, y, z := r.axes()
	return x.Scale(v.X).Add(y.Scale(v.Y)).Add(z.Scale(v.Z))
}

// axes returns the rotated forward, right and up axes.
func (r Rotator) axes() (x, y, z Vec3) {
	sp, cp := sinCos(r.Pitch)
	sy, cy := sinCos(r.Yaw)
	sr, cr := sinCos(r.Roll)

	x = Vec3{cp * cy, cp * sy, sp}
	y = Vec3{sr*sp*cy - cr*sy, sr*sp*sy + cr*cy, -sr * cp}
	z = Vec3{-(cr*sp*cy + sr*sy), cy*sr - cr*sp*sy, cr * cp}
	return x, y, z
}

func sinCos(deg float32) (float32, float32) {
	s, c := math.Sincos(float64(deg) * math.Pi / 180)
	return float32(s), float32(c)
}
