package mat

import (
	"github.com/cwbudde/algo-geom/trig"
	"github.com/cwbudde/algo-geom/vec"
)

// Rotation returns the rotation by angle radians about axis (Rodrigues).
// axis need not be unit length; a zero axis yields NaNs.
func Rotation[T vec.Float](angle T, axis vec.Vec3[T]) Mat4[T] {
	return rotation3(angle, vec.Normalize(axis)).Mat4()
}

func rotation3[T vec.Float](angle T, n vec.Vec3[T]) Mat3[T] {
	s, c := trig.SinCos(angle)
	t := 1 - c
	x, y, z := n[0], n[1], n[2]
	return Mat3[T]{
		{t*x*x + c, t*x*y + s*z, t*x*z - s*y},
		{t*x*y - s*z, t*y*y + c, t*y*z + s*x},
		{t*x*z + s*y, t*y*z - s*x, t*z*z + c},
	}
}

// RotationX rotates about +X.
func RotationX[T vec.Float](angle T) Mat4[T] {
	s, c := trig.SinCos(angle)
	return Mat4[T]{{1, 0, 0, 0}, {0, c, s, 0}, {0, -s, c, 0}, {0, 0, 0, 1}}
}

// RotationY rotates about +Y.
func RotationY[T vec.Float](angle T) Mat4[T] {
	s, c := trig.SinCos(angle)
	return Mat4[T]{{c, 0, -s, 0}, {0, 1, 0, 0}, {s, 0, c, 0}, {0, 0, 0, 1}}
}

// RotationZ rotates about +Z.
func RotationZ[T vec.Float](angle T) Mat4[T] {
	s, c := trig.SinCos(angle)
	return Mat4[T]{{c, s, 0, 0}, {-s, c, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1}}
}

// Rotate returns m·Rotation(angle, axis).
func Rotate[T vec.Float](m Mat4[T], angle T, axis vec.Vec3[T]) Mat4[T] {
	return m.Mul(Rotation(angle, axis))
}

// Perspective returns a right-handed projection with vertical field of view
// fovy radians, mapping view depth [-near, -far] to clip z in [-1, 1].
func Perspective[T vec.Float](fovy, aspect, near, far T) Mat4[T] {
	s, c := trig.SinCos(fovy / 2)
	f := c / s
	nf := 1 / (near - far)
	return Mat4[T]{
		{f / aspect, 0, 0, 0},
		{0, f, 0, 0},
		{0, 0, (far + near) * nf, -1},
		{0, 0, 2 * far * near * nf, 0},
	}
}

// Orthographic maps the box [l,r]×[b,t]×[-n,-f] to the clip cube.
func Orthographic[T vec.Float](l, r, b, t, n, f T) Mat4[T] {
	return Mat4[T]{
		{2 / (r - l), 0, 0, 0},
		{0, 2 / (t - b), 0, 0},
		{0, 0, -2 / (f - n), 0},
		{-(r + l) / (r - l), -(t + b) / (t - b), -(f + n) / (f - n), 1},
	}
}

// LookAt returns a right-handed view transform placing eye at the origin
// looking down -Z towards center.
func LookAt[T vec.Float](eye, center, up vec.Vec3[T]) Mat4[T] {
	f := vec.Normalize(center.Sub(eye))
	s := vec.Normalize(f.Cross(up))
	u := s.Cross(f)
	return Mat4[T]{
		{s[0], u[0], -f[0], 0},
		{s[1], u[1], -f[1], 0},
		{s[2], u[2], -f[2], 0},
		{-s.Dot(eye), -u.Dot(eye), f.Dot(eye), 1},
	}
}
