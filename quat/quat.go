package quat

import (
	"math"

	"github.com/cwbudde/algo-geom/mat"
	"github.com/cwbudde/algo-geom/trig"
	"github.com/cwbudde/algo-geom/vec"
)

// slerpThreshold is the cosine above which Slerp falls back to Nlerp.
const slerpThreshold = 1 - 1e-6

// Quat is a quaternion (x, y, z, w) with w the scalar part.
type Quat[T vec.Float] [4]T

// Identity returns the rotation that leaves vectors unchanged.
func Identity[T vec.Float]() Quat[T] { return Quat[T]{0, 0, 0, 1} }

// FromVec4 reinterprets v as (x, y, z, w).
func FromVec4[T vec.Float](v vec.Vec4[T]) Quat[T] { return Quat[T](v) }

// FromAxisAngle returns the rotation by angle radians about axis. axis need
// not be unit length.
func FromAxisAngle[T vec.Float](axis vec.Vec3[T], angle T) Quat[T] {
	s, c := trig.SinCos(angle / 2)
	a := vec.Normalize(axis).Scale(s)
	return Quat[T]{a[0], a[1], a[2], c}
}

// FromEuler builds a rotation from (roll, pitch, yaw) in radians.
func FromEuler[T vec.Float](angles vec.Vec3[T]) Quat[T] {
	s, c := trig.SinCos3(angles.Scale(0.5))
	sx, sy, sz := s[0], s[1], s[2]
	cx, cy, cz := c[0], c[1], c[2]
	return Quat[T]{
		sx*cy*cz - cx*sy*sz,
		cx*sy*cz + sx*cy*sz,
		cx*cy*sz - sx*sy*cz,
		cx*cy*cz + sx*sy*sz,
	}
}

// FromTo returns the shortest-arc rotation taking unit vector from onto
// unit vector to. Opposite vectors rotate half a turn about an axis
// orthogonal to from.
func FromTo[T vec.Float](from, to vec.Vec3[T]) Quat[T] {
	d := from.Dot(to)
	if d < -slerpThreshold {
		axis := vec.Vec3[T]{1, 0, 0}.Cross(from)
		if axis.LengthSquared() < 1e-12 {
			axis = vec.Vec3[T]{0, 1, 0}.Cross(from)
		}
		axis = vec.Normalize(axis)
		return Quat[T]{axis[0], axis[1], axis[2], 0}
	}
	c := from.Cross(to)
	return Quat[T]{c[0], c[1], c[2], 1 + d}.Normalize()
}

// FromMat3 extracts the rotation of an orthonormal matrix.
func FromMat3[T vec.Float](m mat.Mat3[T]) Quat[T] {
	e := func(r, c int) T { return m[c][r] }
	m00, m11, m22 := e(0, 0), e(1, 1), e(2, 2)

	switch tr := m00 + m11 + m22; {
	case tr > 0:
		s := vec.Sqrt(tr+1) * 2
		return Quat[T]{(e(2, 1) - e(1, 2)) / s, (e(0, 2) - e(2, 0)) / s, (e(1, 0) - e(0, 1)) / s, s / 4}
	case m00 > m11 && m00 > m22:
		s := vec.Sqrt(1+m00-m11-m22) * 2
		return Quat[T]{s / 4, (e(0, 1) + e(1, 0)) / s, (e(0, 2) + e(2, 0)) / s, (e(2, 1) - e(1, 2)) / s}
	case m11 > m22:
		s := vec.Sqrt(1+m11-m00-m22) * 2
		return Quat[T]{(e(0, 1) + e(1, 0)) / s, s / 4, (e(1, 2) + e(2, 1)) / s, (e(0, 2) - e(2, 0)) / s}
	default:
		s := vec.Sqrt(1+m22-m00-m11) * 2
		return Quat[T]{(e(0, 2) + e(2, 0)) / s, (e(1, 2) + e(2, 1)) / s, s / 4, (e(1, 0) - e(0, 1)) / s}
	}
}

// X returns the i component.
func (q Quat[T]) X() T { return q[0] }

// Y returns the j component.
func (q Quat[T]) Y() T { return q[1] }

// Z returns the k component.
func (q Quat[T]) Z() T { return q[2] }

// W returns the scalar part.
func (q Quat[T]) W() T { return q[3] }

// Vec4 returns q as (x, y, z, w).
func (q Quat[T]) Vec4() vec.Vec4[T] { return vec.Vec4[T](q) }

// Imag returns the vector part (x, y, z).
func (q Quat[T]) Imag() vec.Vec3[T] { return vec.Vec3[T]{q[0], q[1], q[2]} }

// Add returns the component-wise sum.
func (q Quat[T]) Add(o Quat[T]) Quat[T] { return Quat[T](q.Vec4().Add(o.Vec4())) }

// Scale multiplies every component by s.
func (q Quat[T]) Scale(s T) Quat[T] { return Quat[T](q.Vec4().Scale(s)) }

// Neg negates every component. -q is the same rotation as q.
func (q Quat[T]) Neg() Quat[T] { return Quat[T](q.Vec4().Neg()) }

// Dot returns the 4D dot product.
func (q Quat[T]) Dot(o Quat[T]) T { return q.Vec4().Dot(o.Vec4()) }

// Length returns the Euclidean norm of q.
func (q Quat[T]) Length() T { return vec.Length4(q.Vec4()) }

// Normalize returns q scaled to unit length.
func (q Quat[T]) Normalize() Quat[T] { return Quat[T](vec.Normalize4(q.Vec4())) }

// Conjugate negates the vector part.
func (q Quat[T]) Conjugate() Quat[T] { return Quat[T]{-q[0], -q[1], -q[2], q[3]} }

// Inverse returns the conjugate divided by the squared norm. The zero
// quaternion yields NaNs.
func (q Quat[T]) Inverse() Quat[T] { return q.Conjugate().Scale(1 / q.Dot(q)) }

// Mul returns the Hamilton product q·o, which applies o first and then q.
func (q Quat[T]) Mul(o Quat[T]) Quat[T] {
	ax, ay, az, aw := q[0], q[1], q[2], q[3]
	bx, by, bz, bw := o[0], o[1], o[2], o[3]
	return Quat[T]{
		aw*bx + ax*bw + ay*bz - az*by,
		aw*by - ax*bz + ay*bw + az*bx,
		aw*bz + ax*by - ay*bx + az*bw,
		aw*bw - ax*bx - ay*by - az*bz,
	}
}

// Rotate applies q to v.
func (q Quat[T]) Rotate(v vec.Vec3[T]) vec.Vec3[T] {
	u := q.Imag()
	t := u.Cross(v).Scale(2)
	return v.Add(t.Scale(q[3])).Add(u.Cross(t))
}

// Mat3 returns the rotation matrix of q.
func (q Quat[T]) Mat3() mat.Mat3[T] {
	x, y, z, w := q[0], q[1], q[2], q[3]
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z
	return mat.Mat3[T]{
		{1 - 2*(yy+zz), 2 * (xy + wz), 2 * (xz - wy)},
		{2 * (xy - wz), 1 - 2*(xx+zz), 2 * (yz + wx)},
		{2 * (xz + wy), 2 * (yz - wx), 1 - 2*(xx+yy)},
	}
}

// Mat4 returns the rotation as an affine 4×4 transform.
func (q Quat[T]) Mat4() mat.Mat4[T] { return q.Mat3().Mat4() }

// Euler returns (roll, pitch, yaw) in radians. Pitch is clamped to ±π/2
// near gimbal lock.
func (q Quat[T]) Euler() vec.Vec3[T] {
	x, y, z, w := float64(q[0]), float64(q[1]), float64(q[2]), float64(q[3])
	roll := math.Atan2(2*(w*x+y*z), 1-2*(x*x+y*y))
	sinp := max(-1, min(1, 2*(w*y-z*x)))
	pitch := math.Asin(sinp)
	yaw := math.Atan2(2*(w*z+x*y), 1-2*(y*y+z*z))
	return vec.Vec3[T]{T(roll), T(pitch), T(yaw)}
}

// AxisAngle returns the rotation axis and angle of a unit quaternion. The
// identity reports the X axis with angle 0.
func (q Quat[T]) AxisAngle() (axis vec.Vec3[T], angle T) {
	w := max(-1, min(1, float64(q[3])))
	angle = T(2 * math.Acos(w))
	s := math.Sqrt(1 - w*w)
	if s < 1e-12 {
		return vec.Vec3[T]{1, 0, 0}, angle
	}
	return q.Imag().Scale(T(1 / s)), angle
}

// Lerp interpolates component-wise without renormalising.
func Lerp[T vec.Float](a, b Quat[T], t T) Quat[T] {
	return Quat[T](vec.Lerp4(a.Vec4(), b.Vec4(), t))
}

// Nlerp interpolates along the shorter arc and renormalises.
func Nlerp[T vec.Float](a, b Quat[T], t T) Quat[T] {
	if a.Dot(b) < 0 {
		b = b.Neg()
	}
	return Lerp(a, b, t).Normalize()
}

// Slerp interpolates at constant angular velocity along the shorter arc.
// Nearly identical inputs fall back to Nlerp.
func Slerp[T vec.Float](a, b Quat[T], t T) Quat[T] {
	d := a.Dot(b)
	if d < 0 {
		b, d = b.Neg(), -d
	}
	if d > slerpThreshold {
		return Lerp(a, b, t).Normalize()
	}
	theta := T(math.Acos(float64(d)))
	s, _ := trig.SinCos4(vec.Vec4[T]{theta, (1 - t) * theta, t * theta, 0})
	return a.Scale(s[1] / s[0]).Add(b.Scale(s[2] / s[0]))
}

// NearlyEqual reports whether every component of a and b differs by at most
// eps.
func NearlyEqual[T vec.Float](a, b Quat[T], eps T) bool {
	return vec.NearlyEqual4(a.Vec4(), b.Vec4(), eps)
}
