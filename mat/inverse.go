package mat

import "github.com/cwbudde/algo-geom/vec"

// Inverse4 returns the inverse of m by its adjugate. ok is false when the
// determinant is exactly zero. There is no pivoting; ill-conditioned inputs
// lose precision.
func Inverse4[T vec.Float](m Mat4[T]) (inv Mat4[T], ok bool) {
	a, b := m.minors()
	det := a[0]*b[5] - a[1]*b[4] + a[2]*b[3] + a[3]*b[2] - a[4]*b[1] + a[5]*b[0]
	if det == 0 {
		return Mat4[T]{}, false
	}

	// e(r, c) reads row r, column c.
	e := func(r, c int) T { return m[c][r] }

	inv[0][0] = e(1, 1)*b[5] - e(1, 2)*b[4] + e(1, 3)*b[3]
	inv[0][1] = -e(1, 0)*b[5] + e(1, 2)*b[2] - e(1, 3)*b[1]
	inv[0][2] = e(1, 0)*b[4] - e(1, 1)*b[2] + e(1, 3)*b[0]
	inv[0][3] = -e(1, 0)*b[3] + e(1, 1)*b[1] - e(1, 2)*b[0]

	inv[1][0] = -e(0, 1)*b[5] + e(0, 2)*b[4] - e(0, 3)*b[3]
	inv[1][1] = e(0, 0)*b[5] - e(0, 2)*b[2] + e(0, 3)*b[1]
	inv[1][2] = -e(0, 0)*b[4] + e(0, 1)*b[2] - e(0, 3)*b[0]
	inv[1][3] = e(0, 0)*b[3] - e(0, 1)*b[1] + e(0, 2)*b[0]

	inv[2][0] = e(3, 1)*a[5] - e(3, 2)*a[4] + e(3, 3)*a[3]
	inv[2][1] = -e(3, 0)*a[5] + e(3, 2)*a[2] - e(3, 3)*a[1]
	inv[2][2] = e(3, 0)*a[4] - e(3, 1)*a[2] + e(3, 3)*a[0]
	inv[2][3] = -e(3, 0)*a[3] + e(3, 1)*a[1] - e(3, 2)*a[0]

	inv[3][0] = -e(2, 1)*a[5] + e(2, 2)*a[4] - e(2, 3)*a[3]
	inv[3][1] = e(2, 0)*a[5] - e(2, 2)*a[2] + e(2, 3)*a[1]
	inv[3][2] = -e(2, 0)*a[4] + e(2, 1)*a[2] - e(2, 3)*a[0]
	inv[3][3] = e(2, 0)*a[3] - e(2, 1)*a[1] + e(2, 2)*a[0]

	return inv.Scale(1 / det), true
}

// NormalMatrix returns the transform for surface normals under m: the
// inverse transpose of its upper-left block. A singular block yields the
// zero matrix.
func NormalMatrix[T vec.Float](m Mat4[T]) Mat3[T] {
	inv, _ := Inverse3(m.Mat3())
	return inv.Transpose()
}
