package mat

import "github.com/cwbudde/algo-geom/vec"

// Mat4 is a 4×4 column-major matrix. Column 3 carries the translation of an
// affine transform.
type Mat4[T vec.Number] [4]vec.Vec4[T]

// Identity4 returns the 4×4 identity.
func Identity4[T vec.Number]() Mat4[T] {
	return Mat4[T]{{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1}}
}

// Col returns column c.
func (m Mat4[T]) Col(c int) vec.Vec4[T] { return m[c] }

// Row returns row r.
func (m Mat4[T]) Row(r int) vec.Vec4[T] {
	return vec.Vec4[T]{m[0][r], m[1][r], m[2][r], m[3][r]}
}

// At returns the element at row r, column c.
func (m Mat4[T]) At(r, c int) T { return m[c][r] }

// MulVec returns m·v.
func (m Mat4[T]) MulVec(v vec.Vec4[T]) vec.Vec4[T] {
	return m[0].Scale(v[0]).Add(m[1].Scale(v[1])).Add(m[2].Scale(v[2])).Add(m[3].Scale(v[3]))
}

// MulPoint transforms p as a point (w = 1). No perspective divide.
func (m Mat4[T]) MulPoint(p vec.Vec3[T]) vec.Vec3[T] {
	return m.MulVec(p.Extend(1)).XYZ()
}

// MulDir transforms d as a direction (w = 0), ignoring translation.
func (m Mat4[T]) MulDir(d vec.Vec3[T]) vec.Vec3[T] {
	return m.MulVec(d.Extend(0)).XYZ()
}

// Mul returns m·o.
func (m Mat4[T]) Mul(o Mat4[T]) Mat4[T] {
	return Mat4[T]{m.MulVec(o[0]), m.MulVec(o[1]), m.MulVec(o[2]), m.MulVec(o[3])}
}

// Add returns the element-wise sum.
func (m Mat4[T]) Add(o Mat4[T]) Mat4[T] {
	return Mat4[T]{m[0].Add(o[0]), m[1].Add(o[1]), m[2].Add(o[2]), m[3].Add(o[3])}
}

// Scale multiplies every element by s.
func (m Mat4[T]) Scale(s T) Mat4[T] {
	return Mat4[T]{m[0].Scale(s), m[1].Scale(s), m[2].Scale(s), m[3].Scale(s)}
}

// Transpose swaps rows and columns.
func (m Mat4[T]) Transpose() Mat4[T] {
	return Mat4[T]{m.Row(0), m.Row(1), m.Row(2), m.Row(3)}
}

// Mat3 returns the upper-left 3×3 block.
func (m Mat4[T]) Mat3() Mat3[T] {
	return Mat3[T]{m[0].XYZ(), m[1].XYZ(), m[2].XYZ()}
}

// Translate returns m·Translation(v).
func (m Mat4[T]) Translate(v vec.Vec3[T]) Mat4[T] {
	return m.Mul(Translation(v))
}

// ScaleBy returns m·Scaling(v).
func (m Mat4[T]) ScaleBy(v vec.Vec3[T]) Mat4[T] {
	return m.Mul(Scaling(v))
}

// Translation returns the affine transform moving points by v.
func Translation[T vec.Number](v vec.Vec3[T]) Mat4[T] {
	m := Identity4[T]()
	m[3] = v.Extend(1)
	return m
}

// Scaling returns the transform scaling each axis by v.
func Scaling[T vec.Number](v vec.Vec3[T]) Mat4[T] {
	return Mat4[T]{{v[0], 0, 0, 0}, {0, v[1], 0, 0}, {0, 0, v[2], 0}, {0, 0, 0, 1}}
}

// minors returns the 2×2 sub-determinants of the top two and bottom two rows.
func (m Mat4[T]) minors() (a, b [6]T) {
	a[0] = m[0][0]*m[1][1] - m[1][0]*m[0][1]
	a[1] = m[0][0]*m[2][1] - m[2][0]*m[0][1]
	a[2] = m[0][0]*m[3][1] - m[3][0]*m[0][1]
	a[3] = m[1][0]*m[2][1] - m[2][0]*m[1][1]
	a[4] = m[1][0]*m[3][1] - m[3][0]*m[1][1]
	a[5] = m[2][0]*m[3][1] - m[3][0]*m[2][1]

	b[0] = m[0][2]*m[1][3] - m[1][2]*m[0][3]
	b[1] = m[0][2]*m[2][3] - m[2][2]*m[0][3]
	b[2] = m[0][2]*m[3][3] - m[3][2]*m[0][3]
	b[3] = m[1][2]*m[2][3] - m[2][2]*m[1][3]
	b[4] = m[1][2]*m[3][3] - m[3][2]*m[1][3]
	b[5] = m[2][2]*m[3][3] - m[3][2]*m[2][3]
	return a, b
}

// Determinant expands along the 2×2 minors of the row pairs (0,1) and (2,3).
func (m Mat4[T]) Determinant() T {
	a, b := m.minors()
	return a[0]*b[5] - a[1]*b[4] + a[2]*b[3] + a[3]*b[2] - a[4]*b[1] + a[5]*b[0]
}
