package mat

import "github.com/cwbudde/algo-geom/vec"

// Mat3 is a 3×3 column-major matrix.
type Mat3[T vec.Number] [3]vec.Vec3[T]

// Identity3 returns the 3×3 identity.
func Identity3[T vec.Number]() Mat3[T] {
	return Mat3[T]{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// Mat3FromCols builds a matrix from its columns.
func Mat3FromCols[T vec.Number](c0, c1, c2 vec.Vec3[T]) Mat3[T] {
	return Mat3[T]{c0, c1, c2}
}

// Col returns column c.
func (m Mat3[T]) Col(c int) vec.Vec3[T] { return m[c] }

// Row returns row r.
func (m Mat3[T]) Row(r int) vec.Vec3[T] { return vec.Vec3[T]{m[0][r], m[1][r], m[2][r]} }

// At returns the element at row r, column c.
func (m Mat3[T]) At(r, c int) T { return m[c][r] }

// MulVec returns m·v.
func (m Mat3[T]) MulVec(v vec.Vec3[T]) vec.Vec3[T] {
	return m[0].Scale(v[0]).Add(m[1].Scale(v[1])).Add(m[2].Scale(v[2]))
}

// Mul returns m·o.
func (m Mat3[T]) Mul(o Mat3[T]) Mat3[T] {
	return Mat3[T]{m.MulVec(o[0]), m.MulVec(o[1]), m.MulVec(o[2])}
}

// Add returns the element-wise sum.
func (m Mat3[T]) Add(o Mat3[T]) Mat3[T] {
	return Mat3[T]{m[0].Add(o[0]), m[1].Add(o[1]), m[2].Add(o[2])}
}

// Scale multiplies every element by s.
func (m Mat3[T]) Scale(s T) Mat3[T] {
	return Mat3[T]{m[0].Scale(s), m[1].Scale(s), m[2].Scale(s)}
}

// Transpose swaps rows and columns.
func (m Mat3[T]) Transpose() Mat3[T] {
	return Mat3[T]{m.Row(0), m.Row(1), m.Row(2)}
}

// Determinant is the scalar triple product of the columns.
func (m Mat3[T]) Determinant() T {
	return m[0].Dot(m[1].Cross(m[2]))
}

// Mat4 embeds m in the upper-left block of a 4×4 identity.
func (m Mat3[T]) Mat4() Mat4[T] {
	return Mat4[T]{m[0].Extend(0), m[1].Extend(0), m[2].Extend(0), {0, 0, 0, 1}}
}

// Inverse3 returns the inverse of m by its adjugate. ok is false when the
// determinant is exactly zero.
func Inverse3[T vec.Float](m Mat3[T]) (inv Mat3[T], ok bool) {
	a, b, c := m[0], m[1], m[2]
	r0 := b.Cross(c)
	det := a.Dot(r0)
	if det == 0 {
		return Mat3[T]{}, false
	}
	adj := Mat3[T]{r0, c.Cross(a), a.Cross(b)}.Transpose()
	return adj.Scale(1 / det), true
}
