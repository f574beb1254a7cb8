package mat

import "github.com/cwbudde/algo-geom/vec"

// Mat2 is a 2×2 column-major matrix.
type Mat2[T vec.Number] [2]vec.Vec2[T]

// Identity2 returns the 2×2 identity.
func Identity2[T vec.Number]() Mat2[T] {
	return Mat2[T]{{1, 0}, {0, 1}}
}

// Col returns column c.
func (m Mat2[T]) Col(c int) vec.Vec2[T] { return m[c] }

// Row returns row r.
func (m Mat2[T]) Row(r int) vec.Vec2[T] { return vec.Vec2[T]{m[0][r], m[1][r]} }

// At returns the element at row r, column c.
func (m Mat2[T]) At(r, c int) T { return m[c][r] }

// MulVec returns m·v.
func (m Mat2[T]) MulVec(v vec.Vec2[T]) vec.Vec2[T] {
	return m[0].Scale(v[0]).Add(m[1].Scale(v[1]))
}

// Mul returns m·o.
func (m Mat2[T]) Mul(o Mat2[T]) Mat2[T] {
	return Mat2[T]{m.MulVec(o[0]), m.MulVec(o[1])}
}

// Add returns the element-wise sum.
func (m Mat2[T]) Add(o Mat2[T]) Mat2[T] { return Mat2[T]{m[0].Add(o[0]), m[1].Add(o[1])} }

// Scale multiplies every element by s.
func (m Mat2[T]) Scale(s T) Mat2[T] { return Mat2[T]{m[0].Scale(s), m[1].Scale(s)} }

// Transpose swaps rows and columns.
func (m Mat2[T]) Transpose() Mat2[T] {
	return Mat2[T]{m.Row(0), m.Row(1)}
}

// Determinant returns det(m).
func (m Mat2[T]) Determinant() T {
	return m[0][0]*m[1][1] - m[1][0]*m[0][1]
}
