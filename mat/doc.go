// Package mat provides square column-major matrices of fixed size.
//
// A Mat4[T] is four column vectors, so m[c][r] addresses column c, row r.
// Only square shapes exist; multiplying a Mat3 by a Vec4 does not compile.
//
// Arithmetic (Mul, Transpose, Determinant) accepts any vec.Number. Transform
// construction and inversion are float only.
package mat
