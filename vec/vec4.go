package vec

// Vec4 is a four-component vector. As a lane vector it carries four
// independent values processed together.
type Vec4[T Number] [4]T

// Splat4 returns a Vec4 with every component set to s.
func Splat4[T Number](s T) Vec4[T] {
	return Vec4[T]{s, s, s, s}
}

// Cast4 converts each component of v to U.
func Cast4[U, T Number](v Vec4[T]) Vec4[U] {
	return Vec4[U]{U(v[0]), U(v[1]), U(v[2]), U(v[3])}
}

// X returns the first component.
func (v Vec4[T]) X() T { return v[0] }

// Y returns the second component.
func (v Vec4[T]) Y() T { return v[1] }

// Z returns the third component.
func (v Vec4[T]) Z() T { return v[2] }

// W returns the fourth component.
func (v Vec4[T]) W() T { return v[3] }

// Add returns v + w.
func (v Vec4[T]) Add(w Vec4[T]) Vec4[T] {
	return Vec4[T]{v[0] + w[0], v[1] + w[1], v[2] + w[2], v[3] + w[3]}
}

// Sub returns v - w.
func (v Vec4[T]) Sub(w Vec4[T]) Vec4[T] {
	return Vec4[T]{v[0] - w[0], v[1] - w[1], v[2] - w[2], v[3] - w[3]}
}

// Mul returns the component-wise product.
func (v Vec4[T]) Mul(w Vec4[T]) Vec4[T] {
	return Vec4[T]{v[0] * w[0], v[1] * w[1], v[2] * w[2], v[3] * w[3]}
}

// Div returns the component-wise quotient.
func (v Vec4[T]) Div(w Vec4[T]) Vec4[T] {
	return Vec4[T]{v[0] / w[0], v[1] / w[1], v[2] / w[2], v[3] / w[3]}
}

// Scale returns s ⋅ v.
func (v Vec4[T]) Scale(s T) Vec4[T] {
	return Vec4[T]{v[0] * s, v[1] * s, v[2] * s, v[3] * s}
}

// Neg returns -v.
func (v Vec4[T]) Neg() Vec4[T] {
	return Vec4[T]{-v[0], -v[1], -v[2], -v[3]}
}

// Dot returns v ⋅ w.
func (v Vec4[T]) Dot(w Vec4[T]) T {
	return v[0]*w[0] + v[1]*w[1] + v[2]*w[2] + v[3]*w[3]
}

// LengthSquared returns v ⋅ v.
func (v Vec4[T]) LengthSquared() T { return v.Dot(v) }

// Min returns the component-wise minimum.
func (v Vec4[T]) Min(w Vec4[T]) Vec4[T] {
	return Vec4[T]{min(v[0], w[0]), min(v[1], w[1]), min(v[2], w[2]), min(v[3], w[3])}
}

// Max returns the component-wise maximum.
func (v Vec4[T]) Max(w Vec4[T]) Vec4[T] {
	return Vec4[T]{max(v[0], w[0]), max(v[1], w[1]), max(v[2], w[2]), max(v[3], w[3])}
}

// Abs returns the component-wise absolute value.
func (v Vec4[T]) Abs() Vec4[T] { return Vec4[T]{Abs(v[0]), Abs(v[1]), Abs(v[2]), Abs(v[3])} }

// Sum adds the components.
func (v Vec4[T]) Sum() T { return v[0] + v[1] + v[2] + v[3] }

// XYZ drops the w component.
func (v Vec4[T]) XYZ() Vec3[T] {
	return Vec3[T]{v[0], v[1], v[2]}
}

// Swizzle returns (v[i], v[j], v[k], v[l]).
func (v Vec4[T]) Swizzle(i, j, k, l int) Vec4[T] {
	return Vec4[T]{v[i], v[j], v[k], v[l]}
}

// Rotate rotates the lanes left by one: (y, z, w, x).
func (v Vec4[T]) Rotate() Vec4[T] {
	return Vec4[T]{v[1], v[2], v[3], v[0]}
}
