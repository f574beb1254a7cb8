package vec

// Vec2 is a two-component vector.
type Vec2[T Number] [2]T

// Splat2 returns a Vec2 with both components set to s.
func Splat2[T Number](s T) Vec2[T] {
	return Vec2[T]{s, s}
}

// Cast2 converts each component of v to U.
func Cast2[U, T Number](v Vec2[T]) Vec2[U] {
	return Vec2[U]{U(v[0]), U(v[1])}
}

// X returns the first component.
func (v Vec2[T]) X() T { return v[0] }

// Y returns the second component.
func (v Vec2[T]) Y() T { return v[1] }

// Add returns v + w.
func (v Vec2[T]) Add(w Vec2[T]) Vec2[T] { return Vec2[T]{v[0] + w[0], v[1] + w[1]} }

// Sub returns v - w.
func (v Vec2[T]) Sub(w Vec2[T]) Vec2[T] { return Vec2[T]{v[0] - w[0], v[1] - w[1]} }

// Mul returns the component-wise product.
func (v Vec2[T]) Mul(w Vec2[T]) Vec2[T] { return Vec2[T]{v[0] * w[0], v[1] * w[1]} }

// Div returns the component-wise quotient.
func (v Vec2[T]) Div(w Vec2[T]) Vec2[T] { return Vec2[T]{v[0] / w[0], v[1] / w[1]} }

// Scale returns v·s.
func (v Vec2[T]) Scale(s T) Vec2[T] { return Vec2[T]{v[0] * s, v[1] * s} }

// Neg returns -v.
func (v Vec2[T]) Neg() Vec2[T] { return Vec2[T]{-v[0], -v[1]} }

// Dot returns v ⋅ w.
func (v Vec2[T]) Dot(w Vec2[T]) T {
	return v[0]*w[0] + v[1]*w[1]
}

// Cross returns the z component of the 3D cross product of (v, 0) and (w, 0).
func (v Vec2[T]) Cross(w Vec2[T]) T {
	return v[0]*w[1] - v[1]*w[0]
}

// Perp returns v rotated a quarter turn counter-clockwise.
func (v Vec2[T]) Perp() Vec2[T] {
	return Vec2[T]{-v[1], v[0]}
}

// LengthSquared returns v ⋅ v.
func (v Vec2[T]) LengthSquared() T { return v.Dot(v) }

// Min returns the component-wise minimum.
func (v Vec2[T]) Min(w Vec2[T]) Vec2[T] { return Vec2[T]{min(v[0], w[0]), min(v[1], w[1])} }

// Max returns the component-wise maximum.
func (v Vec2[T]) Max(w Vec2[T]) Vec2[T] { return Vec2[T]{max(v[0], w[0]), max(v[1], w[1])} }

// Abs returns the component-wise absolute value.
func (v Vec2[T]) Abs() Vec2[T] { return Vec2[T]{Abs(v[0]), Abs(v[1])} }

// Sum adds the components.
func (v Vec2[T]) Sum() T { return v[0] + v[1] }

// Extend appends z.
func (v Vec2[T]) Extend(z T) Vec3[T] {
	return Vec3[T]{v[0], v[1], z}
}

// Swizzle returns (v[i], v[j]).
func (v Vec2[T]) Swizzle(i, j int) Vec2[T] {
	return Vec2[T]{v[i], v[j]}
}

// YX swaps the components.
func (v Vec2[T]) YX() Vec2[T] { return Vec2[T]{v[1], v[0]} }
