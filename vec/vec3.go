package vec

// Vec3 is a three-component vector.
type Vec3[T Number] [3]T

// Splat3 returns a Vec3 with every component set to s.
func Splat3[T Number](s T) Vec3[T] {
	return Vec3[T]{s, s, s}
}

// Cast3 converts each component of v to U.
func Cast3[U, T Number](v Vec3[T]) Vec3[U] {
	return Vec3[U]{U(v[0]), U(v[1]), U(v[2])}
}

// X returns the first component.
func (v Vec3[T]) X() T { return v[0] }

// Y returns the second component.
func (v Vec3[T]) Y() T { return v[1] }

// Z returns the third component.
func (v Vec3[T]) Z() T { return v[2] }

// Add returns v + w.
func (v Vec3[T]) Add(w Vec3[T]) Vec3[T] {
	return Vec3[T]{v[0] + w[0], v[1] + w[1], v[2] + w[2]}
}

// Sub returns v - w.
func (v Vec3[T]) Sub(w Vec3[T]) Vec3[T] {
	return Vec3[T]{v[0] - w[0], v[1] - w[1], v[2] - w[2]}
}

// Mul returns the component-wise product of v and w.
func (v Vec3[T]) Mul(w Vec3[T]) Vec3[T] {
	return Vec3[T]{v[0] * w[0], v[1] * w[1], v[2] * w[2]}
}

// Div returns the component-wise quotient of v and w.
func (v Vec3[T]) Div(w Vec3[T]) Vec3[T] {
	return Vec3[T]{v[0] / w[0], v[1] / w[1], v[2] / w[2]}
}

// Scale returns s ⋅ v.
func (v Vec3[T]) Scale(s T) Vec3[T] {
	return Vec3[T]{v[0] * s, v[1] * s, v[2] * s}
}

// Neg returns -v.
func (v Vec3[T]) Neg() Vec3[T] {
	return Vec3[T]{-v[0], -v[1], -v[2]}
}

// Dot returns v ⋅ w.
func (v Vec3[T]) Dot(w Vec3[T]) T {
	return v[0]*w[0] + v[1]*w[1] + v[2]*w[2]
}

// Cross returns v × w.
func (v Vec3[T]) Cross(w Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v[1]*w[2] - v[2]*w[1],
		v[2]*w[0] - v[0]*w[2],
		v[0]*w[1] - v[1]*w[0],
	}
}

// LengthSquared returns v ⋅ v.
func (v Vec3[T]) LengthSquared() T {
	return v.Dot(v)
}

// Min returns the component-wise minimum of v and w.
func (v Vec3[T]) Min(w Vec3[T]) Vec3[T] {
	return Vec3[T]{min(v[0], w[0]), min(v[1], w[1]), min(v[2], w[2])}
}

// Max returns the component-wise maximum of v and w.
func (v Vec3[T]) Max(w Vec3[T]) Vec3[T] {
	return Vec3[T]{max(v[0], w[0]), max(v[1], w[1]), max(v[2], w[2])}
}

// Abs returns the component-wise absolute value.
func (v Vec3[T]) Abs() Vec3[T] {
	return Vec3[T]{Abs(v[0]), Abs(v[1]), Abs(v[2])}
}

// Sum returns the sum of the components.
func (v Vec3[T]) Sum() T {
	return v[0] + v[1] + v[2]
}

// MinComponent returns the smallest component.
func (v Vec3[T]) MinComponent() T {
	return min(v[0], v[1], v[2])
}

// MaxComponent returns the largest component.
func (v Vec3[T]) MaxComponent() T {
	return max(v[0], v[1], v[2])
}

// Less returns the lanes where v < w.
func (v Vec3[T]) Less(w Vec3[T]) Bool3 {
	return Bool3{v[0] < w[0], v[1] < w[1], v[2] < w[2]}
}

// Greater returns the lanes where v > w.
func (v Vec3[T]) Greater(w Vec3[T]) Bool3 {
	return Bool3{v[0] > w[0], v[1] > w[1], v[2] > w[2]}
}

// Extend appends w and returns the homogeneous Vec4.
func (v Vec3[T]) Extend(w T) Vec4[T] {
	return Vec4[T]{v[0], v[1], v[2], w}
}

// Swizzle returns (v[i], v[j], v[k]). Indices outside [0, 2] panic.
func (v Vec3[T]) Swizzle(i, j, k int) Vec3[T] {
	return Vec3[T]{v[i], v[j], v[k]}
}

// YZX rotates the components left by one lane.
func (v Vec3[T]) YZX() Vec3[T] { return Vec3[T]{v[1], v[2], v[0]} }

// ZXY rotates the components right by one lane.
func (v Vec3[T]) ZXY() Vec3[T] { return Vec3[T]{v[2], v[0], v[1]} }

// XY returns (x, y).
func (v Vec3[T]) XY() Vec2[T] { return Vec2[T]{v[0], v[1]} }

// XZ returns (x, z).
func (v Vec3[T]) XZ() Vec2[T] { return Vec2[T]{v[0], v[2]} }

// YZ returns (y, z).
func (v Vec3[T]) YZ() Vec2[T] { return Vec2[T]{v[1], v[2]} }
