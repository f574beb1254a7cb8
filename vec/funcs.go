package vec

// Length returns |v|. For integer vectors the result is truncated.
func Length[T Number](v Vec3[T]) T {
	return Sqrt(v.LengthSquared())
}

// Length2 returns |v| for a Vec2.
func Length2[T Number](v Vec2[T]) T {
	return Sqrt(v.LengthSquared())
}

// Length4 returns |v| for a Vec4.
func Length4[T Number](v Vec4[T]) T {
	return Sqrt(v.LengthSquared())
}

// Normalize returns v / |v|. A zero vector yields NaN components.
func Normalize[T Float](v Vec3[T]) Vec3[T] {
	return v.Scale(1 / Length(v))
}

// Normalize2 returns v / |v|.
func Normalize2[T Float](v Vec2[T]) Vec2[T] {
	return v.Scale(1 / Length2(v))
}

// Normalize4 returns v / |v|.
func Normalize4[T Float](v Vec4[T]) Vec4[T] {
	return v.Scale(1 / Length4(v))
}

// Distance returns |a - b|.
func Distance[T Float](a, b Vec3[T]) T {
	return Length(a.Sub(b))
}

// DistanceSquared returns |a - b|².
func DistanceSquared[T Number](a, b Vec3[T]) T {
	return a.Sub(b).LengthSquared()
}

// Lerp returns a + (b - a) ⋅ t.
func Lerp[T Float](a, b Vec3[T], t T) Vec3[T] {
	return a.Add(b.Sub(a).Scale(t))
}

// Lerp4 is Lerp for Vec4.
func Lerp4[T Float](a, b Vec4[T], t T) Vec4[T] {
	return a.Add(b.Sub(a).Scale(t))
}

// Reflect mirrors v about the plane with unit normal n.
func Reflect[T Float](v, n Vec3[T]) Vec3[T] {
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// Clamp limits each component of v to [lo, hi].
func Clamp[T Number](v, lo, hi Vec3[T]) Vec3[T] {
	return v.Max(lo).Min(hi)
}

// NearlyEqual reports whether every component of a and b differs by at
// most eps.
func NearlyEqual[T Float](a, b Vec3[T], eps T) bool {
	d := a.Sub(b).Abs()
	return d[0] <= eps && d[1] <= eps && d[2] <= eps
}

// NearlyEqual4 is NearlyEqual for Vec4.
func NearlyEqual4[T Float](a, b Vec4[T], eps T) bool {
	d := a.Sub(b).Abs()
	return d[0] <= eps && d[1] <= eps && d[2] <= eps && d[3] <= eps
}
