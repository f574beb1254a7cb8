package trig

import (
	"github.com/cwbudde/algo-geom/internal/kernel"
	"github.com/cwbudde/algo-geom/vec"
)

// SinCos returns sin(x) and cos(x). Both are NaN for |x| > 2^29.
func SinCos[T vec.Float](x T) (sin, cos T) {
	s, c := kernel.SinCos(float64(x))
	return T(s), T(c)
}

// Sin returns sin(x).
func Sin[T vec.Float](x T) T {
	s, _ := SinCos(x)
	return s
}

// Cos returns cos(x).
func Cos[T vec.Float](x T) T {
	_, c := SinCos(x)
	return c
}

// Tan returns sin(x)/cos(x).
func Tan[T vec.Float](x T) T {
	s, c := SinCos(x)
	return s / c
}

// SinCos4 evaluates four lanes in one pass.
func SinCos4[T vec.Float](x vec.Vec4[T]) (sin, cos vec.Vec4[T]) {
	s, c := kernel.SinCos4([4]float64{float64(x[0]), float64(x[1]), float64(x[2]), float64(x[3])})
	return vec.Vec4[T]{T(s[0]), T(s[1]), T(s[2]), T(s[3])},
		vec.Vec4[T]{T(c[0]), T(c[1]), T(c[2]), T(c[3])}
}

// SinCos3 evaluates three lanes; the fourth kernel lane is idle.
func SinCos3[T vec.Float](x vec.Vec3[T]) (sin, cos vec.Vec3[T]) {
	s, c := SinCos4(x.Extend(0))
	return s.XYZ(), c.XYZ()
}

// SinCos2 evaluates two lanes.
func SinCos2[T vec.Float](x vec.Vec2[T]) (sin, cos vec.Vec2[T]) {
	s, c := SinCos4(vec.Vec4[T]{x[0], x[1], 0, 0})
	return vec.Vec2[T]{s[0], s[1]}, vec.Vec2[T]{c[0], c[1]}
}
