package vec

import (
	"math"
	"unsafe"
)

// Signed is the set of signed fixed-width integer element types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the set of unsigned fixed-width integer element types.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integer is the set of all integer element types.
type Integer interface {
	Signed | Unsigned
}

// Float is the set of IEEE 754 element types.
type Float interface {
	~float32 | ~float64
}

// Number is every element type a vector may hold.
type Number interface {
	Integer | Float
}

// Is32 reports whether T is a 32-bit float. The result is constant per
// instantiation.
func Is32[T Float]() bool {
	var zero T
	return unsafe.Sizeof(zero) == 4
}

// MaxValue returns the largest finite value representable by T. Intersection
// routines use it as their "no hit" sentinel.
func MaxValue[T Float]() T {
	m := math.MaxFloat64
	if Is32[T]() {
		m = math.MaxFloat32
	}
	return T(m)
}

// Inf returns +Inf (sign >= 0) or -Inf (sign < 0) as T.
func Inf[T Float](sign int) T {
	return T(math.Inf(sign))
}
