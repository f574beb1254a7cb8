package lane

import (
	"math"

	"github.com/cwbudde/algo-geom/vec"
)

// Mask is a single lane predicate: 0 or ^0.
type Mask uint64

const (
	False Mask = 0
	True  Mask = ^Mask(0)
)

func b2u(b bool) uint64 {
	var u uint64
	if b {
		u = 1
	}
	return u
}

// FromBool widens b to a full-width mask.
func FromBool(b bool) Mask {
	return Mask(-b2u(b))
}

// Bool reports whether m is set.
func (m Mask) Bool() bool { return m != 0 }

// And returns m & o.
func (m Mask) And(o Mask) Mask { return m & o }

// Or returns m | o.
func (m Mask) Or(o Mask) Mask { return m | o }

// AndNot returns m with the bits of o cleared.
func (m Mask) AndNot(o Mask) Mask { return m &^ o }

// Not returns the complement of m.
func (m Mask) Not() Mask { return ^m }

// Bits returns the IEEE 754 representation of x, zero-extended to 64 bits
// for float32.
func Bits[T vec.Float](x T) uint64 {
	if vec.Is32[T]() {
		return uint64(math.Float32bits(float32(x)))
	}
	return math.Float64bits(float64(x))
}

// FromBits is the inverse of Bits.
func FromBits[T vec.Float](u uint64) T {
	if vec.Is32[T]() {
		return T(math.Float32frombits(uint32(u)))
	}
	return T(math.Float64frombits(u))
}

// SignMask returns the sign bit of T's representation.
func SignMask[T vec.Float]() uint64 {
	if vec.Is32[T]() {
		return 1 << 31
	}
	return 1 << 63
}

// Select returns a where m is set and b elsewhere.
func Select[T vec.Float](m Mask, a, b T) T {
	u := uint64(m)
	return FromBits[T]((Bits(a) & u) | (Bits(b) &^ u))
}

// Abs clears the sign bit of x.
func Abs[T vec.Float](x T) T {
	return FromBits[T](Bits(x) &^ SignMask[T]())
}

// Sign returns the sign bit of x in place (0 or SignMask).
func Sign[T vec.Float](x T) uint64 {
	return Bits(x) & SignMask[T]()
}

// XorSign flips the sign of x when s carries the sign bit.
func XorSign[T vec.Float](x T, s uint64) T {
	return FromBits[T](Bits(x) ^ (s & SignMask[T]()))
}
