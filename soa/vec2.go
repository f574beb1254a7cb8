package soa

import (
	"github.com/cwbudde/algo-geom/vec"
	"github.com/cwbudde/algo-vecmath"
)

// Vec2Block is a batch of float64 2D vectors.
type Vec2Block struct {
	X, Y []float64
}

// NewVec2Block allocates n zero vectors.
func NewVec2Block(n int) Vec2Block {
	return Vec2Block{X: make([]float64, n), Y: make([]float64, n)}
}

// Len returns the number of vectors.
func (b Vec2Block) Len() int {
	if len(b.X) != len(b.Y) {
		panic("soa: slice length mismatch")
	}
	return len(b.X)
}

// At returns vector i.
func (b Vec2Block) At(i int) vec.Vec2[float64] { return vec.Vec2[float64]{b.X[i], b.Y[i]} }

// Set stores v at index i.
func (b Vec2Block) Set(i int, v vec.Vec2[float64]) { b.X[i], b.Y[i] = v[0], v[1] }

// Lengths writes |v| of every vector into dst.
func (b Vec2Block) Lengths(dst []float64) {
	checkLen(len(dst), b.Len())
	vecmath.Magnitude(dst, b.X, b.Y)
}

// LengthsSquared writes v·v of every vector into dst.
func (b Vec2Block) LengthsSquared(dst []float64) {
	checkLen(len(dst), b.Len())
	vecmath.Power(dst, b.X, b.Y)
}

// MulInPlace scales vector i by f[i].
func (b Vec2Block) MulInPlace(f []float64) {
	checkLen(len(f), b.Len())
	vecmath.MulBlockInPlace(b.X, f)
	vecmath.MulBlockInPlace(b.Y, f)
}

func checkLen(got, want int) {
	if got != want {
		panic("soa: slice length mismatch")
	}
}
