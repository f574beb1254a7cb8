package soa

import (
	"github.com/cwbudde/algo-geom/shape"
	"github.com/cwbudde/algo-geom/vec"
	"github.com/cwbudde/algo-vecmath"
)

// Vec3Block is a batch of float64 3D vectors.
type Vec3Block struct {
	X, Y, Z []float64
}

// NewVec3Block allocates n zero vectors.
func NewVec3Block(n int) Vec3Block {
	return Vec3Block{X: make([]float64, n), Y: make([]float64, n), Z: make([]float64, n)}
}

// Vec3BlockFrom copies vs into a new block.
func Vec3BlockFrom(vs []vec.Vec3[float64]) Vec3Block {
	b := NewVec3Block(len(vs))
	for i, v := range vs {
		b.Set(i, v)
	}
	return b
}

// Len returns the number of vectors.
func (b Vec3Block) Len() int {
	n := len(b.X)
	if len(b.Y) != n || len(b.Z) != n {
		panic("soa: slice length mismatch")
	}
	return n
}

// At returns vector i.
func (b Vec3Block) At(i int) vec.Vec3[float64] {
	return vec.Vec3[float64]{b.X[i], b.Y[i], b.Z[i]}
}

// Set stores v at index i.
func (b Vec3Block) Set(i int, v vec.Vec3[float64]) {
	b.X[i], b.Y[i], b.Z[i] = v[0], v[1], v[2]
}

// Lengths writes |v| of every vector into dst as hypot(hypot(x, y), z).
func (b Vec3Block) Lengths(dst []float64) {
	checkLen(len(dst), b.Len())
	vecmath.Magnitude(dst, b.X, b.Y)
	vecmath.Magnitude(dst, dst, b.Z)
}

// Dots writes b[i]·o[i] into dst.
func (b Vec3Block) Dots(dst []float64, o Vec3Block) {
	n := b.Len()
	checkLen(o.Len(), n)
	checkLen(len(dst), n)
	vecmath.MulBlock(dst, b.X, o.X)
	for i := range dst {
		dst[i] += b.Y[i]*o.Y[i] + b.Z[i]*o.Z[i]
	}
}

// Normalize scales every vector to unit length. scratch receives the
// reciprocal lengths. Zero vectors become NaN.
func (b Vec3Block) Normalize(scratch []float64) {
	b.Lengths(scratch)
	for i, l := range scratch {
		scratch[i] = 1 / l
	}
	vecmath.MulBlockInPlace(b.X, scratch)
	vecmath.MulBlockInPlace(b.Y, scratch)
	vecmath.MulBlockInPlace(b.Z, scratch)
}

// Bounds returns the box containing every vector, or an empty box for an
// empty block.
func (b Vec3Block) Bounds() shape.AABB[float64] {
	box := shape.EmptyAABB[float64]()
	for i := range b.Len() {
		box = box.ExpandBy(b.At(i))
	}
	return box
}
