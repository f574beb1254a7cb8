package soa

import (
	"github.com/cwbudde/algo-geom/mat"
	"github.com/cwbudde/algo-geom/shape"
	"github.com/cwbudde/algo-geom/vec"
	"github.com/viterin/vek/vek32"
)

// Vec3Block32 is a batch of float32 3D vectors, typically mesh positions.
type Vec3Block32 struct {
	X, Y, Z []float32
}

// NewVec3Block32 allocates n zero vectors.
func NewVec3Block32(n int) Vec3Block32 {
	return Vec3Block32{X: make([]float32, n), Y: make([]float32, n), Z: make([]float32, n)}
}

// Len returns the number of vectors.
func (b Vec3Block32) Len() int {
	n := len(b.X)
	if len(b.Y) != n || len(b.Z) != n {
		panic("soa: slice length mismatch")
	}
	return n
}

// At returns vector i.
func (b Vec3Block32) At(i int) vec.Vec3[float32] {
	return vec.Vec3[float32]{b.X[i], b.Y[i], b.Z[i]}
}

// Set stores v at index i.
func (b Vec3Block32) Set(i int, v vec.Vec3[float32]) {
	b.X[i], b.Y[i], b.Z[i] = v[0], v[1], v[2]
}

// Bounds returns the box containing every vector, or an empty box for an
// empty block.
func (b Vec3Block32) Bounds() shape.AABB[float32] {
	if b.Len() == 0 {
		return shape.EmptyAABB[float32]()
	}
	return shape.AABB[float32]{
		Min: vec.Vec3[float32]{vek32.Min(b.X), vek32.Min(b.Y), vek32.Min(b.Z)},
		Max: vec.Vec3[float32]{vek32.Max(b.X), vek32.Max(b.Y), vek32.Max(b.Z)},
	}
}

// Centroid returns the mean vector. An empty block yields NaNs.
func (b Vec3Block32) Centroid() vec.Vec3[float32] {
	n := float32(b.Len())
	return vec.Vec3[float32]{vek32.Sum(b.X) / n, vek32.Sum(b.Y) / n, vek32.Sum(b.Z) / n}
}

// Scale multiplies every vector by s.
func (b Vec3Block32) Scale(s float32) {
	b.Len()
	vek32.MulNumber_Inplace(b.X, s)
	vek32.MulNumber_Inplace(b.Y, s)
	vek32.MulNumber_Inplace(b.Z, s)
}

// Translate adds d to every vector.
func (b Vec3Block32) Translate(d vec.Vec3[float32]) {
	b.Len()
	vek32.AddNumber_Inplace(b.X, d[0])
	vek32.AddNumber_Inplace(b.Y, d[1])
	vek32.AddNumber_Inplace(b.Z, d[2])
}

// Transform applies the affine transform m to every vector as a point.
func (b Vec3Block32) Transform(m mat.Mat4[float32]) {
	for i := range b.Len() {
		b.Set(i, m.MulPoint(b.At(i)))
	}
}

// Dot returns the dot product of vector i with v.
func (b Vec3Block32) Dot(i int, v vec.Vec3[float32]) float32 {
	return b.At(i).Dot(v)
}
