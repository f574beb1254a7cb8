package kernel

import "github.com/cwbudde/algo-geom/vec"

// Boxes is a structure-of-arrays batch of axis-aligned boxes.
type Boxes struct {
	MinX, MinY, MinZ []float64
	MaxX, MaxY, MaxZ []float64
}

// NewBoxes allocates n zeroed boxes.
func NewBoxes(n int) Boxes {
	return Boxes{
		MinX: make([]float64, n), MinY: make([]float64, n), MinZ: make([]float64, n),
		MaxX: make([]float64, n), MaxY: make([]float64, n), MaxZ: make([]float64, n),
	}
}

// Len returns the number of boxes. It panics if the six slices disagree.
func (b *Boxes) Len() int {
	n := len(b.MinX)
	if len(b.MinY) != n || len(b.MinZ) != n || len(b.MaxX) != n || len(b.MaxY) != n || len(b.MaxZ) != n {
		panic("kernel: slice length mismatch")
	}
	return n
}

// Set stores box i.
func (b *Boxes) Set(i int, bmin, bmax vec.Vec3[float64]) {
	b.MinX[i], b.MinY[i], b.MinZ[i] = bmin[0], bmin[1], bmin[2]
	b.MaxX[i], b.MaxY[i], b.MaxZ[i] = bmax[0], bmax[1], bmax[2]
}

// At returns box i.
func (b *Boxes) At(i int) (bmin, bmax vec.Vec3[float64]) {
	return vec.Vec3[float64]{b.MinX[i], b.MinY[i], b.MinZ[i]},
		vec.Vec3[float64]{b.MaxX[i], b.MaxY[i], b.MaxZ[i]}
}
