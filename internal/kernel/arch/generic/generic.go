// Package generic contains scalar block kernels, one element per step.
package generic

import (
	"math"

	"github.com/cwbudde/algo-geom/internal/kernel"
	"github.com/cwbudde/algo-geom/lane"
	"github.com/cwbudde/algo-geom/vec"
)

// SinCosBlock computes dstSin[i], dstCos[i] = sin(x[i]), cos(x[i]).
// Slices must have equal length. Panics if lengths differ.
func SinCosBlock(dstSin, dstCos, x []float64) {
	if len(dstSin) != len(x) || len(dstCos) != len(x) {
		panic("kernel: slice length mismatch")
	}
	for i, v := range x {
		dstSin[i], dstCos[i] = kernel.SinCos(v)
	}
}

// RayAABBBlock writes the entry parameter of the ray into every box, or
// math.MaxFloat64 where it misses.
func RayAABBBlock(dst []float64, boxes *kernel.Boxes, origin, inv vec.Vec3[float64], parallel lane.M3) {
	if len(dst) != boxes.Len() {
		panic("kernel: slice length mismatch")
	}
	for i := range dst {
		enter, _, miss := kernel.SlabAt(boxes, i, origin, inv, parallel)
		dst[i] = lane.Select(miss, math.MaxFloat64, enter)
	}
}

// OverlapAABBBlock writes whether each box overlaps [qmin, qmax].
func OverlapAABBBlock(dst []bool, qmin, qmax vec.Vec3[float64], boxes *kernel.Boxes) {
	if len(dst) != boxes.Len() {
		panic("kernel: slice length mismatch")
	}
	for i := range dst {
		bmin, bmax := boxes.At(i)
		dst[i] = kernel.OverlapAABB(qmin, qmax, bmin, bmax).Bool()
	}
}
