// Package lanes contains block kernels that process four elements per step
// through the 4-lane cores, with a scalar tail.
package lanes

import (
	"math"

	"github.com/cwbudde/algo-geom/internal/kernel"
	"github.com/cwbudde/algo-geom/lane"
	"github.com/cwbudde/algo-geom/vec"
)

const width = 4

// SinCosBlock computes dstSin[i], dstCos[i] = sin(x[i]), cos(x[i]).
// Slices must have equal length. Panics if lengths differ.
func SinCosBlock(dstSin, dstCos, x []float64) {
	n := len(x)
	if len(dstSin) != n || len(dstCos) != n {
		panic("kernel: slice length mismatch")
	}

	i := 0
	for ; i+width <= n; i += width {
		s, c := kernel.SinCos4([4]float64(x[i : i+width]))
		copy(dstSin[i:i+width], s[:])
		copy(dstCos[i:i+width], c[:])
	}
	for ; i < n; i++ {
		dstSin[i], dstCos[i] = kernel.SinCos(x[i])
	}
}

// RayAABBBlock writes the entry parameter of the ray into every box, or
// math.MaxFloat64 where it misses.
func RayAABBBlock(dst []float64, boxes *kernel.Boxes, origin, inv vec.Vec3[float64], parallel lane.M3) {
	n := boxes.Len()
	if len(dst) != n {
		panic("kernel: slice length mismatch")
	}

	miss4 := vec.Splat4(math.MaxFloat64)
	i := 0
	for ; i+width <= n; i += width {
		var enter vec.Vec4[float64]
		var miss lane.M4
		for l := 0; l < width; l++ {
			enter[l], _, miss[l] = kernel.SlabAt(boxes, i+l, origin, inv, parallel)
		}
		out := lane.Select4(miss, miss4, enter)
		copy(dst[i:i+width], out[:])
	}
	for ; i < n; i++ {
		enter, _, miss := kernel.SlabAt(boxes, i, origin, inv, parallel)
		dst[i] = lane.Select(miss, math.MaxFloat64, enter)
	}
}

// OverlapAABBBlock writes whether each box overlaps [qmin, qmax].
func OverlapAABBBlock(dst []bool, qmin, qmax vec.Vec3[float64], boxes *kernel.Boxes) {
	n := boxes.Len()
	if len(dst) != n {
		panic("kernel: slice length mismatch")
	}

	i := 0
	for ; i+width <= n; i += width {
		minX, minY, minZ, maxX, maxY, maxZ := kernel.Load4(boxes, i)
		hit := kernel.OverlapAABB4(qmin, qmax, minX, minY, minZ, maxX, maxY, maxZ).Bools()
		copy(dst[i:i+width], hit[:])
	}
	for ; i < n; i++ {
		bmin, bmax := boxes.At(i)
		dst[i] = kernel.OverlapAABB(qmin, qmax, bmin, bmax).Bool()
	}
}
