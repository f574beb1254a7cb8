package collide

import (
	"sync"

	"github.com/cwbudde/algo-geom/internal/cpu"
	"github.com/cwbudde/algo-geom/internal/kernel"
	"github.com/cwbudde/algo-geom/internal/kernel/registry"
	"github.com/cwbudde/algo-geom/lane"
	"github.com/cwbudde/algo-geom/shape"
	"github.com/cwbudde/algo-geom/vec"
)

// Boxes is a batch of float64 boxes stored as six coordinate slices.
type Boxes = kernel.Boxes

// NewBoxes allocates n zeroed boxes.
func NewBoxes(n int) Boxes { return kernel.NewBoxes(n) }

// BoxesFrom copies boxes into structure-of-arrays form.
func BoxesFrom(boxes []shape.AABB[float64]) Boxes {
	b := kernel.NewBoxes(len(boxes))
	for i, box := range boxes {
		b.Set(i, box.Min, box.Max)
	}
	return b
}

var (
	rayAABBBlockImpl     func(dst []float64, boxes *kernel.Boxes, origin, inv vec.Vec3[float64], parallel lane.M3)
	overlapAABBBlockImpl func(dst []bool, qmin, qmax vec.Vec3[float64], boxes *kernel.Boxes)
	blockInitOnce        sync.Once
)

func initBlockOperations() {
	features := cpu.DetectFeatures()
	entry := registry.Global.Lookup(features)
	if entry == nil {
		panic("collide: no block implementation registered")
	}
	if entry.RayAABBBlock == nil || entry.OverlapAABBBlock == nil {
		panic("collide: selected implementation missing box operations")
	}
	rayAABBBlockImpl = entry.RayAABBBlock
	overlapAABBBlockImpl = entry.OverlapAABBBlock
}

// RayAABBBlock writes RayAABB for every box into dst. Panics if
// len(dst) != boxes.Len().
func RayAABBBlock(dst []float64, boxes *Boxes, origin vec.Vec3[float64], inv InvDirection[float64]) {
	blockInitOnce.Do(initBlockOperations)
	rayAABBBlockImpl(dst, boxes, origin, inv.Inv, inv.mask())
}

// OverlapAABBBlock writes OverlapAABBAABB(query, box) for every box into
// dst. Panics if len(dst) != boxes.Len().
func OverlapAABBBlock(dst []bool, query shape.AABB[float64], boxes *Boxes) {
	blockInitOnce.Do(initBlockOperations)
	overlapAABBBlockImpl(dst, query.Min, query.Max, boxes)
}
