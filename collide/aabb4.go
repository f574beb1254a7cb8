package collide

import (
	"github.com/cwbudde/algo-geom/internal/kernel"
	"github.com/cwbudde/algo-geom/shape"
	"github.com/cwbudde/algo-geom/vec"
)

// AABB4 holds four boxes as lane vectors, one per coordinate.
type AABB4[T vec.Float] struct {
	MinX, MinY, MinZ vec.Vec4[T]
	MaxX, MaxY, MaxZ vec.Vec4[T]
}

// PackAABB4 transposes four boxes into lanes.
func PackAABB4[T vec.Float](boxes [4]shape.AABB[T]) AABB4[T] {
	var p AABB4[T]
	for i, b := range boxes {
		p.MinX[i], p.MinY[i], p.MinZ[i] = b.Min[0], b.Min[1], b.Min[2]
		p.MaxX[i], p.MaxY[i], p.MaxZ[i] = b.Max[0], b.Max[1], b.Max[2]
	}
	return p
}

// Box returns lane i as an AABB.
func (p AABB4[T]) Box(i int) shape.AABB[T] {
	return shape.AABB[T]{
		Min: vec.Vec3[T]{p.MinX[i], p.MinY[i], p.MinZ[i]},
		Max: vec.Vec3[T]{p.MaxX[i], p.MaxY[i], p.MaxZ[i]},
	}
}

// Test4Boxes runs the box separating-axis test of query against all four
// lanes at once.
func Test4Boxes[T vec.Float](query shape.AABB[T], boxes AABB4[T]) vec.Bool4 {
	return kernel.OverlapAABB4(query.Min, query.Max,
		boxes.MinX, boxes.MinY, boxes.MinZ, boxes.MaxX, boxes.MaxY, boxes.MaxZ).Bools()
}

// OverlapAABB4 is Test4Boxes.
func OverlapAABB4[T vec.Float](query shape.AABB[T], boxes AABB4[T]) vec.Bool4 {
	return Test4Boxes(query, boxes)
}
