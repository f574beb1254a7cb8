package kernel

import (
	"github.com/cwbudde/algo-geom/lane"
	"github.com/cwbudde/algo-geom/vec"
)

// Slab runs the three-axis slab test as one 3-lane operation. It returns the
// entry and exit parameters and a mask set when the ray misses.
//
// Parallel lanes must carry a zero reciprocal; their interval is replaced by
// (-Inf, +Inf) and the hit is instead decided by whether the origin lies
// inside that slab.
func Slab[T vec.Float](bmin, bmax, origin, inv vec.Vec3[T], parallel lane.M3) (enter, exit T, miss lane.Mask) {
	t1 := bmin.Sub(origin).Mul(inv)
	t2 := bmax.Sub(origin).Mul(inv)

	tmin := lane.Select3(parallel, vec.Splat3(vec.Inf[T](-1)), t1.Min(t2))
	tmax := lane.Select3(parallel, vec.Splat3(vec.Inf[T](1)), t1.Max(t2))

	enter = lane.HMax3(tmin)
	exit = lane.HMin3(tmax)

	outside := lane.Lt3(origin, bmin).Or(lane.Gt3(origin, bmax)).And(parallel).Any()
	miss = lane.FromBool(enter > exit) | lane.FromBool(exit < 0) | outside
	return enter, exit, miss
}

// SlabAt runs Slab against box i of b.
func SlabAt(b *Boxes, i int, origin, inv vec.Vec3[float64], parallel lane.M3) (enter, exit float64, miss lane.Mask) {
	bmin, bmax := b.At(i)
	return Slab(bmin, bmax, origin, inv, parallel)
}
