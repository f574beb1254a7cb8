package collide

import (
	"github.com/cwbudde/algo-geom/internal/kernel"
	"github.com/cwbudde/algo-geom/lane"
	"github.com/cwbudde/algo-geom/shape"
	"github.com/cwbudde/algo-geom/vec"
)

// ParallelEpsilon is the magnitude below which a direction component is
// treated as parallel to the matching slab pair.
const ParallelEpsilon = 1e-12

// InvDirection caches the reciprocal of a ray direction. Parallel
// components carry a zero reciprocal.
type InvDirection[T vec.Float] struct {
	Inv      vec.Vec3[T]
	Parallel vec.Bool3
}

// NewInvDirection precomputes the reciprocal of dir.
func NewInvDirection[T vec.Float](dir vec.Vec3[T]) InvDirection[T] {
	par := lane.Lt3(dir.Abs(), vec.Splat3(T(ParallelEpsilon)))
	safe := lane.Select3(par, vec.Splat3[T](1), dir)
	inv := lane.Select3(par, vec.Vec3[T]{}, vec.Splat3[T](1).Div(safe))
	return InvDirection[T]{Inv: inv, Parallel: par.Bools()}
}

func (d InvDirection[T]) mask() lane.M3 { return lane.FromBool3(d.Parallel) }

// RayAABB returns the entry parameter of the ray origin + t·dir into box,
// or vec.MaxValue[T]() if it misses. A negative result means the origin is
// inside the box.
func RayAABB[T vec.Float](box shape.AABB[T], origin vec.Vec3[T], inv InvDirection[T]) T {
	enter, _, miss := kernel.Slab(box.Min, box.Max, origin, inv.Inv, inv.mask())
	return lane.Select(miss, vec.MaxValue[T](), enter)
}

// RayAABBEnterExit returns the entry and exit parameters, or
// (+max, -max) if the ray misses.
func RayAABBEnterExit[T vec.Float](box shape.AABB[T], origin vec.Vec3[T], inv InvDirection[T]) (enter, exit T) {
	e, x, miss := kernel.Slab(box.Min, box.Max, origin, inv.Inv, inv.mask())
	m := vec.MaxValue[T]()
	return lane.Select(miss, m, e), lane.Select(miss, -m, x)
}

// RayTriangle returns the parameter at which the ray origin + t·dir hits
// triangle (v0, v1, v2) from either side, or vec.MaxValue[T]() if it
// misses. Rays within 1e-12 of the triangle's plane and degenerate
// triangles miss.
func RayTriangle[T vec.Float](origin, dir, v0, v1, v2 vec.Vec3[T]) T {
	t, _, _, miss := mollerTrumbore(origin, dir, v0, v1, v2)
	return lane.Select(miss, vec.MaxValue[T](), t)
}

func mollerTrumbore[T vec.Float](origin, dir, v0, v1, v2 vec.Vec3[T]) (t, u, v T, miss lane.Mask) {
	e1 := v1.Sub(v0)
	e2 := v2.Sub(v0)
	p := dir.Cross(e2)
	det := e1.Dot(p)

	degenerate := lane.FromBool(vec.Abs(det) < T(ParallelEpsilon))
	inv := 1 / lane.Select(degenerate, 1, det)

	s := origin.Sub(v0)
	u = s.Dot(p) * inv
	q := s.Cross(e1)
	v = dir.Dot(q) * inv
	t = e2.Dot(q) * inv

	miss = degenerate |
		lane.FromBool(u < 0) |
		lane.FromBool(v < 0) |
		lane.FromBool(u+v > 1) |
		lane.FromBool(t < 0)
	return t, u, v, miss
}
