package shape

import (
	"github.com/cwbudde/algo-geom/mat"
	"github.com/cwbudde/algo-geom/vec"
)

// AABB is an axis-aligned box. A box with any Min component greater than
// the matching Max component is empty; Intersect and EmptyAABB produce
// such boxes on purpose.
type AABB[T vec.Float] struct {
	Min, Max vec.Vec3[T]
}

// NewAABB returns the box spanned by two corner points in any order.
func NewAABB[T vec.Float](a, b vec.Vec3[T]) AABB[T] {
	return AABB[T]{Min: a.Min(b), Max: a.Max(b)}
}

// AABBFromCenterExtents builds a box from its center and half size.
func AABBFromCenterExtents[T vec.Float](center, extents vec.Vec3[T]) AABB[T] {
	return AABB[T]{Min: center.Sub(extents), Max: center.Add(extents)}
}

// EmptyAABB returns the inverted box that is the identity for ExpandBy and
// Union.
func EmptyAABB[T vec.Float]() AABB[T] {
	m := vec.MaxValue[T]()
	return AABB[T]{Min: vec.Splat3(m), Max: vec.Splat3(-m)}
}

// AABBFromPoints returns the tightest box containing pts, or EmptyAABB when
// pts is empty.
func AABBFromPoints[T vec.Float](pts ...vec.Vec3[T]) AABB[T] {
	b := EmptyAABB[T]()
	for _, p := range pts {
		b = b.ExpandBy(p)
	}
	return b
}

// Kind returns KindAABB.
func (AABB[T]) Kind() Kind { return KindAABB }

// Center returns the midpoint of the box.
func (b AABB[T]) Center() vec.Vec3[T] { return b.Min.Add(b.Max).Scale(0.5) }

// Extents returns the half size.
func (b AABB[T]) Extents() vec.Vec3[T] { return b.Max.Sub(b.Min).Scale(0.5) }

// Size returns Max - Min.
func (b AABB[T]) Size() vec.Vec3[T] { return b.Max.Sub(b.Min) }

// Volume returns the product of the side lengths.
func (b AABB[T]) Volume() T {
	s := b.Size()
	return s[0] * s[1] * s[2]
}

// SurfaceArea returns the total area of the six faces.
func (b AABB[T]) SurfaceArea() T {
	s := b.Size()
	return 2 * (s[0]*s[1] + s[1]*s[2] + s[2]*s[0])
}

// IsEmpty reports whether the box is inverted on any axis.
func (b AABB[T]) IsEmpty() bool { return b.Min.Greater(b.Max).Any() }

// Contains reports whether p lies inside or on the box.
func (b AABB[T]) Contains(p vec.Vec3[T]) bool {
	return !p.Less(b.Min).Or(p.Greater(b.Max)).Any()
}

// ContainsAABB reports whether o lies entirely inside b.
func (b AABB[T]) ContainsAABB(o AABB[T]) bool {
	return !o.Min.Less(b.Min).Or(o.Max.Greater(b.Max)).Any()
}

// ExpandBy returns the smallest box containing b and p.
func (b AABB[T]) ExpandBy(p vec.Vec3[T]) AABB[T] {
	return AABB[T]{Min: b.Min.Min(p), Max: b.Max.Max(p)}
}

// Grow pads every face outwards by d.
func (b AABB[T]) Grow(d T) AABB[T] {
	pad := vec.Splat3(d)
	return AABB[T]{Min: b.Min.Sub(pad), Max: b.Max.Add(pad)}
}

// Union returns the smallest box containing b and o.
func (b AABB[T]) Union(o AABB[T]) AABB[T] {
	return AABB[T]{Min: b.Min.Min(o.Min), Max: b.Max.Max(o.Max)}
}

// Intersect returns the overlap of b and o, which is empty when they are
// disjoint.
func (b AABB[T]) Intersect(o AABB[T]) AABB[T] {
	return AABB[T]{Min: b.Min.Max(o.Min), Max: b.Max.Min(o.Max)}
}

// ClosestPoint returns the point of b nearest to p.
func (b AABB[T]) ClosestPoint(p vec.Vec3[T]) vec.Vec3[T] {
	return vec.Clamp(p, b.Min, b.Max)
}

// Corners returns the eight vertices; bit k of the index selects Max on
// axis k.
func (b AABB[T]) Corners() [8]vec.Vec3[T] {
	var out [8]vec.Vec3[T]
	for i := range out {
		for k := range 3 {
			if i&(1<<k) != 0 {
				out[i][k] = b.Max[k]
			} else {
				out[i][k] = b.Min[k]
			}
		}
	}
	return out
}

// Translate moves the box by d.
func (b AABB[T]) Translate(d vec.Vec3[T]) AABB[T] {
	return AABB[T]{Min: b.Min.Add(d), Max: b.Max.Add(d)}
}

// Transform returns the box bounding b under the affine transform m
// (Arvo's method).
func (b AABB[T]) Transform(m mat.Mat4[T]) AABB[T] {
	t := m[3].XYZ()
	lo, hi := t, t
	for j := range 3 {
		a := m[j].XYZ().Scale(b.Min[j])
		c := m[j].XYZ().Scale(b.Max[j])
		lo = lo.Add(a.Min(c))
		hi = hi.Add(a.Max(c))
	}
	return AABB[T]{Min: lo, Max: hi}
}
