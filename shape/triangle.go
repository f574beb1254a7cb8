package shape

import "github.com/cwbudde/algo-geom/vec"

// Triangle is wound A, B, C; the front face sees them counter-clockwise.
type Triangle[T vec.Float] struct {
	A, B, C vec.Vec3[T]
}

// Kind returns KindTriangle.
func (Triangle[T]) Kind() Kind { return KindTriangle }

// Normal returns the unnormalised front-face normal, whose length is twice
// the area.
func (t Triangle[T]) Normal() vec.Vec3[T] {
	return t.B.Sub(t.A).Cross(t.C.Sub(t.A))
}

// UnitNormal returns the normalised front-face normal.
func (t Triangle[T]) UnitNormal() vec.Vec3[T] { return vec.Normalize(t.Normal()) }

// Centroid returns the mean of the vertices.
func (t Triangle[T]) Centroid() vec.Vec3[T] {
	return t.A.Add(t.B).Add(t.C).Scale(T(1) / 3)
}

// Area returns the triangle area.
func (t Triangle[T]) Area() T { return vec.Length(t.Normal()) / 2 }

// Bounds returns the box around the vertices.
func (t Triangle[T]) Bounds() AABB[T] { return AABBFromPoints(t.A, t.B, t.C) }

// Plane returns the supporting plane with the CCW normal.
func (t Triangle[T]) Plane() Plane[T] { return PlaneFromPoints(t.A, t.B, t.C) }
