package shape

import "github.com/cwbudde/algo-geom/vec"

// Plane is the set of points p with Normal·p + C = 0. Distances are metric
// only when Normal is unit length.
type Plane[T vec.Float] struct {
	Normal vec.Vec3[T]
	C      T
}

// PlaneFromPointNormal returns the plane through p with normal n.
func PlaneFromPointNormal[T vec.Float](p, n vec.Vec3[T]) Plane[T] {
	return Plane[T]{Normal: n, C: -n.Dot(p)}
}

// PlaneFromPoints returns the plane through a, b and c with a unit normal
// facing the side from which the points wind counter-clockwise.
func PlaneFromPoints[T vec.Float](a, b, c vec.Vec3[T]) Plane[T] {
	n := vec.Normalize(b.Sub(a).Cross(c.Sub(a)))
	return PlaneFromPointNormal(a, n)
}

// Kind returns KindPlane.
func (Plane[T]) Kind() Kind { return KindPlane }

// SignedDistance is positive on the side the normal points to.
func (p Plane[T]) SignedDistance(q vec.Vec3[T]) T {
	return p.Normal.Dot(q) + p.C
}

// Normalize rescales the plane to a unit normal.
func (p Plane[T]) Normalize() Plane[T] {
	inv := 1 / vec.Length(p.Normal)
	return Plane[T]{Normal: p.Normal.Scale(inv), C: p.C * inv}
}

// Project returns the foot of the perpendicular from q.
func (p Plane[T]) Project(q vec.Vec3[T]) vec.Vec3[T] {
	return q.Sub(p.Normal.Scale(p.SignedDistance(q)))
}

// Flip reverses the facing of the plane.
func (p Plane[T]) Flip() Plane[T] {
	return Plane[T]{Normal: p.Normal.Neg(), C: -p.C}
}
