package shape

import (
	"github.com/cwbudde/algo-geom/internal/kernel"
	"github.com/cwbudde/algo-geom/lane"
	"github.com/cwbudde/algo-geom/vec"
)

// OverlapSphereSphere reports whether the balls touch or intersect.
func OverlapSphereSphere[T vec.Float](a, b Sphere[T]) bool {
	r := a.Radius + b.Radius
	return vec.DistanceSquared(a.Center, b.Center) <= r*r
}

// OverlapAABBAABB reports whether no axis separates a and b. Touching
// faces overlap.
func OverlapAABBAABB[T vec.Float](a, b AABB[T]) bool {
	return kernel.OverlapAABB(a.Min, a.Max, b.Min, b.Max).Bool()
}

// OverlapAABBPlane reports whether the plane passes through or touches the
// box, by the signs of the distances to the box's support points along
// ±Normal.
func OverlapAABBPlane[T vec.Float](a AABB[T], p Plane[T]) bool {
	pos := lane.Ge3(p.Normal, vec.Vec3[T]{})
	hi := lane.Select3(pos, a.Max, a.Min)
	lo := lane.Select3(pos, a.Min, a.Max)
	return p.SignedDistance(hi)*p.SignedDistance(lo) <= 0
}

// OverlapSphereAABB compares the distance from the center to the box's
// closest point against the radius.
func OverlapSphereAABB[T vec.Float](s Sphere[T], a AABB[T]) bool {
	return vec.DistanceSquared(a.ClosestPoint(s.Center), s.Center) <= s.Radius*s.Radius
}

// OverlapSpherePlane reports whether the plane cuts or touches the ball.
func OverlapSpherePlane[T vec.Float](s Sphere[T], p Plane[T]) bool {
	return vec.Abs(p.SignedDistance(s.Center)) <= s.Radius
}

// OverlapCapsuleSphere compares the distance from the sphere center to the
// capsule segment against the sum of radii.
func OverlapCapsuleSphere[T vec.Float](c Capsule[T], s Sphere[T]) bool {
	r := c.Radius + s.Radius
	return vec.DistanceSquared(c.ClosestPoint(s.Center), s.Center) <= r*r
}

// OverlapCapsulePlane reports whether the plane cuts the segment or lies
// within Radius of an end point.
func OverlapCapsulePlane[T vec.Float](c Capsule[T], p Plane[T]) bool {
	da := p.SignedDistance(c.A)
	db := p.SignedDistance(c.B)
	return da*db <= 0 || min(vec.Abs(da), vec.Abs(db)) <= c.Radius
}

// OverlapCapsuleCapsule compares the distance between the two segments
// against the sum of radii.
func OverlapCapsuleCapsule[T vec.Float](a, b Capsule[T]) bool {
	p, q := closestSegmentSegment(a.A, a.B, b.A, b.B)
	r := a.Radius + b.Radius
	return vec.DistanceSquared(p, q) <= r*r
}
