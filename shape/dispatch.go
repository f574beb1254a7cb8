package shape

import "github.com/cwbudde/algo-geom/vec"

// AABBTester is implemented by the primitives that can be tested against an
// AABB: AABB, Sphere and Plane.
type AABBTester[T vec.Float] interface {
	overlapsAABB(AABB[T]) bool
}

// SphereTester is implemented by AABB, Sphere, Plane and Capsule.
type SphereTester[T vec.Float] interface {
	overlapsSphere(Sphere[T]) bool
}

// PlaneTester is implemented by AABB, Sphere and Capsule. Plane does not
// implement it.
type PlaneTester[T vec.Float] interface {
	overlapsPlane(Plane[T]) bool
}

// CapsuleTester is implemented by Sphere, Plane and Capsule.
type CapsuleTester[T vec.Float] interface {
	overlapsCapsule(Capsule[T]) bool
}

// Overlaps reports whether b touches or intersects a.
func (a AABB[T]) Overlaps(b AABBTester[T]) bool { return b.overlapsAABB(a) }

func (a AABB[T]) overlapsAABB(o AABB[T]) bool     { return OverlapAABBAABB(o, a) }
func (a AABB[T]) overlapsSphere(s Sphere[T]) bool { return OverlapSphereAABB(s, a) }
func (a AABB[T]) overlapsPlane(p Plane[T]) bool   { return OverlapAABBPlane(a, p) }

// Overlaps reports whether b touches or intersects s.
func (s Sphere[T]) Overlaps(b SphereTester[T]) bool { return b.overlapsSphere(s) }

func (s Sphere[T]) overlapsAABB(a AABB[T]) bool       { return OverlapSphereAABB(s, a) }
func (s Sphere[T]) overlapsSphere(o Sphere[T]) bool   { return OverlapSphereSphere(o, s) }
func (s Sphere[T]) overlapsPlane(p Plane[T]) bool     { return OverlapSpherePlane(s, p) }
func (s Sphere[T]) overlapsCapsule(c Capsule[T]) bool { return OverlapCapsuleSphere(c, s) }

// Overlaps reports whether b touches or crosses p.
func (p Plane[T]) Overlaps(b PlaneTester[T]) bool { return b.overlapsPlane(p) }

func (p Plane[T]) overlapsAABB(a AABB[T]) bool       { return OverlapAABBPlane(a, p) }
func (p Plane[T]) overlapsSphere(s Sphere[T]) bool   { return OverlapSpherePlane(s, p) }
func (p Plane[T]) overlapsCapsule(c Capsule[T]) bool { return OverlapCapsulePlane(c, p) }

// Overlaps reports whether b touches or intersects c.
func (c Capsule[T]) Overlaps(b CapsuleTester[T]) bool { return b.overlapsCapsule(c) }

func (c Capsule[T]) overlapsSphere(s Sphere[T]) bool   { return OverlapCapsuleSphere(c, s) }
func (c Capsule[T]) overlapsPlane(p Plane[T]) bool     { return OverlapCapsulePlane(c, p) }
func (c Capsule[T]) overlapsCapsule(o Capsule[T]) bool { return OverlapCapsuleCapsule(o, c) }
