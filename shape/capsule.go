package shape

import "github.com/cwbudde/algo-geom/vec"

// Capsule is the set of points within Radius of segment AB.
type Capsule[T vec.Float] struct {
	A, B   vec.Vec3[T]
	Radius T
}

// Kind returns KindCapsule.
func (Capsule[T]) Kind() Kind { return KindCapsule }

// Length returns the length of the core segment.
func (c Capsule[T]) Length() T { return vec.Distance(c.A, c.B) }

// Center returns the midpoint of the segment.
func (c Capsule[T]) Center() vec.Vec3[T] { return c.A.Add(c.B).Scale(0.5) }

// Bounds returns the tightest box around the capsule.
func (c Capsule[T]) Bounds() AABB[T] {
	return NewAABB(c.A, c.B).Grow(c.Radius)
}

// ClosestPoint returns the point of the core segment nearest to p.
func (c Capsule[T]) ClosestPoint(p vec.Vec3[T]) vec.Vec3[T] {
	return closestOnSegment(c.A, c.B, p)
}

// Contains reports whether p lies within Radius of the segment.
func (c Capsule[T]) Contains(p vec.Vec3[T]) bool {
	return vec.DistanceSquared(c.ClosestPoint(p), p) <= c.Radius*c.Radius
}

func closestOnSegment[T vec.Float](a, b, p vec.Vec3[T]) vec.Vec3[T] {
	ab := b.Sub(a)
	l2 := ab.LengthSquared()
	if l2 == 0 {
		return a
	}
	t := vec.ClampScalar(p.Sub(a).Dot(ab)/l2, 0, 1)
	return a.Add(ab.Scale(t))
}

// closestSegmentSegment returns the closest points between segments p1q1
// and p2q2 (Ericson, Real-Time Collision Detection 5.1.9).
func closestSegmentSegment[T vec.Float](p1, q1, p2, q2 vec.Vec3[T]) (c1, c2 vec.Vec3[T]) {
	d1 := q1.Sub(p1)
	d2 := q2.Sub(p2)
	r := p1.Sub(p2)
	a := d1.Dot(d1)
	e := d2.Dot(d2)
	f := d2.Dot(r)

	var s, t T
	switch {
	case a == 0 && e == 0:
		return p1, p2
	case a == 0:
		t = vec.ClampScalar(f/e, 0, 1)
	default:
		c := d1.Dot(r)
		if e == 0 {
			s = vec.ClampScalar(-c/a, 0, 1)
			break
		}
		b := d1.Dot(d2)
		denom := a*e - b*b
		if denom != 0 {
			s = vec.ClampScalar((b*f-c*e)/denom, 0, 1)
		}
		t = (b*s + f) / e
		if t < 0 {
			t = 0
			s = vec.ClampScalar(-c/a, 0, 1)
		} else if t > 1 {
			t = 1
			s = vec.ClampScalar((b-c)/a, 0, 1)
		}
	}
	return p1.Add(d1.Scale(s)), p2.Add(d2.Scale(t))
}
