package shape

import (
	"math"

	"github.com/cwbudde/algo-geom/vec"
)

// Sphere is a solid ball.
type Sphere[T vec.Float] struct {
	Center vec.Vec3[T]
	Radius T
}

// Kind returns KindSphere.
func (Sphere[T]) Kind() Kind { return KindSphere }

// Bounds returns the cube circumscribing the sphere.
func (s Sphere[T]) Bounds() AABB[T] {
	return AABBFromCenterExtents(s.Center, vec.Splat3(s.Radius))
}

// Contains reports whether p lies inside or on the sphere.
func (s Sphere[T]) Contains(p vec.Vec3[T]) bool {
	return vec.DistanceSquared(s.Center, p) <= s.Radius*s.Radius
}

// Volume returns 4/3·π·r³.
func (s Sphere[T]) Volume() T {
	return T(4.0/3.0*math.Pi) * s.Radius * s.Radius * s.Radius
}

// SurfaceArea returns 4·π·r².
func (s Sphere[T]) SurfaceArea() T {
	return T(4*math.Pi) * s.Radius * s.Radius
}
