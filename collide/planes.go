package collide

import (
	"github.com/cwbudde/algo-geom/shape"
	"github.com/cwbudde/algo-geom/vec"
)

// IntersectPlanes returns the point common to three planes by Cramer's
// rule. ok is false when the normals are linearly dependent, tested as an
// exactly zero triple product.
func IntersectPlanes[T vec.Float](p1, p2, p3 shape.Plane[T]) (p vec.Vec3[T], ok bool) {
	n23 := p2.Normal.Cross(p3.Normal)
	det := p1.Normal.Dot(n23)
	if det == 0 {
		return vec.Vec3[T]{}, false
	}
	n31 := p3.Normal.Cross(p1.Normal)
	n12 := p1.Normal.Cross(p2.Normal)
	sum := n23.Scale(-p1.C).Add(n31.Scale(-p2.C)).Add(n12.Scale(-p3.C))
	return sum.Scale(1 / det), true
}
