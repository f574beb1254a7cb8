package collide

import (
	"github.com/cwbudde/algo-geom/shape"
	"github.com/cwbudde/algo-geom/vec"
)

// Ray is a half line with its reciprocal direction precomputed. Build it
// with NewRay.
type Ray[T vec.Float] struct {
	Origin vec.Vec3[T]
	Dir    vec.Vec3[T]
	Inv    InvDirection[T]
}

// NewRay returns the ray origin + t·dir for t ≥ 0.
func NewRay[T vec.Float](origin, dir vec.Vec3[T]) Ray[T] {
	return Ray[T]{Origin: origin, Dir: dir, Inv: NewInvDirection(dir)}
}

// At returns origin + t·dir.
func (r Ray[T]) At(t T) vec.Vec3[T] { return r.Origin.Add(r.Dir.Scale(t)) }

// Hit describes where a ray meets a primitive. U and V are barycentric
// weights of the second and third triangle vertex; they are zero for boxes.
type Hit[T vec.Float] struct {
	Dist   T
	Point  vec.Vec3[T]
	Normal vec.Vec3[T]
	U, V   T
}

// CastAABB reports whether r meets box. When the origin is inside the box,
// Dist is negative and Normal is zero; otherwise Normal is the outward
// normal of the entry face.
func CastAABB[T vec.Float](r Ray[T], box shape.AABB[T]) (Hit[T], bool) {
	enter, _ := RayAABBEnterExit(box, r.Origin, r.Inv)
	if enter == vec.MaxValue[T]() {
		return Hit[T]{}, false
	}
	h := Hit[T]{Dist: enter, Point: r.At(enter)}
	if enter >= 0 {
		h.Normal = entryNormal(r, box, enter)
	}
	return h, true
}

func entryNormal[T vec.Float](r Ray[T], box shape.AABB[T], enter T) vec.Vec3[T] {
	var n vec.Vec3[T]
	for k := range 3 {
		if r.Inv.Parallel[k] {
			continue
		}
		t1 := (box.Min[k] - r.Origin[k]) * r.Inv.Inv[k]
		t2 := (box.Max[k] - r.Origin[k]) * r.Inv.Inv[k]
		if min(t1, t2) == enter {
			n[k] = 1
			if r.Dir[k] > 0 {
				n[k] = -1
			}
			break
		}
	}
	return n
}

// CastTriangle reports whether r meets tri from either side. Normal is the
// unit front-face normal.
func CastTriangle[T vec.Float](r Ray[T], tri shape.Triangle[T]) (Hit[T], bool) {
	t, u, v, miss := mollerTrumbore(r.Origin, r.Dir, tri.A, tri.B, tri.C)
	if miss.Bool() {
		return Hit[T]{}, false
	}
	return Hit[T]{Dist: t, Point: r.At(t), Normal: tri.UnitNormal(), U: u, V: v}, true
}
