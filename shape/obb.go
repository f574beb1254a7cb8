package shape

import (
	"github.com/cwbudde/algo-geom/mat"
	"github.com/cwbudde/algo-geom/vec"
)

// OBB is an oriented box. The columns of Axes are its local unit axes and
// HalfExtents is its half size along each of them.
type OBB[T vec.Float] struct {
	Center      vec.Vec3[T]
	HalfExtents vec.Vec3[T]
	Axes        mat.Mat3[T]
}

// OBBFromAABB returns box under the affine transform m. Scale in m moves
// into HalfExtents; shear is not representable and is dropped.
func OBBFromAABB[T vec.Float](box AABB[T], m mat.Mat4[T]) OBB[T] {
	r := m.Mat3()
	o := OBB[T]{Center: m.MulPoint(box.Center())}
	e := box.Extents()
	for i := range 3 {
		l := vec.Length(r[i])
		o.Axes[i] = r[i].Scale(1 / l)
		o.HalfExtents[i] = e[i] * l
	}
	return o
}

// Kind returns KindOBB.
func (OBB[T]) Kind() Kind { return KindOBB }

// local returns p in box coordinates.
func (o OBB[T]) local(p vec.Vec3[T]) vec.Vec3[T] {
	return o.Axes.Transpose().MulVec(p.Sub(o.Center))
}

// Contains reports whether p lies inside the box.
func (o OBB[T]) Contains(p vec.Vec3[T]) bool {
	return !o.local(p).Abs().Greater(o.HalfExtents).Any()
}

// ClosestPoint returns the point of the box nearest to p.
func (o OBB[T]) ClosestPoint(p vec.Vec3[T]) vec.Vec3[T] {
	l := vec.Clamp(o.local(p), o.HalfExtents.Neg(), o.HalfExtents)
	return o.Center.Add(o.Axes.MulVec(l))
}

// Corners returns the eight vertices; bit k of the index selects the
// positive side of axis k.
func (o OBB[T]) Corners() [8]vec.Vec3[T] {
	var out [8]vec.Vec3[T]
	for i := range out {
		var l vec.Vec3[T]
		for k := range 3 {
			l[k] = -o.HalfExtents[k]
			if i&(1<<k) != 0 {
				l[k] = o.HalfExtents[k]
			}
		}
		out[i] = o.Center.Add(o.Axes.MulVec(l))
	}
	return out
}

// Bounds returns the axis-aligned box around the corners.
func (o OBB[T]) Bounds() AABB[T] {
	abs := mat.Mat3[T]{o.Axes[0].Abs(), o.Axes[1].Abs(), o.Axes[2].Abs()}
	return AABBFromCenterExtents(o.Center, abs.MulVec(o.HalfExtents))
}
