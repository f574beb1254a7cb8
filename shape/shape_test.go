package shape

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-geom/mat"
	"github.com/cwbudde/algo-geom/vec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type v3 = vec.Vec3[float64]

func TestNewAABBOrdersCorners(t *testing.T) {
	b := NewAABB(v3{1, -2, 3}, v3{-1, 2, 0})
	assert.Equal(t, v3{-1, -2, 0}, b.Min)
	assert.Equal(t, v3{1, 2, 3}, b.Max)
	assert.False(t, b.IsEmpty())
	assert.Equal(t, v3{0, 0, 1.5}, b.Center())
	assert.Equal(t, v3{1, 2, 1.5}, b.Extents())
	assert.Equal(t, 24.0, b.Volume())
	assert.Equal(t, 2*(8.0+12+6), b.SurfaceArea())
}

func TestAABBIntersectSelfIsIdempotent(t *testing.T) {
	boxes := []AABB[float64]{
		NewAABB(v3{0, 0, 0}, v3{1, 1, 1}),
		NewAABB(v3{-5, 2, 3}, v3{7, 2.5, 9}),
		AABBFromCenterExtents(v3{1, 1, 1}, v3{0, 0, 0}),
	}
	for _, b := range boxes {
		assert.Equal(t, b, b.Intersect(b))
		assert.Equal(t, b, b.Union(b))
	}
}

func TestAABBIntersectDisjointIsEmpty(t *testing.T) {
	a := NewAABB(v3{0, 0, 0}, v3{1, 1, 1})
	b := NewAABB(v3{2, 0, 0}, v3{3, 1, 1})
	assert.True(t, a.Intersect(b).IsEmpty())
	assert.False(t, a.Union(b).IsEmpty())
	assert.True(t, EmptyAABB[float64]().IsEmpty())
}

func TestAABBFromPointsAndExpand(t *testing.T) {
	b := AABBFromPoints(v3{1, 2, 3}, v3{-1, 0, 5}, v3{0, 4, 4})
	assert.Equal(t, v3{-1, 0, 3}, b.Min)
	assert.Equal(t, v3{1, 4, 5}, b.Max)
	assert.True(t, AABBFromPoints[float64]().IsEmpty())

	g := b.Grow(1)
	assert.Equal(t, v3{-2, -1, 2}, g.Min)
	assert.True(t, g.ContainsAABB(b))
	assert.False(t, b.ContainsAABB(g))
}

func TestAABBContainsAndClosest(t *testing.T) {
	b := NewAABB(v3{0, 0, 0}, v3{2, 2, 2})
	assert.True(t, b.Contains(v3{1, 1, 1}))
	assert.True(t, b.Contains(v3{2, 0, 1}))
	assert.False(t, b.Contains(v3{2.1, 1, 1}))
	assert.Equal(t, v3{2, 1, 0}, b.ClosestPoint(v3{5, 1, -3}))
	assert.Equal(t, v3{1, 1, 1}, b.ClosestPoint(v3{1, 1, 1}))
}

func TestAABBCorners(t *testing.T) {
	b := NewAABB(v3{0, 0, 0}, v3{1, 2, 3})
	c := b.Corners()
	assert.Equal(t, b.Min, c[0])
	assert.Equal(t, b.Max, c[7])
	assert.Equal(t, v3{1, 0, 0}, c[1])
	assert.Equal(t, v3{0, 2, 3}, c[6])
	assert.Equal(t, b, AABBFromPoints(c[:]...))
}

func TestAABBTransform(t *testing.T) {
	b := NewAABB(v3{-1, -1, -1}, v3{1, 1, 1})
	m := mat.Translation(v3{10, 0, 0}).Mul(mat.RotationZ(math.Pi / 4))
	got := b.Transform(m)

	want := EmptyAABB[float64]()
	for _, c := range b.Corners() {
		want = want.ExpandBy(m.MulPoint(c))
	}
	assert.True(t, vec.NearlyEqual(got.Min, want.Min, 1e-12), "min %v want %v", got.Min, want.Min)
	assert.True(t, vec.NearlyEqual(got.Max, want.Max, 1e-12), "max %v want %v", got.Max, want.Max)
	assert.InDelta(t, 10-math.Sqrt2, got.Min[0], 1e-12)

	assert.Equal(t, b.Translate(v3{1, 2, 3}), b.Transform(mat.Translation(v3{1, 2, 3})))
}

func TestSphere(t *testing.T) {
	s := Sphere[float64]{Center: v3{1, 0, 0}, Radius: 2}
	assert.Equal(t, NewAABB(v3{-1, -2, -2}, v3{3, 2, 2}), s.Bounds())
	assert.True(t, s.Contains(v3{3, 0, 0}))
	assert.False(t, s.Contains(v3{3, 0.1, 0}))
	assert.InDelta(t, 32*math.Pi/3, s.Volume(), 1e-12)
	assert.InDelta(t, 16*math.Pi, s.SurfaceArea(), 1e-12)
}

func TestPlane(t *testing.T) {
	p := PlaneFromPointNormal(v3{0, 2, 0}, v3{0, 1, 0})
	assert.Equal(t, -2.0, p.C)
	assert.Equal(t, 3.0, p.SignedDistance(v3{7, 5, -1}))
	assert.Equal(t, v3{7, 2, -1}, p.Project(v3{7, 5, -1}))
	assert.Equal(t, -3.0, p.Flip().SignedDistance(v3{7, 5, -1}))

	q := PlaneFromPoints(v3{0, 0, 0}, v3{1, 0, 0}, v3{0, 1, 0})
	assert.Equal(t, v3{0, 0, 1}, q.Normal)

	n := Plane[float64]{Normal: v3{0, 0, 4}, C: 8}.Normalize()
	assert.Equal(t, v3{0, 0, 1}, n.Normal)
	assert.Equal(t, 2.0, n.C)
}

func TestCapsule(t *testing.T) {
	c := Capsule[float64]{A: v3{0, 0, 0}, B: v3{0, 0, 4}, Radius: 1}
	assert.Equal(t, 4.0, c.Length())
	assert.Equal(t, v3{0, 0, 2}, c.Center())
	assert.Equal(t, NewAABB(v3{-1, -1, -1}, v3{1, 1, 5}), c.Bounds())
	assert.Equal(t, v3{0, 0, 3}, c.ClosestPoint(v3{5, 5, 3}))
	assert.Equal(t, v3{0, 0, 4}, c.ClosestPoint(v3{0, 0, 9}))
	assert.True(t, c.Contains(v3{0, 1, 4}))
	assert.False(t, c.Contains(v3{0, 1, 4.5}))

	dot := Capsule[float64]{A: v3{1, 1, 1}, B: v3{1, 1, 1}, Radius: 1}
	assert.Equal(t, v3{1, 1, 1}, dot.ClosestPoint(v3{9, 9, 9}))
}

func TestOBB(t *testing.T) {
	box := NewAABB(v3{-1, -2, -3}, v3{1, 2, 3})
	m := mat.Translation(v3{5, 0, 0}).Mul(mat.RotationZ(math.Pi / 2)).Mul(mat.Scaling(v3{2, 1, 1}))
	o := OBBFromAABB(box, m)

	assert.True(t, vec.NearlyEqual(o.Center, v3{5, 0, 0}, 1e-15))
	assert.True(t, vec.NearlyEqual(o.HalfExtents, v3{2, 2, 3}, 1e-15))

	// Local X now points along world +Y with half size 2.
	assert.True(t, o.Contains(v3{5, 1.9, 0}))
	assert.True(t, o.Contains(v3{6.9, 0, 2.9}))
	assert.False(t, o.Contains(v3{7.1, 0, 0}))

	cp := o.ClosestPoint(v3{5, 10, 0})
	assert.True(t, vec.NearlyEqual(cp, v3{5, 2, 0}, 1e-12), "closest %v", cp)

	b := o.Bounds()
	assert.True(t, vec.NearlyEqual(b.Min, v3{3, -2, -3}, 1e-12), "bounds %v", b)
	assert.True(t, vec.NearlyEqual(b.Max, v3{7, 2, 3}, 1e-12), "bounds %v", b)
	for _, c := range o.Corners() {
		assert.True(t, b.Grow(1e-12).Contains(c))
	}
}

func TestTriangle(t *testing.T) {
	tri := Triangle[float64]{A: v3{0, 0, 0}, B: v3{2, 0, 0}, C: v3{0, 2, 0}}
	assert.Equal(t, v3{0, 0, 4}, tri.Normal())
	assert.Equal(t, v3{0, 0, 1}, tri.UnitNormal())
	assert.Equal(t, 2.0, tri.Area())
	assert.True(t, vec.NearlyEqual(tri.Centroid(), v3{2.0 / 3, 2.0 / 3, 0}, 1e-15))
	assert.Equal(t, NewAABB(v3{0, 0, 0}, v3{2, 2, 0}), tri.Bounds())
	assert.Equal(t, 0.0, tri.Plane().SignedDistance(v3{5, 5, 0}))
}

func TestKind(t *testing.T) {
	assert.Equal(t, KindAABB, AABB[float64]{}.Kind())
	assert.Equal(t, KindSphere, Sphere[float32]{}.Kind())
	assert.Equal(t, KindPlane, Plane[float64]{}.Kind())
	assert.Equal(t, KindCapsule, Capsule[float64]{}.Kind())
	assert.Equal(t, KindOBB, OBB[float64]{}.Kind())
	assert.Equal(t, KindTriangle, Triangle[float64]{}.Kind())
	assert.Equal(t, "capsule", KindCapsule.String())
	assert.Equal(t, "Kind(42)", Kind(42).String())
	require.Len(t, kindNames, int(KindTriangle)+1)
}
