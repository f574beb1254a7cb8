package mesh

import (
	"fmt"

	"github.com/cwbudde/algo-geom/collide"
	"github.com/cwbudde/algo-geom/mat"
	"github.com/cwbudde/algo-geom/shape"
	"github.com/cwbudde/algo-geom/soa"
	"github.com/cwbudde/algo-geom/vec"
)

// Index is the set of element types an index buffer may use.
type Index interface {
	uint8 | uint16 | uint32
}

// Mesh is an indexed triangle list with float32 positions.
type Mesh struct {
	Positions soa.Vec3Block32
	Indices   []uint32
}

// DecodeIndices widens every entry of a scalar index accessor to uint32.
func DecodeIndices[T Index](a *Accessor[T]) []uint32 {
	out := make([]uint32, a.Len())
	for i := range out {
		out[i] = uint32(a.Scalar(i))
	}
	return out
}

// DecodeMesh copies positions out of pos and validates indices against
// them. A nil index slice means consecutive vertex triples form triangles.
func DecodeMesh(pos *Accessor[float32], indices []uint32) (*Mesh, error) {
	if pos.Width() < 3 {
		return nil, fmt.Errorf("positions have %d components: %w", pos.Width(), ErrInvalidLayout)
	}
	n := pos.Len()
	if indices == nil {
		indices = make([]uint32, n)
		for i := range indices {
			indices[i] = uint32(i)
		}
	}
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("%d indices do not form triangles: %w", len(indices), ErrInvalidLayout)
	}
	for i, idx := range indices {
		if int(idx) >= n {
			return nil, fmt.Errorf("index %d refers to vertex %d of %d: %w", i, idx, n, ErrOutOfBounds)
		}
	}

	m := &Mesh{Positions: soa.NewVec3Block32(n), Indices: indices}
	for i := range n {
		m.Positions.Set(i, pos.Vec3(i))
	}
	return m, nil
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int { return len(m.Indices) / 3 }

// Triangle returns triangle i.
func (m *Mesh) Triangle(i int) shape.Triangle[float32] {
	j := 3 * i
	return shape.Triangle[float32]{
		A: m.Positions.At(int(m.Indices[j])),
		B: m.Positions.At(int(m.Indices[j+1])),
		C: m.Positions.At(int(m.Indices[j+2])),
	}
}

// Bounds returns the box around every vertex, including unreferenced ones.
func (m *Mesh) Bounds() shape.AABB[float32] { return m.Positions.Bounds() }

// Transform applies the affine transform t to every vertex in place.
func (m *Mesh) Transform(t mat.Mat4[float32]) { m.Positions.Transform(t) }

// Raycast returns the closest triangle hit by origin + t·dir, its index,
// and whether anything was hit. Triangles are hit from either side.
func (m *Mesh) Raycast(origin, dir vec.Vec3[float32]) (collide.Hit[float32], int, bool) {
	r := collide.NewRay(origin, dir)
	if collide.RayAABB(m.Bounds(), origin, r.Inv) == vec.MaxValue[float32]() {
		return collide.Hit[float32]{}, -1, false
	}

	best := collide.Hit[float32]{Dist: vec.MaxValue[float32]()}
	hit := -1
	for i := range m.TriangleCount() {
		h, ok := collide.CastTriangle(r, m.Triangle(i))
		if ok && h.Dist < best.Dist {
			best, hit = h, i
		}
	}
	if hit < 0 {
		return collide.Hit[float32]{}, -1, false
	}
	return best, hit, true
}
