package mesh

import (
	"testing"

	"github.com/cwbudde/algo-geom/mat"
	"github.com/cwbudde/algo-geom/vec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type v3 = vec.Vec3[float32]

// quads returns two unit squares in the z=0 and z=2 planes, each split along
// its (0,0)-(1,1) diagonal.
func quads(t *testing.T) *Mesh {
	t.Helper()
	pos, err := NewAccessor[float32](packFloat32(
		0, 0, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0,
		0, 0, 2, 1, 0, 2, 1, 1, 2, 0, 1, 2,
	), 8, 3)
	require.NoError(t, err)
	idx, err := NewAccessor[uint16]([]byte{
		0, 0, 1, 0, 2, 0, 0, 0, 2, 0, 3, 0,
		4, 0, 5, 0, 6, 0, 4, 0, 6, 0, 7, 0,
	}, 12, 1)
	require.NoError(t, err)
	m, err := DecodeMesh(pos, DecodeIndices(idx))
	require.NoError(t, err)
	return m
}

func TestDecodeMesh(t *testing.T) {
	m := quads(t)
	assert.Equal(t, 4, m.TriangleCount())
	assert.Equal(t, v3{1, 1, 2}, m.Positions.At(6))
	tri := m.Triangle(1)
	assert.Equal(t, v3{0, 0, 0}, tri.A)
	assert.Equal(t, v3{1, 1, 0}, tri.B)
	assert.Equal(t, v3{0, 1, 0}, tri.C)

	b := m.Bounds()
	assert.Equal(t, v3{0, 0, 0}, b.Min)
	assert.Equal(t, v3{1, 1, 2}, b.Max)
}

func TestDecodeMeshInterleavedWithoutIndices(t *testing.T) {
	pos, err := NewAccessor[float32](interleaved, 3, 3, WithStride(20))
	require.NoError(t, err)
	m, err := DecodeMesh(pos, nil)
	require.NoError(t, err)
	assert.Equal(t, []uint32{0, 1, 2}, m.Indices)
	assert.Equal(t, v3{1, 1, 0.5}, m.Triangle(0).C)
}

func TestDecodeMeshErrors(t *testing.T) {
	pos, err := NewAccessor[float32](interleaved, 3, 3, WithStride(20))
	require.NoError(t, err)

	_, err = DecodeMesh(pos, []uint32{0, 1})
	require.ErrorIs(t, err, ErrInvalidLayout)
	_, err = DecodeMesh(pos, []uint32{0, 1, 3})
	require.ErrorIs(t, err, ErrOutOfBounds)

	uv, err := NewAccessor[float32](interleaved, 3, 2, WithByteOffset(12), WithStride(20))
	require.NoError(t, err)
	_, err = DecodeMesh(uv, nil)
	require.ErrorIs(t, err, ErrInvalidLayout)
}

func TestRaycastReturnsClosestTriangle(t *testing.T) {
	m := quads(t)

	h, tri, ok := m.Raycast(v3{0.75, 0.25, 5}, v3{0, 0, -1})
	require.True(t, ok)
	assert.Equal(t, 2, tri)
	assert.Equal(t, float32(3), h.Dist)
	assert.Equal(t, v3{0.75, 0.25, 2}, h.Point)
	assert.Equal(t, v3{0, 0, 1}, h.Normal)

	// From below, the z=0 square is reached first.
	h, tri, ok = m.Raycast(v3{0.25, 0.75, -1}, v3{0, 0, 1})
	require.True(t, ok)
	assert.Equal(t, 1, tri)
	assert.Equal(t, float32(1), h.Dist)

	// Between the squares, looking down.
	_, tri, ok = m.Raycast(v3{0.75, 0.25, 1}, v3{0, 0, -1})
	require.True(t, ok)
	assert.Equal(t, 0, tri)
}

func TestRaycastMisses(t *testing.T) {
	m := quads(t)
	cases := []struct {
		name        string
		origin, dir v3
	}{
		{"outside bounds", v3{2, 2, 5}, v3{0, 0, -1}},
		{"pointing away", v3{0.5, 0.25, -1}, v3{0, 0, -1}},
		{"parallel to faces", v3{-1, 0.5, 1}, v3{1, 0, 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, tri, ok := m.Raycast(tc.origin, tc.dir)
			assert.False(t, ok)
			assert.Equal(t, -1, tri)
		})
	}

	// Inside the bounds but off the only triangle.
	half := &Mesh{Positions: m.Positions, Indices: m.Indices[:3]}
	_, _, ok := half.Raycast(v3{0.25, 0.75, 5}, v3{0, 0, -1})
	assert.False(t, ok)
}

func TestTransformMovesRaycastHits(t *testing.T) {
	m := quads(t)
	m.Transform(mat.Translation(v3{0, 0, 3}))
	assert.Equal(t, v3{0, 0, 3}, m.Bounds().Min)

	h, tri, ok := m.Raycast(v3{0.75, 0.25, 10}, v3{0, 0, -1})
	require.True(t, ok)
	assert.Equal(t, 2, tri)
	assert.Equal(t, float32(5), h.Dist)
}
