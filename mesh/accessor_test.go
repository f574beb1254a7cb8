package mesh

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-geom/vec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessorInterleaved(t *testing.T) {
	pos, err := NewAccessor[float32](interleaved, 3, 3, WithStride(20))
	require.NoError(t, err)
	assert.Equal(t, 3, pos.Len())
	assert.Equal(t, 20, pos.Stride())
	assert.Equal(t, vec.Vec3[float32]{1, 1, 0.5}, pos.Vec3(2))

	uv, err := NewAccessor[float32](interleaved, 3, 2, WithByteOffset(12), WithStride(20))
	require.NoError(t, err)
	assert.Equal(t, vec.Vec2[float32]{1, 0}, uv.Vec2(1))
	assert.Equal(t, float32(1), uv.Scalar(2))
}

func TestAccessorDefaultStrideIsPacked(t *testing.T) {
	a, err := NewAccessor[float32](interleaved, 5, 3)
	require.NoError(t, err)
	assert.Equal(t, 12, a.Stride())
	// Entry 1 starts at the uv of vertex 0.
	assert.Equal(t, vec.Vec3[float32]{0, 0, 1}, a.Vec3(1))
}

func TestAccessorNarrowEntriesZeroFill(t *testing.T) {
	a, err := NewAccessor[float32](interleaved, 3, 3, WithStride(20))
	require.NoError(t, err)
	assert.Equal(t, vec.Vec4[float32]{1, 1, 0.5, 0}, a.Vec4(2))
}

func TestAccessorScalars(t *testing.T) {
	a, err := NewAccessor[uint16]([]byte{1, 0, 2, 0, 3, 0}, 3, 1)
	require.NoError(t, err)
	assert.Equal(t, []uint16{9, 1, 2, 3}, a.Scalars([]uint16{9}))
}

func TestNewAccessorRejectsBadLayouts(t *testing.T) {
	cases := []struct {
		name  string
		count int
		width int
		opts  []AccessorOption
		want  error
	}{
		{"zero width", 1, 0, nil, ErrInvalidLayout},
		{"wide", 1, 5, nil, ErrInvalidLayout},
		{"negative count", -1, 3, nil, ErrInvalidLayout},
		{"negative offset", 1, 3, []AccessorOption{WithByteOffset(-1)}, ErrInvalidLayout},
		{"short stride", 2, 3, []AccessorOption{WithStride(8)}, ErrInvalidLayout},
		{"too many", 4, 3, []AccessorOption{WithStride(20)}, ErrOutOfBounds},
		{"offset past end", 3, 2, []AccessorOption{WithByteOffset(16), WithStride(20)}, ErrOutOfBounds},
		{"count overflows", math.MaxInt/8 + 2, 2, []AccessorOption{WithStride(16)}, ErrOutOfBounds},
		{"offset overflows", 2, 3, []AccessorOption{WithByteOffset(math.MaxInt - 8), WithStride(12)}, ErrOutOfBounds},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewAccessor[float32](interleaved, tc.count, tc.width, tc.opts...)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNewAccessorEmpty(t *testing.T) {
	a, err := NewAccessor[float32](nil, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, a.Len())
	assert.Empty(t, a.Scalars(nil))
}

func TestAccessorIndexPanics(t *testing.T) {
	a, err := NewAccessor[float32](interleaved, 3, 3, WithStride(20))
	require.NoError(t, err)
	assert.PanicsWithValue(t, "mesh: accessor index 3 out of range [0, 3)", func() { a.Vec3(3) })
	assert.Panics(t, func() { a.Scalar(-1) })
}

func TestApplyAccessorOptionsSkipsNil(t *testing.T) {
	cfg := ApplyAccessorOptions(nil, WithStride(16), nil, WithByteOffset(4))
	assert.Equal(t, AccessorConfig{ByteOffset: 4, Stride: 16}, cfg)
}
