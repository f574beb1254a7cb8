package trig

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-geom/internal/testutil"
	"github.com/cwbudde/algo-geom/vec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSinCosFloat64Accuracy(t *testing.T) {
	for _, x := range testutil.Ramp(-100*math.Pi, 100*math.Pi, 20001) {
		s, c := SinCos(x)
		require.InDelta(t, math.Sin(x), s, 1e-7, "sin(%v)", x)
		require.InDelta(t, math.Cos(x), c, 1e-7, "cos(%v)", x)
	}
}

func TestSinCosFloat32Accuracy(t *testing.T) {
	for _, x := range testutil.Ramp(-100*math.Pi, 100*math.Pi, 20001) {
		x32 := float32(x)
		s, c := SinCos(x32)
		ref := float64(x32)
		require.InDelta(t, math.Sin(ref), float64(s), 1e-7, "sin(%v)", x32)
		require.InDelta(t, math.Cos(ref), float64(c), 1e-7, "cos(%v)", x32)
	}
}

func TestSinCosZero(t *testing.T) {
	s, c := SinCos(0.0)
	assert.Equal(t, 0.0, s)
	assert.Equal(t, 1.0, c)
}

func TestSinCosLanes(t *testing.T) {
	x := vec.Vec4[float64]{0, math.Pi / 2, math.Pi, -math.Pi / 2}
	s, c := SinCos4(x)
	want := vec.Vec4[float64]{0, 1, 0, -1}
	wantC := vec.Vec4[float64]{1, 0, -1, 0}
	assert.True(t, vec.NearlyEqual4(s, want, 1e-15), "sin %v", s)
	assert.True(t, vec.NearlyEqual4(c, wantC, 1e-15), "cos %v", c)

	s3, c3 := SinCos3(vec.Vec3[float32]{0, math.Pi / 2, math.Pi})
	assert.InDelta(t, 1, float64(s3[1]), 1e-7)
	assert.InDelta(t, -1, float64(c3[2]), 1e-7)

	s2, c2 := SinCos2(vec.Vec2[float64]{math.Pi / 6, math.Pi / 3})
	assert.InDelta(t, 0.5, s2[0], 1e-15)
	assert.InDelta(t, 0.5, c2[1], 1e-15)
}

func TestSinCosIdentity(t *testing.T) {
	for _, x := range testutil.DeterministicAngles(3, 50, 1000) {
		s, c := SinCos(x)
		require.InDelta(t, 1, s*s+c*c, 1e-14)
	}
}

func TestSinCosNonFinite(t *testing.T) {
	for _, x := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		s, c := SinCos(x)
		assert.True(t, math.IsNaN(s), "sin(%v) = %v", x, s)
		assert.True(t, math.IsNaN(c), "cos(%v) = %v", x, c)
	}
}

func TestTan(t *testing.T) {
	assert.InDelta(t, 1, Tan(math.Pi/4), 1e-15)
	assert.InDelta(t, math.Sin(1.0), Sin(1.0), 1e-15)
	assert.InDelta(t, math.Cos(1.0), Cos(1.0), 1e-15)
}
