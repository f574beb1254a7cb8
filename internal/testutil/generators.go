package testutil

import (
	"math/rand"

	"github.com/cwbudde/algo-geom/vec"
)

// DeterministicAngles returns n angles spread uniformly over [-span, span]
// from a fixed seed.
func DeterministicAngles(seed int64, span float64, n int) []float64 {
	out := make([]float64, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * span
	}
	return out
}

// Ramp returns n evenly spaced values from lo to hi inclusive.
func Ramp(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out
	}
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + step*float64(i)
	}
	return out
}

// RandomVec3 returns a vector with components in [-scale, scale].
func RandomVec3(rng *rand.Rand, scale float64) vec.Vec3[float64] {
	return vec.Vec3[float64]{
		(rng.Float64()*2 - 1) * scale,
		(rng.Float64()*2 - 1) * scale,
		(rng.Float64()*2 - 1) * scale,
	}
}

// RandomBox returns an ordered min/max pair centred within [-scale, scale]
// with half extents up to maxHalf.
func RandomBox(rng *rand.Rand, scale, maxHalf float64) (bmin, bmax vec.Vec3[float64]) {
	c := RandomVec3(rng, scale)
	h := vec.Vec3[float64]{rng.Float64() * maxHalf, rng.Float64() * maxHalf, rng.Float64() * maxHalf}
	return c.Sub(h), c.Add(h)
}
