package kernel

import "math"

const (
	twoOverPi = 0.63661977236758134308

	// π/2 split into three parts of decreasing magnitude (Cody–Waite). The
	// first two carry few enough significant bits that k*pio2a and k*pio2b
	// are exact for every quadrant index reached below |x| = 2^29.
	pio2a = 1.57079625129699707031e+00
	pio2b = 7.54978941586159635336e-08
	pio2c = 5.39030285815811905290e-15

	// Adding 1.5*2^52 rounds to the nearest integer and leaves it in the low
	// mantissa bits.
	roundMagic = 6755399441055744.0

	// ReductionLimit is the largest magnitude reduced exactly. Larger inputs
	// yield NaN.
	ReductionLimit = 1 << 29

	signBit = uint64(1) << 63
	nanBits = uint64(0x7FF8000000000000)
)

// Minimax coefficients on [-π/4, π/4].
const (
	sin1 = -1.66666666666666307295e-1
	sin2 = 8.33333333332211858878e-3
	sin3 = -1.98412698295895385996e-4
	sin4 = 2.75573136213857245213e-6
	sin5 = -2.50507477628578072866e-8
	sin6 = 1.58962301576546568060e-10

	cos2 = 4.16666666666665929218e-2
	cos3 = -1.38888888888730564116e-3
	cos4 = 2.48015872888517045348e-5
	cos5 = -2.75573141792967388112e-7
	cos6 = 2.08757008419747316778e-9
	cos7 = -1.13585365213876817300e-11
)

// SinCos evaluates sine and cosine of x in one pass sharing the quadrant
// reduction. Inputs with |x| > ReductionLimit, NaN and ±Inf yield NaN for
// both.
func SinCos(x float64) (sin, cos float64) {
	bits := math.Float64bits(x)
	sign := bits & signBit
	ax := math.Float64frombits(bits &^ signBit)

	shifted := ax*twoOverPi + roundMagic
	q := math.Float64bits(shifted)
	k := shifted - roundMagic

	r := ax - k*pio2a
	r -= k * pio2b
	r -= k * pio2c
	z := r * r

	sp := r + r*z*(sin1+z*(sin2+z*(sin3+z*(sin4+z*(sin5+z*sin6)))))
	cp := 1 - 0.5*z + z*z*(cos2+z*(cos3+z*(cos4+z*(cos5+z*(cos6+z*cos7)))))

	// Odd quadrants swap the polynomials.
	swap := -(q & 1)
	sb := math.Float64bits(sp)
	cb := math.Float64bits(cp)
	sinBits := (cb & swap) | (sb &^ swap)
	cosBits := (sb & swap) | (cb &^ swap)

	// Quadrants 2,3 negate sine, quadrants 1,2 negate cosine; sine is odd.
	sinBits ^= ((q & 2) << 62) ^ sign
	cosBits ^= ((q + 1) & 2) << 62

	// The sign of limit-|x| flags lanes past the exact reduction range,
	// including +Inf.
	huge := -(math.Float64bits(ReductionLimit-ax) >> 63)
	sinBits = (sinBits &^ huge) | (nanBits & huge)
	cosBits = (cosBits &^ huge) | (nanBits & huge)

	return math.Float64frombits(sinBits), math.Float64frombits(cosBits)
}

// SinCos4 evaluates four lanes.
func SinCos4(x [4]float64) (sin, cos [4]float64) {
	sin[0], cos[0] = SinCos(x[0])
	sin[1], cos[1] = SinCos(x[1])
	sin[2], cos[2] = SinCos(x[2])
	sin[3], cos[3] = SinCos(x[3])
	return sin, cos
}
