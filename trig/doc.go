// Package trig provides a branchless sine/cosine approximation evaluated
// across lanes in a single pass.
//
// Each lane is reduced to [-π/4, π/4] around the nearest multiple of π/2
// with a three-constant Cody–Waite reduction, both polynomials are
// evaluated, and the quadrant's low two bits pick which polynomial is sine
// and which is cosine by bit blend, with sign flips XORed straight into the
// IEEE 754 representation. No lane takes a data-dependent branch.
//
// # Accuracy
//
// The float64 kernel tracks math.Sin/math.Cos to ~1e-15 for |x| ≤ 100π.
// float32 lanes are evaluated at float64 width and rounded once, so float32
// results are within half an ulp of the correctly rounded value.
//
// The reduction is exact up to |x| = 2^29 (about 5.4e8). Beyond that, and for
// NaN and ±Inf, both results are NaN rather than an out-of-range value.
//
// Only floating point element types are accepted; SinCos[int] does not
// compile.
//
// # Block form
//
// SinCosBlock processes a slice and dispatches at first use to the best
// implementation registered for the CPU (4-lane on amd64/arm64, scalar
// elsewhere or with the purego build tag).
package trig
