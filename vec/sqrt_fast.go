//go:build fastmath

package vec

import "github.com/meko-christian/algo-approx"

// sqrt64 uses the fast approximation; relative error stays below 1e-4 for
// the lengths met in geometry code.
func sqrt64(x float64) float64 {
	return approx.FastSqrt(x)
}
