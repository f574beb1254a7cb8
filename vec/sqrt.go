//go:build !fastmath

package vec

import "math"

func sqrt64(x float64) float64 {
	return math.Sqrt(x)
}
