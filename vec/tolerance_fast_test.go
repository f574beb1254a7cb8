//go:build fastmath

package vec

// sqrtTol bounds the relative error of Length and Normalize under the fast
// square root.
const sqrtTol = 1e-4
