//go:build !fastmath

package vec

// sqrtTol bounds the relative error of Length and Normalize.
const sqrtTol = 1e-12
