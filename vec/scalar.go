package vec

// Sqrt returns the square root of x rounded to T. Integer inputs are
// truncated toward zero.
func Sqrt[T Number](x T) T {
	return T(sqrt64(float64(x)))
}

// Abs returns |x|.
func Abs[T Number](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// ClampScalar limits x to [lo, hi].
func ClampScalar[T Number](x, lo, hi T) T {
	return min(max(x, lo), hi)
}
