package kernel

import (
	"math"
	"testing"
)

func TestSinCosAccuracy(t *testing.T) {
	const n = 200001
	lo, hi := -100*math.Pi, 100*math.Pi
	maxErr := 0.0
	for i := 0; i < n; i++ {
		x := lo + (hi-lo)*float64(i)/float64(n-1)
		s, c := SinCos(x)
		maxErr = math.Max(maxErr, math.Abs(s-math.Sin(x)))
		maxErr = math.Max(maxErr, math.Abs(c-math.Cos(x)))
	}
	if maxErr > 1e-13 {
		t.Fatalf("max abs error %g exceeds 1e-13", maxErr)
	}
}

func TestSinCosQuadrantEdges(t *testing.T) {
	for k := -8; k <= 8; k++ {
		for _, off := range []float64{-1e-9, 0, 1e-9, math.Pi / 4, -math.Pi / 4} {
			x := float64(k)*math.Pi/2 + off
			s, c := SinCos(x)
			if math.Abs(s-math.Sin(x)) > 1e-15 || math.Abs(c-math.Cos(x)) > 1e-15 {
				t.Fatalf("x=%v: got (%v, %v), want (%v, %v)", x, s, c, math.Sin(x), math.Cos(x))
			}
		}
	}
}

func TestSinCosSpecialValues(t *testing.T) {
	for _, x := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		s, c := SinCos(x)
		if !math.IsNaN(s) || !math.IsNaN(c) {
			t.Fatalf("SinCos(%v) = (%v, %v), want NaN", x, s, c)
		}
	}
	s, c := SinCos(0)
	if s != 0 || c != 1 {
		t.Fatalf("SinCos(0) = (%v, %v)", s, c)
	}
	if s, _ := SinCos(math.Copysign(0, -1)); !math.Signbit(s) {
		t.Fatal("sin(-0) should keep the sign")
	}
}

func TestSinCosNearReductionLimit(t *testing.T) {
	const n = 10001
	lo := float64(ReductionLimit) / 2
	maxErr := 0.0
	for i := 0; i < n; i++ {
		x := lo + lo*float64(i)/float64(n-1)
		s, c := SinCos(x)
		maxErr = math.Max(maxErr, math.Abs(s-math.Sin(x)))
		maxErr = math.Max(maxErr, math.Abs(c-math.Cos(x)))
	}
	if maxErr > 1e-14 {
		t.Fatalf("max abs error %g on [2^28, 2^29] exceeds 1e-14", maxErr)
	}
}

func TestSinCosBeyondReductionLimitIsNaN(t *testing.T) {
	for _, x := range []float64{
		math.Nextafter(ReductionLimit, math.Inf(1)), -1e10, 1e18, 1e20, -1e300, math.MaxFloat64,
	} {
		s, c := SinCos(x)
		if !math.IsNaN(s) || !math.IsNaN(c) {
			t.Fatalf("SinCos(%g) = (%v, %v), want NaN", x, s, c)
		}
	}
	s4, c4 := SinCos4([4]float64{1, 1e20, -2, -1e18})
	for i, huge := range []bool{false, true, false, true} {
		if math.IsNaN(s4[i]) != huge || math.IsNaN(c4[i]) != huge {
			t.Fatalf("lane %d: got (%v, %v)", i, s4[i], c4[i])
		}
	}
}

func TestSinCos4MatchesScalar(t *testing.T) {
	x := [4]float64{-7.5, 0.1, 3, 250}
	s4, c4 := SinCos4(x)
	for i := range x {
		s, c := SinCos(x[i])
		if s4[i] != s || c4[i] != c {
			t.Fatalf("lane %d differs", i)
		}
	}
}

func BenchmarkSinCos(b *testing.B) {
	x := 0.0
	for i := 0; i < b.N; i++ {
		s, c := SinCos(x)
		x += (s + c) * 1e-9
	}
}
