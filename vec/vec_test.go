package vec

import (
	"math"
	"testing"
)

func TestVec3Arithmetic(t *testing.T) {
	a := Vec3[float64]{1, 2, 3}
	b := Vec3[float64]{4, -5, 6}

	tests := []struct {
		name string
		got  Vec3[float64]
		want Vec3[float64]
	}{
		{name: "add", got: a.Add(b), want: Vec3[float64]{5, -3, 9}},
		{name: "sub", got: a.Sub(b), want: Vec3[float64]{-3, 7, -3}},
		{name: "mul", got: a.Mul(b), want: Vec3[float64]{4, -10, 18}},
		{name: "scale", got: a.Scale(2), want: Vec3[float64]{2, 4, 6}},
		{name: "neg", got: a.Neg(), want: Vec3[float64]{-1, -2, -3}},
		{name: "min", got: a.Min(b), want: Vec3[float64]{1, -5, 3}},
		{name: "max", got: a.Max(b), want: Vec3[float64]{4, 2, 6}},
		{name: "cross", got: a.Cross(b), want: Vec3[float64]{27, 6, -13}},
		{name: "swizzle", got: a.Swizzle(2, 0, 0), want: Vec3[float64]{3, 1, 1}},
		{name: "yzx", got: a.YZX(), want: Vec3[float64]{2, 3, 1}},
		{name: "zxy", got: a.ZXY(), want: Vec3[float64]{3, 1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Fatalf("got %v, want %v", tt.got, tt.want)
			}
		})
	}

	if d := a.Dot(b); d != 12 {
		t.Fatalf("Dot = %v, want 12", d)
	}
}

func TestIntegerVectors(t *testing.T) {
	a := Vec3[int32]{1, 0, 0}
	b := Vec3[int32]{0, 1, 0}

	if c := a.Cross(b); c != (Vec3[int32]{0, 0, 1}) {
		t.Fatalf("Cross = %v, want [0 0 1]", c)
	}
	if d := a.Dot(b); d != 0 {
		t.Fatalf("Dot = %d, want 0", d)
	}
	if l := Length(Vec3[int32]{3, 4, 0}); l != 5 {
		t.Fatalf("Length = %d, want 5", l)
	}
	if l := Length(Vec3[uint8]{1, 1, 1}); l != 1 {
		t.Fatalf("Length = %d, want 1 (truncated)", l)
	}
}

func TestCrossIsOrthogonal(t *testing.T) {
	a := Vec3[float64]{0.3, -1.2, 2.5}
	b := Vec3[float64]{-4.1, 0.7, 1.9}
	c := a.Cross(b)

	if d := math.Abs(c.Dot(a)); d > 1e-12 {
		t.Fatalf("cross not orthogonal to a: %v", d)
	}
	if d := math.Abs(c.Dot(b)); d > 1e-12 {
		t.Fatalf("cross not orthogonal to b: %v", d)
	}
}

func TestNormalizeUnitLength(t *testing.T) {
	inputs := []Vec3[float64]{
		{1, 0, 0},
		{3, 4, 12},
		{-1e-3, 2e-3, 5e-4},
		{1e6, -2e6, 3e5},
	}
	for _, in := range inputs {
		n := Normalize(in)
		if l := Length(n); math.Abs(l-1) > sqrtTol {
			t.Fatalf("|Normalize(%v)| = %v, want 1", in, l)
		}
	}

	n32 := Normalize(Vec3[float32]{1, 2, 2})
	if l := Length(n32); math.Abs(float64(l)-1) > max(1e-6, sqrtTol) {
		t.Fatalf("float32 |n| = %v, want 1", l)
	}

	n2 := Normalize2(Vec2[float64]{3, 4})
	if math.Abs(n2[0]-0.6) > sqrtTol || math.Abs(n2[1]-0.8) > sqrtTol {
		t.Fatalf("Normalize2 = %v", n2)
	}
}

func TestReflect(t *testing.T) {
	v := Vec3[float64]{1, -1, 0}
	n := Vec3[float64]{0, 1, 0}

	if r := Reflect(v, n); r != (Vec3[float64]{1, 1, 0}) {
		t.Fatalf("Reflect = %v, want [1 1 0]", r)
	}
}

func TestLerp(t *testing.T) {
	a := Vec3[float64]{0, 0, 0}
	b := Vec3[float64]{2, 4, -8}

	if m := Lerp(a, b, 0.5); m != (Vec3[float64]{1, 2, -4}) {
		t.Fatalf("Lerp = %v", m)
	}
	if e := Lerp(a, b, 1); e != b {
		t.Fatalf("Lerp(1) = %v, want %v", e, b)
	}
}

func TestExtendTruncate(t *testing.T) {
	v := Vec3[float32]{1, 2, 3}
	w := v.Extend(1)
	if w != (Vec4[float32]{1, 2, 3, 1}) {
		t.Fatalf("Extend = %v", w)
	}
	if w.XYZ() != v {
		t.Fatalf("XYZ = %v, want %v", w.XYZ(), v)
	}
	if w.Rotate() != (Vec4[float32]{2, 3, 1, 1}) {
		t.Fatalf("Rotate = %v", w.Rotate())
	}
	if v.XY().Extend(3) != v {
		t.Fatalf("XY().Extend = %v", v.XY().Extend(3))
	}
}

func TestCast(t *testing.T) {
	v := Cast3[int32](Vec3[float64]{1.9, -2.9, 3})
	if v != (Vec3[int32]{1, -2, 3}) {
		t.Fatalf("Cast3 = %v", v)
	}
}

func TestSwizzleOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-range swizzle")
		}
	}()
	i := 3
	_ = Vec3[float64]{}.Swizzle(0, 1, i)
}

func TestBoolLanes(t *testing.T) {
	b := Bool4{true, false, true, false}
	if !b.Any() || b.All() || b.Count() != 2 {
		t.Fatalf("unexpected lane summary for %v", b)
	}
	c := Vec3[float64]{1, 5, 3}.Less(Vec3[float64]{2, 2, 2})
	if c != (Bool3{true, false, false}) {
		t.Fatalf("Less = %v", c)
	}
}

func TestMaxValue(t *testing.T) {
	if MaxValue[float32]() != math.MaxFloat32 {
		t.Fatal("float32 max mismatch")
	}
	if MaxValue[float64]() != math.MaxFloat64 {
		t.Fatal("float64 max mismatch")
	}
	if !Is32[float32]() || Is32[float64]() {
		t.Fatal("Is32 mismatch")
	}

	type meters float32
	if m := MaxValue[meters](); m != math.MaxFloat32 || math.IsInf(float64(m), 1) {
		t.Fatalf("named float32 max = %v", m)
	}
}
