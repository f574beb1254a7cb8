package mat

import (
	"testing"

	"github.com/cwbudde/algo-geom/vec"
)

func BenchmarkMat4Mul(b *testing.B) {
	m := Rotation(0.5, vec.Vec3[float64]{1, 2, 3}).Translate(vec.Vec3[float64]{1, 0, 0})
	acc := Identity4[float64]()
	for range b.N {
		acc = acc.Mul(m)
	}
	_ = acc
}

func BenchmarkInverse4(b *testing.B) {
	m := Perspective(1.0, 1.5, 0.1, 100)
	var inv Mat4[float64]
	for range b.N {
		inv, _ = Inverse4(m)
	}
	_ = inv
}
