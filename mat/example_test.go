package mat_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-geom/mat"
	"github.com/cwbudde/algo-geom/vec"
)

func ExampleMat4_MulPoint() {
	m := mat.Translation(vec.Vec3[float64]{0, 0, -2}).Mul(mat.RotationZ(math.Pi))
	p := m.MulPoint(vec.Vec3[float64]{1, 0, 0})
	fmt.Printf("%.3f %.3f %.3f\n", p[0], p[1], p[2])
	// Output: -1.000 0.000 -2.000
}
