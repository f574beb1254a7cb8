package quat_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-geom/quat"
	"github.com/cwbudde/algo-geom/vec"
)

func ExampleSlerp() {
	a := quat.Identity[float64]()
	b := quat.FromAxisAngle(vec.Vec3[float64]{0, 0, 1}, math.Pi)
	_, angle := quat.Slerp(a, b, 0.25).AxisAngle()
	fmt.Printf("%.4f\n", angle)
	// Output: 0.7854
}
