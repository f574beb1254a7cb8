package shape_test

import (
	"fmt"

	"github.com/cwbudde/algo-geom/shape"
	"github.com/cwbudde/algo-geom/vec"
)

func ExampleAABB_Overlaps() {
	box := shape.NewAABB(vec.Vec3[float64]{0, 0, 0}, vec.Vec3[float64]{1, 1, 1})
	ball := shape.Sphere[float64]{Center: vec.Vec3[float64]{1.5, 0.5, 0.5}, Radius: 0.6}
	floor := shape.PlaneFromPointNormal(vec.Vec3[float64]{0, -1, 0}, vec.Vec3[float64]{0, 1, 0})

	fmt.Println(box.Overlaps(ball), box.Overlaps(floor))
	// Output: true false
}
