package collide

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/cwbudde/algo-geom/shape"
)

var benchSizes = []int{16, 256, 4096}

func BenchmarkRayAABB(b *testing.B) {
	box := shape.NewAABB(v3{-1, -1, -1}, v3{1, 1, 1})
	inv := NewInvDirection(v3{1, 0.3, 0.2})
	origin := v3{-5, 0, 0}
	var sink float64
	for range b.N {
		sink += RayAABB(box, origin, inv)
	}
	_ = sink
}

func BenchmarkRayTriangle(b *testing.B) {
	v0, v1, v2 := v3{0, 0, 0}, v3{1, 0, 0}, v3{0, 1, 0}
	origin, dir := v3{0.25, 0.25, 1}, v3{0, 0, -1}
	var sink float64
	for range b.N {
		sink += RayTriangle(origin, dir, v0, v1, v2)
	}
	_ = sink
}

func BenchmarkRayAABBBlock(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("N=%d", n), func(b *testing.B) {
			_, boxes := randomBoxes(rand.New(rand.NewSource(1)), n)
			ray := NewRay(v3{-8, 0, 0}, v3{1, 0.1, 0.05})
			dst := make([]float64, n)
			b.ResetTimer()
			for range b.N {
				RayAABBBlock(dst, &boxes, ray.Origin, ray.Inv)
			}
		})
	}
}

func BenchmarkOverlapAABBBlock(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("N=%d", n), func(b *testing.B) {
			_, boxes := randomBoxes(rand.New(rand.NewSource(1)), n)
			query := shape.NewAABB(v3{-1, -1, -1}, v3{1, 1, 1})
			dst := make([]bool, n)
			b.ResetTimer()
			for range b.N {
				OverlapAABBBlock(dst, query, &boxes)
			}
		})
	}
}
