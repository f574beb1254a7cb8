package kernel

import (
	"github.com/cwbudde/algo-geom/lane"
	"github.com/cwbudde/algo-geom/vec"
)

// OverlapAABB is the separating-axis test for two boxes.
func OverlapAABB[T vec.Float](amin, amax, bmin, bmax vec.Vec3[T]) lane.Mask {
	sep := lane.Gt3(amin, bmax).Or(lane.Lt3(amax, bmin)).Any()
	return sep.Not()
}

// OverlapAABB4 tests one query box against four boxes given as lane vectors.
func OverlapAABB4[T vec.Float](qmin, qmax vec.Vec3[T], minX, minY, minZ, maxX, maxY, maxZ vec.Vec4[T]) lane.M4 {
	sep := lane.Gt4(vec.Splat4(qmin[0]), maxX).Or(lane.Lt4(vec.Splat4(qmax[0]), minX))
	sep = sep.Or(lane.Gt4(vec.Splat4(qmin[1]), maxY)).Or(lane.Lt4(vec.Splat4(qmax[1]), minY))
	sep = sep.Or(lane.Gt4(vec.Splat4(qmin[2]), maxZ)).Or(lane.Lt4(vec.Splat4(qmax[2]), minZ))
	return sep.Not()
}

// Load4 gathers boxes i..i+3 of b into lane vectors.
func Load4(b *Boxes, i int) (minX, minY, minZ, maxX, maxY, maxZ vec.Vec4[float64]) {
	minX = vec.Vec4[float64](b.MinX[i : i+4])
	minY = vec.Vec4[float64](b.MinY[i : i+4])
	minZ = vec.Vec4[float64](b.MinZ[i : i+4])
	maxX = vec.Vec4[float64](b.MaxX[i : i+4])
	maxY = vec.Vec4[float64](b.MaxY[i : i+4])
	maxZ = vec.Vec4[float64](b.MaxZ[i : i+4])
	return
}
