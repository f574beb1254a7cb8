// Package collide implements ray queries, three-plane intersection and
// batched box overlap tests.
//
// The canonical entry points return a sentinel instead of an optional so
// that they compose without branches in hot loops:
//
//	RayAABB, RayTriangle      vec.MaxValue[T]() on a miss
//	RayAABBEnterExit          (+max, -max) on a miss
//
// CastAABB and CastTriangle wrap them for callers that prefer a Hit record
// and an ok flag.
//
// Precompute an InvDirection once per ray and reuse it for every box the
// ray is tested against. Axis-parallel components are flagged there, so the
// slab test never divides by zero or multiplies zero by infinity.
//
// RayAABBBlock and OverlapAABBBlock process a Boxes batch (float64,
// structure of arrays) and dispatch at first use to the best implementation
// for the CPU.
package collide
