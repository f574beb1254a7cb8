// Package shape defines the geometric primitives (AABB, Sphere, Plane,
// Capsule, OBB and Triangle) and the pairwise overlap predicates between
// them.
//
// The OverlapXxx functions are the allocation-free form and are what hot
// loops should call. The Overlaps methods pick the predicate at compile
// time from the argument type:
//
//	box.Overlaps(sphere)    // OverlapSphereAABB
//	sphere.Overlaps(plane)  // OverlapSpherePlane
//	plane.Overlaps(plane)   // does not compile
//
// Each argument interface lists unexported methods, so only the supported
// primitives of this package satisfy it.
//
// Preconditions such as unit plane normals and non-negative radii are not
// checked. Violating them gives meaningless but memory-safe results.
package shape
