// Package vec provides fixed-length numeric vectors generic over their element
// type.
//
// Vectors are plain arrays ([2]T, [3]T, [4]T) so they are compared with ==,
// copied by value and never allocate. The dimension is part of the type:
// adding a Vec3 to a Vec4 or asking a Vec2 for a cross product does not
// compile.
//
// Operations that only make sense for floating point (Normalize, Lerp,
// Reflect, ...) are free functions constrained on Float, so instantiating
// them with an integer element type is a build error rather than a silent
// truncation.
//
// # Square roots
//
// Length and Normalize use math.Sqrt. Building with the fastmath tag routes
// the square root through algo-approx's FastSqrt instead, trading roughly
// 1e-4 relative accuracy for speed.
package vec
