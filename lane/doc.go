// Package lane holds the bit-level plumbing behind the branchless kernels:
// all-ones lane masks, float bit casts, sign manipulation by XOR and
// mask-driven blends.
//
// A Mask is either all zeros (false) or all ones (true). Comparisons produce
// masks, masks combine with bitwise And/Or, and Select blends two values by
// mask without a data-dependent branch. The 3- and 4-lane forms (M3, M4)
// operate on vec.Vec3 and vec.Vec4 as lane vectors.
//
// The functions are written so the Go compiler lowers them to
// straight-line code: bool to mask conversion compiles to a SETcc, the
// blends to AND/ANDN/OR on the raw bits.
package lane
