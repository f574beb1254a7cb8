// Package soa stores batches of vectors as one slice per component so that
// per-component work runs through the block kernels of
// github.com/cwbudde/algo-vecmath (float64) and github.com/viterin/vek
// (float32).
//
// All methods panic with "soa: slice length mismatch" when the component
// slices or a destination disagree in length.
package soa
