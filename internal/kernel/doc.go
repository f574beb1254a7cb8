// Package kernel holds the branchless cores shared by the public geometry
// packages and by the block implementations registered in
// internal/kernel/registry.
//
// Every function here is pure, allocation-free and free of data-dependent
// branches: candidate results are always computed and the answer is chosen
// by lane masks.
package kernel
