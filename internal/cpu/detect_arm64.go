//go:build arm64

package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// detectFeaturesImpl reports Advanced SIMD, mandatory on ARMv8, which also
// provides fused multiply-add for float64 lanes.
func detectFeaturesImpl() Features {
	return Features{
		HasNEON:      cpu.ARM64.HasASIMD,
		HasFMA:       cpu.ARM64.HasASIMD,
		Architecture: runtime.GOARCH,
	}
}
