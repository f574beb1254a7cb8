//go:build amd64

package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// detectFeaturesImpl reads CPUID through x/sys/cpu. The 4-lane slab and
// sincos kernels only need SSE2, which every amd64 CPU has.
func detectFeaturesImpl() Features {
	return Features{
		HasSSE2:      cpu.X86.HasSSE2,
		HasAVX:       cpu.X86.HasAVX,
		HasAVX2:      cpu.X86.HasAVX2,
		HasAVX512:    cpu.X86.HasAVX512F,
		HasFMA:       cpu.X86.HasFMA,
		Architecture: runtime.GOARCH,
	}
}
