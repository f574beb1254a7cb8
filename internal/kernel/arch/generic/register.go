package generic

import (
	"github.com/cwbudde/algo-geom/internal/cpu"
	"github.com/cwbudde/algo-geom/internal/kernel/registry"
)

// init registers the scalar implementations with the kernel registry.
//
// Generic implementations serve as the baseline fallback when no wider lane
// kernels are selected or when ForceGeneric is enabled for testing.
//
// Priority: 0 (lowest - used only when no alternatives are available)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,

		SinCosBlock:      SinCosBlock,
		RayAABBBlock:     RayAABBBlock,
		OverlapAABBBlock: OverlapAABBBlock,
	})
}
