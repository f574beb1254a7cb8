//go:build amd64 && !purego

package lanes

import (
	"github.com/cwbudde/algo-geom/internal/cpu"
	"github.com/cwbudde/algo-geom/internal/kernel/registry"
)

// init registers the 4-lane implementations with the kernel registry.
//
// Four float64 lanes match one AVX register or two SSE2 registers; SSE2 is
// the amd64 baseline.
//
// Priority: 10 (preferred over generic when available)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "lanes4",
		SIMDLevel: cpu.SIMDSSE2,
		Priority:  10,

		SinCosBlock:      SinCosBlock,
		RayAABBBlock:     RayAABBBlock,
		OverlapAABBBlock: OverlapAABBBlock,
	})
}
