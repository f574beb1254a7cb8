//go:build arm64 && !purego

package lanes

import (
	"github.com/cwbudde/algo-geom/internal/cpu"
	"github.com/cwbudde/algo-geom/internal/kernel/registry"
)

// init registers the 4-lane implementations with the kernel registry.
//
// Priority: 10 (preferred over generic when NEON is available)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "lanes4",
		SIMDLevel: cpu.SIMDNEON,
		Priority:  10,

		SinCosBlock:      SinCosBlock,
		RayAABBBlock:     RayAABBBlock,
		OverlapAABBBlock: OverlapAABBBlock,
	})
}
