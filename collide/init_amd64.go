//go:build amd64 && !purego

package collide

// This file imports amd64 implementation packages to trigger their init()
// functions, which register implementations with the global registry.

import (
	_ "github.com/cwbudde/algo-geom/internal/kernel/arch/generic"
	_ "github.com/cwbudde/algo-geom/internal/kernel/arch/lanes"
)
