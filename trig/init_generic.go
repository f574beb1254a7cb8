//go:build purego || !(amd64 || arm64)

package trig

// Scalar implementations only.

import (
	_ "github.com/cwbudde/algo-geom/internal/kernel/arch/generic"
)
