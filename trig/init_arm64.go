//go:build arm64 && !purego

package trig

import (
	_ "github.com/cwbudde/algo-geom/internal/kernel/arch/generic"
	_ "github.com/cwbudde/algo-geom/internal/kernel/arch/lanes"
)
