package trig

import (
	"sync"

	"github.com/cwbudde/algo-geom/internal/cpu"
	"github.com/cwbudde/algo-geom/internal/kernel/registry"
)

var (
	sinCosBlockImpl     func(dstSin, dstCos, x []float64)
	sinCosBlockInitOnce sync.Once
)

func initSinCosBlockOperation() {
	features := cpu.DetectFeatures()
	entry := registry.Global.Lookup(features)
	if entry == nil {
		panic("trig: no sincos implementation registered")
	}
	if entry.SinCosBlock == nil {
		panic("trig: selected implementation missing sincos operation")
	}
	sinCosBlockImpl = entry.SinCosBlock
}

// SinCosBlock computes dstSin[i], dstCos[i] = sin(x[i]), cos(x[i]).
// Slices must have equal length. Panics if lengths differ.
func SinCosBlock(dstSin, dstCos, x []float64) {
	sinCosBlockInitOnce.Do(initSinCosBlockOperation)
	sinCosBlockImpl(dstSin, dstCos, x)
}
