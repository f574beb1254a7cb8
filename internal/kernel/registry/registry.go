// Package registry provides the implementation registry for block kernels.
//
// The registry-based dispatch system allows multiple implementation variants
// (scalar generic, 4-lane, ...) to coexist. The best implementation for
// the current CPU is selected automatically at runtime.
//
// Implementations register themselves via init() functions, and the public
// packages (trig, collide) use the registry to select the best implementation
// at first use based on detected CPU features.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-geom/internal/cpu"
	"github.com/cwbudde/algo-geom/internal/kernel"
	"github.com/cwbudde/algo-geom/lane"
	"github.com/cwbudde/algo-geom/vec"
)

// OpEntry represents a registered implementation variant for block kernels.
//
// Each entry contains typed function pointers for all supported operations at a
// specific SIMD level. Not all fields need to be populated.
type OpEntry struct {
	// Name is a human-readable identifier for this implementation (e.g., "generic", "lanes4").
	Name string

	// SIMDLevel indicates the SIMD instruction set required for this implementation.
	SIMDLevel cpu.SIMDLevel

	// Priority determines selection order when multiple compatible implementations exist.
	// Higher priority implementations are preferred. Suggested priorities:
	//   - Generic (SIMDNone): 0
	//   - 4-lane (SSE2/NEON): 10
	//   - AVX2: 20
	Priority int

	// SinCosBlock computes dstSin[i], dstCos[i] = sin(x[i]), cos(x[i]).
	SinCosBlock func(dstSin, dstCos, x []float64)

	// RayAABBBlock writes the slab entry parameter for every box, or
	// math.MaxFloat64 on a miss.
	RayAABBBlock func(dst []float64, boxes *kernel.Boxes, origin, inv vec.Vec3[float64], parallel lane.M3)

	// OverlapAABBBlock writes whether each box overlaps the query box.
	OverlapAABBBlock func(dst []bool, qmin, qmax vec.Vec3[float64], boxes *kernel.Boxes)
}

// OpRegistry manages the registration and lookup of implementation variants.
//
// Implementations register themselves via init() functions. At runtime, Lookup()
// selects the highest-priority implementation compatible with the current CPU.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool // true if entries are sorted by priority (descending)
}

// Global is the default registry instance used by all block kernels.
var Global = &OpRegistry{}

// Register adds an implementation variant to the registry.
//
// This function is typically called from init() functions in implementation
// packages. It is safe to call concurrently, but all registrations
// should complete before the first call to Lookup().
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup finds the best implementation variant for the given CPU features.
//
// Returns the highest-priority entry compatible with the CPU. If no compatible
// implementations are found, returns nil (which should never happen if a generic
// fallback is registered).
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

// sortByPriority sorts entries by priority in descending order.
// Must be called with r.mu held (write lock).
func (r *OpRegistry) sortByPriority() {
	// Insertion sort, the registry holds a handful of entries.
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of all registered entries.
// This function is primarily intended for testing and debugging.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all registered entries.
// This function is intended for testing purposes only.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
