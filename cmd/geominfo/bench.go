package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"text/tabwriter"
	"time"

	"github.com/cwbudde/algo-geom/internal/cpu"
	"github.com/cwbudde/algo-geom/internal/kernel"
	"github.com/cwbudde/algo-geom/internal/kernel/registry"
	"github.com/cwbudde/algo-geom/lane"
	"github.com/cwbudde/algo-geom/vec"
)

// benchInput is the shared workload every implementation is timed against.
type benchInput struct {
	angles []float64
	boxes  kernel.Boxes
	origin vec.Vec3[float64]
	inv    vec.Vec3[float64]
	qmin   vec.Vec3[float64]
	qmax   vec.Vec3[float64]
}

func newBenchInput(n int) benchInput {
	rng := rand.New(rand.NewSource(1))
	in := benchInput{
		angles: make([]float64, n),
		boxes:  kernel.NewBoxes(n),
		origin: vec.Vec3[float64]{-50, 0.5, 0.25},
		qmin:   vec.Vec3[float64]{-5, -5, -5},
		qmax:   vec.Vec3[float64]{5, 5, 5},
	}
	for i := range n {
		in.angles[i] = (rng.Float64()*2 - 1) * 100
		var c, h vec.Vec3[float64]
		for k := range 3 {
			c[k] = (rng.Float64()*2 - 1) * 20
			h[k] = rng.Float64() * 2
		}
		in.boxes.Set(i, c.Sub(h), c.Add(h))
	}
	dir := vec.Normalize(vec.Vec3[float64]{1, 0.1, 0.05})
	for k := range 3 {
		in.inv[k] = 1 / dir[k]
	}
	return in
}

type benchResult struct {
	kernel string
	op     string
	nsPer  float64
}

// measure returns the mean nanoseconds per element of fn over iters calls.
func measure(n, iters int, fn func()) float64 {
	fn()
	start := time.Now()
	for range iters {
		fn()
	}
	return float64(time.Since(start).Nanoseconds()) / float64(n*iters)
}

func benchEntry(e registry.OpEntry, in benchInput, iters int) []benchResult {
	n := len(in.angles)
	sinOut := make([]float64, n)
	cosOut := make([]float64, n)
	dist := make([]float64, n)
	hits := make([]bool, n)

	var out []benchResult
	if e.SinCosBlock != nil {
		out = append(out, benchResult{e.Name, "sincos", measure(n, iters, func() {
			e.SinCosBlock(sinOut, cosOut, in.angles)
		})})
	}
	if e.RayAABBBlock != nil {
		out = append(out, benchResult{e.Name, "ray-aabb", measure(n, iters, func() {
			e.RayAABBBlock(dist, &in.boxes, in.origin, in.inv, lane.M3{})
		})})
	}
	if e.OverlapAABBBlock != nil {
		out = append(out, benchResult{e.Name, "overlap-aabb", measure(n, iters, func() {
			e.OverlapAABBBlock(hits, in.qmin, in.qmax, &in.boxes)
		})})
	}
	return out
}

func runBench(w io.Writer, entries []registry.OpEntry, f cpu.Features, size, iters int) {
	in := newBenchInput(size)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Kernel\tOperation\tSize\tns/elem\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}
	if _, err := fmt.Fprintf(tw, "------\t---------\t----\t-------\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}
	for _, e := range entries {
		if !cpu.Supports(f, e.SIMDLevel) {
			continue
		}
		for _, r := range benchEntry(e, in, iters) {
			if _, err := fmt.Fprintf(tw, "%s\t%s\t%d\t%.2f\n", r.kernel, r.op, size, r.nsPer); err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
				return
			}
		}
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
