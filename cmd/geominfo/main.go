// Command geominfo reports how the block geometry kernels are dispatched on
// this machine and optionally times every registered implementation.
//
// Usage:
//
//	geominfo [flags]
//
// Examples:
//
//	geominfo
//	geominfo -list
//	geominfo -bench -size 4096 -iters 200
//	ALGOGEOM_SIMD=generic geominfo -bench
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-geom/internal/cpu"
	"github.com/cwbudde/algo-geom/internal/kernel/registry"
	"github.com/viterin/vek/vek32"

	// Importing the public block APIs registers every implementation.
	_ "github.com/cwbudde/algo-geom/collide"
	_ "github.com/cwbudde/algo-geom/trig"
)

func main() {
	list := flag.Bool("list", false, "list registered kernel implementations and exit")
	bench := flag.Bool("bench", false, "time every registered implementation")
	size := flag.Int("size", 1024, "elements per block in benchmarks")
	iters := flag.Int("iters", 100, "benchmark repetitions per kernel")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: geominfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints CPU features and the block kernels selected for them.\n")
		fmt.Fprintf(os.Stderr, "Set %s to generic, sse2, avx2 or neon to cap the selection.\n\n", cpu.EnvOverride)
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  geominfo -list\n")
		fmt.Fprintf(os.Stderr, "  geominfo -bench -size 4096\n")
	}
	flag.Parse()

	if *size <= 0 || *iters <= 0 {
		fmt.Fprintf(os.Stderr, "error: -size and -iters must be positive\n")
		os.Exit(2)
	}

	features := cpu.DetectFeatures()
	entries := registry.Global.ListEntries()
	selected := ""
	if e := registry.Global.Lookup(features); e != nil {
		selected = e.Name
	}

	if *list {
		printKernels(os.Stdout, entries, features, selected)
		return
	}

	printFeatures(os.Stdout, features)
	fmt.Println()
	printKernels(os.Stdout, entries, features, selected)

	if *bench {
		fmt.Println()
		runBench(os.Stdout, entries, features, *size, *iters)
	}
}

func printFeatures(w io.Writer, f cpu.Features) {
	info := vek32.Info()
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	rows := [][2]string{
		{"Architecture", f.Architecture},
		{"SSE2", yesNo(f.HasSSE2)},
		{"AVX", yesNo(f.HasAVX)},
		{"AVX2", yesNo(f.HasAVX2)},
		{"AVX-512", yesNo(f.HasAVX512)},
		{"FMA", yesNo(f.HasFMA)},
		{"NEON", yesNo(f.HasNEON)},
		{"Best level", f.Best().String()},
		{"Forced generic", yesNo(f.ForceGeneric)},
		{"vek32 accelerated", yesNo(info.Acceleration)},
		{"vek32 features", strings.Join(info.CPUFeatures, " ")},
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", r[0], r[1]); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: failed to write feature row: %v\n", err)
			return
		}
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func printKernels(w io.Writer, entries []registry.OpEntry, f cpu.Features, selected string) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Kernel\tLevel\tPriority\tSupported\tSelected\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}
	if _, err := fmt.Fprintf(tw, "------\t-----\t--------\t---------\t--------\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}
	for _, e := range entries {
		mark := ""
		if e.Name == selected {
			mark = "*"
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n",
			e.Name, e.SIMDLevel, e.Priority, yesNo(cpu.Supports(f, e.SIMDLevel)), mark); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
