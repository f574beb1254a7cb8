// Package cpu reports which vector instruction sets the block geometry
// kernels may rely on.
//
// Detection runs once, on the first DetectFeatures call. The ALGOGEOM_SIMD
// environment variable caps the result: "generic" (or "none", "purego"),
// "sse2", "avx", "avx2" and "neon" are recognised, anything else is ignored.
// Tests pin a feature set with SetForcedFeatures.
package cpu

import (
	"os"
	"strings"
	"sync"
)

// EnvOverride names the environment variable read at detection time.
const EnvOverride = "ALGOGEOM_SIMD"

// SIMDLevel is an instruction set a kernel implementation is written for.
// Levels are only ordered within one architecture.
type SIMDLevel int

const (
	// SIMDNone is plain Go, valid everywhere.
	SIMDNone SIMDLevel = iota
	// SIMDSSE2 is the amd64 baseline; two float64 lanes per register.
	SIMDSSE2
	// SIMDAVX adds 256-bit float registers.
	SIMDAVX
	// SIMDAVX2 adds 256-bit integer operations and gathers.
	SIMDAVX2
	// SIMDAVX512 is 512-bit AVX-512F.
	SIMDAVX512
	// SIMDNEON is arm64 Advanced SIMD.
	SIMDNEON
)

var levelNames = [...]string{
	SIMDNone:   "None",
	SIMDSSE2:   "SSE2",
	SIMDAVX:    "AVX",
	SIMDAVX2:   "AVX2",
	SIMDAVX512: "AVX-512",
	SIMDNEON:   "NEON",
}

// String returns the conventional name of the level.
func (s SIMDLevel) String() string {
	if s >= 0 && int(s) < len(levelNames) {
		return levelNames[s]
	}
	return "Unknown"
}

// Features is the detected (or forced) capability set.
type Features struct {
	HasSSE2   bool
	HasAVX    bool
	HasAVX2   bool
	HasAVX512 bool
	HasFMA    bool
	HasNEON   bool

	// ForceGeneric restricts selection to SIMDNone kernels.
	ForceGeneric bool

	// Architecture is runtime.GOARCH.
	Architecture string
}

// Best returns the widest level f supports.
func (f Features) Best() SIMDLevel {
	for _, l := range []SIMDLevel{SIMDAVX512, SIMDAVX2, SIMDAVX, SIMDSSE2, SIMDNEON} {
		if Supports(f, l) {
			return l
		}
	}
	return SIMDNone
}

var (
	mu       sync.Mutex
	detected *Features
	forced   *Features
)

// DetectFeatures returns the capabilities of this machine after applying
// the ALGOGEOM_SIMD cap. It is safe for concurrent use.
func DetectFeatures() Features {
	mu.Lock()
	defer mu.Unlock()

	if forced != nil {
		return *forced
	}
	if detected == nil {
		f := applyOverride(detectFeaturesImpl(), os.Getenv(EnvOverride))
		detected = &f
	}
	return *detected
}

// SetForcedFeatures makes DetectFeatures return f until ResetDetection.
func SetForcedFeatures(f Features) {
	mu.Lock()
	defer mu.Unlock()
	forced = &f
}

// ResetDetection drops forced features and the cached detection result, so
// the next DetectFeatures call probes the hardware and environment again.
func ResetDetection() {
	mu.Lock()
	defer mu.Unlock()
	forced, detected = nil, nil
}

// ParseLevel maps an ALGOGEOM_SIMD value to a level.
func ParseLevel(s string) (SIMDLevel, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic", "none", "purego":
		return SIMDNone, true
	case "sse2":
		return SIMDSSE2, true
	case "avx":
		return SIMDAVX, true
	case "avx2":
		return SIMDAVX2, true
	case "neon":
		return SIMDNEON, true
	default:
		return SIMDNone, false
	}
}

// applyOverride clears every feature above the level named by env.
func applyOverride(f Features, env string) Features {
	level, ok := ParseLevel(env)
	if !ok {
		return f
	}

	switch level {
	case SIMDNone:
		f.ForceGeneric = true
	case SIMDSSE2:
		f.HasAVX, f.HasAVX2, f.HasAVX512, f.HasFMA = false, false, false, false
	case SIMDAVX:
		f.HasAVX2, f.HasAVX512, f.HasFMA = false, false, false
	case SIMDAVX2:
		f.HasAVX512 = false
	case SIMDNEON:
		f.HasSSE2, f.HasAVX, f.HasAVX2, f.HasAVX512 = false, false, false, false
	}
	return f
}

// Supports reports whether an implementation written for level may run on
// a machine with features.
func Supports(features Features, level SIMDLevel) bool {
	if features.ForceGeneric {
		return level == SIMDNone
	}

	switch level {
	case SIMDNone:
		return true
	case SIMDSSE2:
		return features.HasSSE2
	case SIMDAVX:
		return features.HasAVX
	case SIMDAVX2:
		return features.HasAVX2
	case SIMDAVX512:
		return features.HasAVX512
	case SIMDNEON:
		return features.HasNEON
	default:
		return false
	}
}
