// Package cpu detects the SIMD instruction sets available for kernel
// selection.
//
// Detection runs once, lazily, on the first call to [DetectFeatures] and is
// cached for the lifetime of the process. Tests can override the result with
// [SetForcedFeatures] and restore hardware detection with [ResetDetection].
package cpu

import "sync"

// SIMDLevel identifies a SIMD instruction set extension. Levels order
// roughly by capability within one architecture; levels from different
// architectures (AVX2 vs NEON) are not comparable.
type SIMDLevel int

const (
	// SIMDNone selects the pure Go fallback kernels.
	SIMDNone SIMDLevel = iota

	// SIMDSSE2 is the x86-64 baseline 128-bit SIMD.
	SIMDSSE2

	// SIMDAVX is x86-64 AVX.
	SIMDAVX

	// SIMDAVX2 is x86-64 AVX2 (256-bit).
	SIMDAVX2

	// SIMDAVX512 is x86-64 AVX-512 (512-bit).
	SIMDAVX512

	// SIMDNEON is ARM Advanced SIMD.
	SIMDNEON
)

// String returns the conventional name of the SIMD level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "None"
	case SIMDSSE2:
		return "SSE2"
	case SIMDAVX:
		return "AVX"
	case SIMDAVX2:
		return "AVX2"
	case SIMDAVX512:
		return "AVX-512"
	case SIMDNEON:
		return "NEON"
	default:
		return "Unknown"
	}
}

// Features describes the CPU capabilities relevant to kernel selection.
type Features struct {
	HasSSE2   bool
	HasAVX    bool
	HasAVX2   bool
	HasAVX512 bool

	HasNEON bool

	// ForceGeneric disables every SIMD-levelled kernel, leaving only the
	// generic fallback eligible. Intended for tests and debugging.
	ForceGeneric bool

	// Architecture records runtime.GOARCH at detection time.
	Architecture string
}

var (
	detectOnce       sync.Once
	detectedFeatures Features

	forcedMu       sync.RWMutex
	forcedFeatures *Features
)

// DetectFeatures returns the features of the current CPU. The first call
// performs detection; later calls return the cached result. Safe for
// concurrent use.
func DetectFeatures() Features {
	forcedMu.RLock()
	forced := forcedFeatures
	forcedMu.RUnlock()

	if forced != nil {
		return *forced
	}

	detectOnce.Do(func() {
		detectedFeatures = detectFeaturesImpl()
	})

	return detectedFeatures
}

// HasSSE2 reports whether the CPU supports SSE2.
func HasSSE2() bool {
	return DetectFeatures().HasSSE2
}

// HasAVX2 reports whether the CPU supports AVX2.
func HasAVX2() bool {
	return DetectFeatures().HasAVX2
}

// HasNEON reports whether the CPU supports ARM NEON (Advanced SIMD).
func HasNEON() bool {
	return DetectFeatures().HasNEON
}

// Supports reports whether features satisfy the requirements of level.
// ForceGeneric restricts eligibility to SIMDNone.
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

// SetForcedFeatures overrides detection with f until ResetDetection is
// called. Intended for tests.
func SetForcedFeatures(f Features) {
	forcedMu.Lock()
	defer forcedMu.Unlock()

	forced := f
	forcedFeatures = &forced
}

// ResetDetection clears a forced override so that DetectFeatures reports
// the hardware again. Intended for tests.
func ResetDetection() {
	forcedMu.Lock()
	defer forcedMu.Unlock()

	forcedFeatures = nil
}
