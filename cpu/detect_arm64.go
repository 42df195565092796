//go:build arm64

package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// detectFeaturesImpl reads the arm64 feature bits via golang.org/x/sys/cpu.
// Advanced SIMD is mandatory on ARMv8, so HasNEON is true on any arm64
// system Go runs on.
func detectFeaturesImpl() Features {
	return Features{
		HasNEON:      cpu.ARM64.HasASIMD,
		Architecture: runtime.GOARCH,
	}
}
