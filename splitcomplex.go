package vecops

import "sync"

var (
	magnitudeImpl func(dst, re, im []float64)
	powerImpl     func(dst, re, im []float64)
	splitInitOnce sync.Once
)

func initSplitComplexKernels() {
	for _, entry := range eligibleEntries() {
		if magnitudeImpl == nil && entry.Magnitude != nil {
			magnitudeImpl = entry.Magnitude
		}
		if powerImpl == nil && entry.Power != nil {
			powerImpl = entry.Power
		}
	}
	if magnitudeImpl == nil || powerImpl == nil {
		panic("vecops: no split-complex kernel registered")
	}
}

// Magnitude computes magnitudes from split re/im planes:
// dst[i] = sqrt(re[i]^2 + im[i]^2).
//
// All slices must have equal length; a mismatch panics. dst may alias re
// or im.
func Magnitude(dst, re, im []float64) {
	splitInitOnce.Do(initSplitComplexKernels)
	magnitudeImpl(dst, re, im)
}

// Power computes squared magnitudes from split re/im planes:
// dst[i] = re[i]^2 + im[i]^2.
//
// All slices must have equal length; a mismatch panics. dst may alias re
// or im.
func Power(dst, re, im []float64) {
	splitInitOnce.Do(initSplitComplexKernels)
	powerImpl(dst, re, im)
}
