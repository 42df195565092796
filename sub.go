package vecops

import "sync"

var (
	subBlockImpl        func(dst, a, b []float64)
	subBlockInPlaceImpl func(dst, src []float64)
	subInitOnce         sync.Once
)

func initSubKernels() {
	for _, entry := range eligibleEntries() {
		if subBlockImpl == nil && entry.SubBlock != nil {
			subBlockImpl = entry.SubBlock
		}
		if subBlockInPlaceImpl == nil && entry.SubBlockInPlace != nil {
			subBlockInPlaceImpl = entry.SubBlockInPlace
		}
	}
	if subBlockImpl == nil || subBlockInPlaceImpl == nil {
		panic("vecops: no sub kernel registered")
	}
}

// SubBlock performs element-wise subtraction: dst[i] = a[i] - b[i].
//
// All slices must have equal length; a mismatch panics. dst may alias a
// or b. A zero-length call is a no-op.
func SubBlock(dst, a, b []float64) {
	subInitOnce.Do(initSubKernels)
	subBlockImpl(dst, a, b)
}

// SubBlockInPlace performs in-place element-wise subtraction:
// dst[i] -= src[i].
//
// Both slices must have equal length; a mismatch panics.
func SubBlockInPlace(dst, src []float64) {
	subInitOnce.Do(initSubKernels)
	subBlockInPlaceImpl(dst, src)
}
