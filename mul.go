package vecops

import "sync"

var (
	mulBlockImpl        func(dst, a, b []float64)
	mulBlockInPlaceImpl func(dst, src []float64)
	mulInitOnce         sync.Once
)

func initMulKernels() {
	for _, entry := range eligibleEntries() {
		if mulBlockImpl == nil && entry.MulBlock != nil {
			mulBlockImpl = entry.MulBlock
		}
		if mulBlockInPlaceImpl == nil && entry.MulBlockInPlace != nil {
			mulBlockInPlaceImpl = entry.MulBlockInPlace
		}
	}
	if mulBlockImpl == nil || mulBlockInPlaceImpl == nil {
		panic("vecops: no mul kernel registered")
	}
}

// MulBlock performs element-wise multiplication: dst[i] = a[i] * b[i].
//
// All slices must have equal length; a mismatch panics. dst may alias a
// or b. A zero-length call is a no-op.
func MulBlock(dst, a, b []float64) {
	mulInitOnce.Do(initMulKernels)
	mulBlockImpl(dst, a, b)
}

// MulBlockInPlace performs in-place element-wise multiplication:
// dst[i] *= src[i].
//
// Both slices must have equal length; a mismatch panics.
func MulBlockInPlace(dst, src []float64) {
	mulInitOnce.Do(initMulKernels)
	mulBlockInPlaceImpl(dst, src)
}
