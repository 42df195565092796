package vecops

import "sync"

var (
	addBlockImpl        func(dst, a, b []float64)
	addBlockInPlaceImpl func(dst, src []float64)
	addInitOnce         sync.Once
)

func initAddKernels() {
	for _, entry := range eligibleEntries() {
		if addBlockImpl == nil && entry.AddBlock != nil {
			addBlockImpl = entry.AddBlock
		}
		if addBlockInPlaceImpl == nil && entry.AddBlockInPlace != nil {
			addBlockInPlaceImpl = entry.AddBlockInPlace
		}
	}
	if addBlockImpl == nil || addBlockInPlaceImpl == nil {
		panic("vecops: no add kernel registered")
	}
}

// AddBlock performs element-wise addition: dst[i] = a[i] + b[i].
//
// All slices must have equal length; a mismatch panics. dst may alias a
// or b. A zero-length call is a no-op.
func AddBlock(dst, a, b []float64) {
	addInitOnce.Do(initAddKernels)
	addBlockImpl(dst, a, b)
}

// AddBlockInPlace performs in-place element-wise addition: dst[i] += src[i].
//
// Both slices must have equal length; a mismatch panics.
func AddBlockInPlace(dst, src []float64) {
	addInitOnce.Do(initAddKernels)
	addBlockInPlaceImpl(dst, src)
}
