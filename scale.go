package vecops

import "sync"

var (
	scaleBlockImpl        func(dst, src []float64, scale float64)
	scaleBlockInPlaceImpl func(dst []float64, scale float64)
	scaleInitOnce         sync.Once
)

func initScaleKernels() {
	for _, entry := range eligibleEntries() {
		if scaleBlockImpl == nil && entry.ScaleBlock != nil {
			scaleBlockImpl = entry.ScaleBlock
		}
		if scaleBlockInPlaceImpl == nil && entry.ScaleBlockInPlace != nil {
			scaleBlockInPlaceImpl = entry.ScaleBlockInPlace
		}
	}
	if scaleBlockImpl == nil || scaleBlockInPlaceImpl == nil {
		panic("vecops: no scale kernel registered")
	}
}

// ScaleBlock multiplies each element by a scalar: dst[i] = src[i] * scale.
//
// Both slices must have equal length; a mismatch panics. dst may alias src.
func ScaleBlock(dst, src []float64, scale float64) {
	scaleInitOnce.Do(initScaleKernels)
	scaleBlockImpl(dst, src, scale)
}

// ScaleBlockInPlace multiplies each element by a scalar in-place:
// dst[i] *= scale.
func ScaleBlockInPlace(dst []float64, scale float64) {
	scaleInitOnce.Do(initScaleKernels)
	scaleBlockInPlaceImpl(dst, scale)
}
