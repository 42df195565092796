package vecops

import "sync"

var (
	addMulBlockImpl func(dst, a, b []float64, scale float64)
	mulAddBlockImpl func(dst, a, b, c []float64)
	fusedInitOnce   sync.Once
)

func initFusedKernels() {
	for _, entry := range eligibleEntries() {
		if addMulBlockImpl == nil && entry.AddMulBlock != nil {
			addMulBlockImpl = entry.AddMulBlock
		}
		if mulAddBlockImpl == nil && entry.MulAddBlock != nil {
			mulAddBlockImpl = entry.MulAddBlock
		}
	}
	if addMulBlockImpl == nil || mulAddBlockImpl == nil {
		panic("vecops: no fused kernel registered")
	}
}

// AddMulBlock performs fused add-multiply: dst[i] = (a[i] + b[i]) * scale.
// The fused form saves one pass over the block compared to AddBlock
// followed by ScaleBlockInPlace, which matters for mix-and-gain loops.
//
// All slices must have equal length; a mismatch panics. dst may alias a
// or b.
func AddMulBlock(dst, a, b []float64, scale float64) {
	fusedInitOnce.Do(initFusedKernels)
	addMulBlockImpl(dst, a, b, scale)
}

// MulAddBlock performs fused multiply-add: dst[i] = a[i]*b[i] + c[i].
//
// All slices must have equal length; a mismatch panics. dst may alias any
// input.
func MulAddBlock(dst, a, b, c []float64) {
	fusedInitOnce.Do(initFusedKernels)
	mulAddBlockImpl(dst, a, b, c)
}
