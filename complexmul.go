package vecops

import "sync"

var (
	mulComplexBlockImpl        func(dst, a, b []complex128)
	mulComplexBlockInPlaceImpl func(dst, src []complex128)
	mulConjComplexBlockImpl    func(dst, a, b []complex128)
	complexInitOnce            sync.Once
)

func initComplexKernels() {
	for _, entry := range eligibleEntries() {
		if mulComplexBlockImpl == nil && entry.MulComplexBlock != nil {
			mulComplexBlockImpl = entry.MulComplexBlock
		}
		if mulComplexBlockInPlaceImpl == nil && entry.MulComplexBlockInPlace != nil {
			mulComplexBlockInPlaceImpl = entry.MulComplexBlockInPlace
		}
		if mulConjComplexBlockImpl == nil && entry.MulConjComplexBlock != nil {
			mulConjComplexBlockImpl = entry.MulConjComplexBlock
		}
	}
	if mulComplexBlockImpl == nil || mulComplexBlockInPlaceImpl == nil ||
		mulConjComplexBlockImpl == nil {
		panic("vecops: no complex kernel registered")
	}
}

// MulComplexBlock performs element-wise complex multiplication:
//
//	dst[i] = (a.re*b.re - a.im*b.im) + (a.re*b.im + a.im*b.re)i
//
// complex128 stores the real and imaginary parts as two adjacent float64
// fields, so buffers interoperate bit-for-bit with any (re, im) pair
// layout.
//
// All slices must have equal length; a mismatch panics. dst may alias a
// or b. A zero-length call is a no-op.
func MulComplexBlock(dst, a, b []complex128) {
	complexInitOnce.Do(initComplexKernels)
	mulComplexBlockImpl(dst, a, b)
}

// MulComplexBlockInPlace performs in-place element-wise complex
// multiplication: dst[i] *= src[i]. This is the spectral-product kernel
// for FFT-based convolution.
//
// Both slices must have equal length; a mismatch panics.
func MulComplexBlockInPlace(dst, src []complex128) {
	complexInitOnce.Do(initComplexKernels)
	mulComplexBlockInPlaceImpl(dst, src)
}

// MulConjComplexBlock performs element-wise multiplication by the
// conjugate of the second operand: dst[i] = a[i] * conj(b[i]). This is
// the cross-spectrum kernel for FFT-based correlation.
//
// All slices must have equal length; a mismatch panics. dst may alias a
// or b.
func MulConjComplexBlock(dst, a, b []complex128) {
	complexInitOnce.Do(initComplexKernels)
	mulConjComplexBlockImpl(dst, a, b)
}
