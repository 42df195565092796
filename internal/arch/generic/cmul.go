package generic

// MulComplexBlock performs element-wise complex multiplication over
// interleaved (re, im) pairs:
//
//	dst[i] = (a.re*b.re - a.im*b.im) + (a.re*b.im + a.im*b.re)i
//
// The products are expanded explicitly so the kernel states the exact
// arithmetic the SIMD variants must reproduce. Slices must have equal
// length. Panics if lengths differ.
func MulComplexBlock(dst, a, b []complex128) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("vecops: slice length mismatch")
	}
	for i := range dst {
		ar, ai := real(a[i]), imag(a[i])
		br, bi := real(b[i]), imag(b[i])
		dst[i] = complex(ar*br-ai*bi, ar*bi+ai*br)
	}
}

// MulComplexBlockInPlace performs in-place element-wise complex
// multiplication: dst[i] *= src[i]. Slices must have equal length. Panics
// if lengths differ.
func MulComplexBlockInPlace(dst, src []complex128) {
	if len(dst) != len(src) {
		panic("vecops: slice length mismatch")
	}
	for i := range dst {
		ar, ai := real(dst[i]), imag(dst[i])
		br, bi := real(src[i]), imag(src[i])
		dst[i] = complex(ar*br-ai*bi, ar*bi+ai*br)
	}
}

// MulConjComplexBlock performs element-wise multiplication by the
// conjugate of the second operand: dst[i] = a[i] * conj(b[i]). This is the
// cross-spectrum kernel used by FFT-based correlation. Slices must have
// equal length. Panics if lengths differ.
func MulConjComplexBlock(dst, a, b []complex128) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("vecops: slice length mismatch")
	}
	for i := range dst {
		ar, ai := real(a[i]), imag(a[i])
		br, bi := real(b[i]), imag(b[i])
		dst[i] = complex(ar*br+ai*bi, ai*br-ar*bi)
	}
}
