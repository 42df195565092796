//go:build amd64 && !purego

package avx2

// MulComplexBlock performs element-wise complex multiplication:
// dst[i] = a[i] * b[i] with the products expanded as in the generic
// reference. 2x-unrolled (each complex element already carries two lanes).
// Slices must have equal length. Panics if lengths differ.
func MulComplexBlock(dst, a, b []complex128) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("vecops: slice length mismatch")
	}

	i := 0
	n := len(dst)
	for ; i+1 < n; i += 2 {
		ar0, ai0 := real(a[i]), imag(a[i])
		br0, bi0 := real(b[i]), imag(b[i])
		ar1, ai1 := real(a[i+1]), imag(a[i+1])
		br1, bi1 := real(b[i+1]), imag(b[i+1])
		dst[i] = complex(ar0*br0-ai0*bi0, ar0*bi0+ai0*br0)
		dst[i+1] = complex(ar1*br1-ai1*bi1, ar1*bi1+ai1*br1)
	}
	for ; i < n; i++ {
		ar, ai := real(a[i]), imag(a[i])
		br, bi := real(b[i]), imag(b[i])
		dst[i] = complex(ar*br-ai*bi, ar*bi+ai*br)
	}
}

// MulComplexBlockInPlace performs in-place element-wise complex
// multiplication: dst[i] *= src[i]. 2x-unrolled. Slices must have equal
// length. Panics if lengths differ.
func MulComplexBlockInPlace(dst, src []complex128) {
	if len(dst) != len(src) {
		panic("vecops: slice length mismatch")
	}

	i := 0
	n := len(dst)
	for ; i+1 < n; i += 2 {
		ar0, ai0 := real(dst[i]), imag(dst[i])
		br0, bi0 := real(src[i]), imag(src[i])
		ar1, ai1 := real(dst[i+1]), imag(dst[i+1])
		br1, bi1 := real(src[i+1]), imag(src[i+1])
		dst[i] = complex(ar0*br0-ai0*bi0, ar0*bi0+ai0*br0)
		dst[i+1] = complex(ar1*br1-ai1*bi1, ar1*bi1+ai1*br1)
	}
	for ; i < n; i++ {
		ar, ai := real(dst[i]), imag(dst[i])
		br, bi := real(src[i]), imag(src[i])
		dst[i] = complex(ar*br-ai*bi, ar*bi+ai*br)
	}
}

// MulConjComplexBlock performs element-wise multiplication by the conjugate
// of the second operand: dst[i] = a[i] * conj(b[i]). 2x-unrolled. Slices
// must have equal length. Panics if lengths differ.
func MulConjComplexBlock(dst, a, b []complex128) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("vecops: slice length mismatch")
	}

	i := 0
	n := len(dst)
	for ; i+1 < n; i += 2 {
		ar0, ai0 := real(a[i]), imag(a[i])
		br0, bi0 := real(b[i]), imag(b[i])
		ar1, ai1 := real(a[i+1]), imag(a[i+1])
		br1, bi1 := real(b[i+1]), imag(b[i+1])
		dst[i] = complex(ar0*br0+ai0*bi0, ai0*br0-ar0*bi0)
		dst[i+1] = complex(ar1*br1+ai1*bi1, ai1*br1-ar1*bi1)
	}
	for ; i < n; i++ {
		ar, ai := real(a[i]), imag(a[i])
		br, bi := real(b[i]), imag(b[i])
		dst[i] = complex(ar*br+ai*bi, ai*br-ar*bi)
	}
}
