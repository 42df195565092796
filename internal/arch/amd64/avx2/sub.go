//go:build amd64 && !purego

package avx2

// SubBlock performs element-wise subtraction: dst[i] = a[i] - b[i].
// 4x-unrolled. Slices must have equal length. Panics if lengths differ.
func SubBlock(dst, a, b []float64) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("vecops: slice length mismatch")
	}

	i := 0
	n := len(dst)
	for ; i+3 < n; i += 4 {
		dst[i] = a[i] - b[i]
		dst[i+1] = a[i+1] - b[i+1]
		dst[i+2] = a[i+2] - b[i+2]
		dst[i+3] = a[i+3] - b[i+3]
	}
	for ; i < n; i++ {
		dst[i] = a[i] - b[i]
	}
}

// SubBlockInPlace performs in-place element-wise subtraction:
// dst[i] -= src[i]. Slices must have equal length. Panics if lengths differ.
func SubBlockInPlace(dst, src []float64) {
	if len(dst) != len(src) {
		panic("vecops: slice length mismatch")
	}

	i := 0
	n := len(dst)
	for ; i+3 < n; i += 4 {
		dst[i] -= src[i]
		dst[i+1] -= src[i+1]
		dst[i+2] -= src[i+2]
		dst[i+3] -= src[i+3]
	}
	for ; i < n; i++ {
		dst[i] -= src[i]
	}
}
