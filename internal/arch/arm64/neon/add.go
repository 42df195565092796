//go:build arm64 && !purego

package neon

// AddBlock performs element-wise addition: dst[i] = a[i] + b[i].
// 2x-unrolled for the 128-bit NEON registers. Slices must have equal
// length. Panics if lengths differ.
func AddBlock(dst, a, b []float64) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("vecops: slice length mismatch")
	}

	i := 0
	n := len(dst)
	for ; i+1 < n; i += 2 {
		dst[i] = a[i] + b[i]
		dst[i+1] = a[i+1] + b[i+1]
	}
	for ; i < n; i++ {
		dst[i] = a[i] + b[i]
	}
}

// AddBlockInPlace performs in-place element-wise addition: dst[i] += src[i].
// Slices must have equal length. Panics if lengths differ.
func AddBlockInPlace(dst, src []float64) {
	if len(dst) != len(src) {
		panic("vecops: slice length mismatch")
	}

	i := 0
	n := len(dst)
	for ; i+1 < n; i += 2 {
		dst[i] += src[i]
		dst[i+1] += src[i+1]
	}
	for ; i < n; i++ {
		dst[i] += src[i]
	}
}
