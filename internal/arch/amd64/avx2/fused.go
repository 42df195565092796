//go:build amd64 && !purego

package avx2

// AddMulBlock performs fused add-multiply: dst[i] = (a[i] + b[i]) * scale.
// 4x-unrolled. Slices must have equal length. Panics if lengths differ.
func AddMulBlock(dst, a, b []float64, scale float64) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("vecops: slice length mismatch")
	}

	i := 0
	n := len(dst)
	for ; i+3 < n; i += 4 {
		dst[i] = (a[i] + b[i]) * scale
		dst[i+1] = (a[i+1] + b[i+1]) * scale
		dst[i+2] = (a[i+2] + b[i+2]) * scale
		dst[i+3] = (a[i+3] + b[i+3]) * scale
	}
	for ; i < n; i++ {
		dst[i] = (a[i] + b[i]) * scale
	}
}

// MulAddBlock performs fused multiply-add: dst[i] = a[i]*b[i] + c[i].
// 4x-unrolled. Slices must have equal length. Panics if lengths differ.
func MulAddBlock(dst, a, b, c []float64) {
	if len(a) != len(b) || len(dst) != len(a) || len(c) != len(a) {
		panic("vecops: slice length mismatch")
	}

	i := 0
	n := len(dst)
	for ; i+3 < n; i += 4 {
		dst[i] = a[i]*b[i] + c[i]
		dst[i+1] = a[i+1]*b[i+1] + c[i+1]
		dst[i+2] = a[i+2]*b[i+2] + c[i+2]
		dst[i+3] = a[i+3]*b[i+3] + c[i+3]
	}
	for ; i < n; i++ {
		dst[i] = a[i]*b[i] + c[i]
	}
}
