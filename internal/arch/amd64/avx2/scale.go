//go:build amd64 && !purego

package avx2

// ScaleBlock multiplies each element by a scalar: dst[i] = src[i] * scale.
// 4x-unrolled. Slices must have equal length. Panics if lengths differ.
func ScaleBlock(dst, src []float64, scale float64) {
	if len(dst) != len(src) {
		panic("vecops: slice length mismatch")
	}

	i := 0
	n := len(dst)
	for ; i+3 < n; i += 4 {
		dst[i] = src[i] * scale
		dst[i+1] = src[i+1] * scale
		dst[i+2] = src[i+2] * scale
		dst[i+3] = src[i+3] * scale
	}
	for ; i < n; i++ {
		dst[i] = src[i] * scale
	}
}

// ScaleBlockInPlace multiplies each element by a scalar in-place:
// dst[i] *= scale. 4x-unrolled.
func ScaleBlockInPlace(dst []float64, scale float64) {
	i := 0
	n := len(dst)
	for ; i+3 < n; i += 4 {
		dst[i] *= scale
		dst[i+1] *= scale
		dst[i+2] *= scale
		dst[i+3] *= scale
	}
	for ; i < n; i++ {
		dst[i] *= scale
	}
}
