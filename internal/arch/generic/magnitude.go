package generic

import "math"

// Magnitude computes magnitudes from split re/im planes:
// dst[i] = sqrt(re[i]^2 + im[i]^2). Slices must have equal length. Panics
// if lengths differ.
func Magnitude(dst, re, im []float64) {
	if len(re) != len(im) || len(dst) != len(re) {
		panic("vecops: slice length mismatch")
	}
	for i := range dst {
		r := re[i]
		m := im[i]
		dst[i] = math.Sqrt(r*r + m*m)
	}
}

// Power computes squared magnitudes from split re/im planes:
// dst[i] = re[i]^2 + im[i]^2. Slices must have equal length. Panics if
// lengths differ.
func Power(dst, re, im []float64) {
	if len(re) != len(im) || len(dst) != len(re) {
		panic("vecops: slice length mismatch")
	}
	for i := range dst {
		r := re[i]
		m := im[i]
		dst[i] = r*r + m*m
	}
}
