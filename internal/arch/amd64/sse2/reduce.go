//go:build amd64 && !purego

package sse2

import "math"

// Sum returns the sum of all elements in x using two independent
// accumulators (one per 128-bit lane pair). Returns 0 for an empty slice.
func Sum(x []float64) float64 {
	var s0, s1 float64

	i := 0
	n := len(x)
	for ; i+1 < n; i += 2 {
		s0 += x[i]
		s1 += x[i+1]
	}

	sum := s0 + s1
	for ; i < n; i++ {
		sum += x[i]
	}

	return sum
}

// DotProduct returns sum(a[i] * b[i]) using two independent accumulators.
// Slices must have equal length. Panics if lengths differ. Returns 0 for
// empty slices.
func DotProduct(a, b []float64) float64 {
	if len(a) != len(b) {
		panic("vecops: slice length mismatch")
	}

	var s0, s1 float64

	i := 0
	n := len(a)
	for ; i+1 < n; i += 2 {
		s0 += a[i] * b[i]
		s1 += a[i+1] * b[i+1]
	}

	sum := s0 + s1
	for ; i < n; i++ {
		sum += a[i] * b[i]
	}

	return sum
}

// MaxAbs returns the maximum absolute value in x. 2x-unrolled. Returns 0
// for an empty slice. NaN elements are ignored, matching the generic
// reference.
func MaxAbs(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}

	var m0, m1 float64

	i := 0
	n := len(x)
	for ; i+1 < n; i += 2 {
		if v := math.Abs(x[i]); v > m0 {
			m0 = v
		}
		if v := math.Abs(x[i+1]); v > m1 {
			m1 = v
		}
	}

	max := m0
	if m1 > max {
		max = m1
	}
	for ; i < n; i++ {
		if v := math.Abs(x[i]); v > max {
			max = v
		}
	}

	return max
}
