//go:build amd64 && !purego

package avx2

import "math"

// Sum returns the sum of all elements in x using four independent
// accumulators, which breaks the add dependency chain. Returns 0 for an
// empty slice.
//
// The accumulator split changes the summation order relative to the
// generic kernel, so results may differ within floating-point rounding.
func Sum(x []float64) float64 {
	var s0, s1, s2, s3 float64

	i := 0
	n := len(x)
	for ; i+3 < n; i += 4 {
		s0 += x[i]
		s1 += x[i+1]
		s2 += x[i+2]
		s3 += x[i+3]
	}

	sum := (s0 + s1) + (s2 + s3)
	for ; i < n; i++ {
		sum += x[i]
	}

	return sum
}

// DotProduct returns sum(a[i] * b[i]) using four independent accumulators.
// Slices must have equal length. Panics if lengths differ. Returns 0 for
// empty slices.
func DotProduct(a, b []float64) float64 {
	if len(a) != len(b) {
		panic("vecops: slice length mismatch")
	}

	var s0, s1, s2, s3 float64

	i := 0
	n := len(a)
	for ; i+3 < n; i += 4 {
		s0 += a[i] * b[i]
		s1 += a[i+1] * b[i+1]
		s2 += a[i+2] * b[i+2]
		s3 += a[i+3] * b[i+3]
	}

	sum := (s0 + s1) + (s2 + s3)
	for ; i < n; i++ {
		sum += a[i] * b[i]
	}

	return sum
}

// MaxAbs returns the maximum absolute value in x. 4x-unrolled. Returns 0
// for an empty slice. NaN elements are ignored, matching the generic
// reference.
func MaxAbs(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}

	var m0, m1, m2, m3 float64

	i := 0
	n := len(x)
	for ; i+3 < n; i += 4 {
		if v := math.Abs(x[i]); v > m0 {
			m0 = v
		}
		if v := math.Abs(x[i+1]); v > m1 {
			m1 = v
		}
		if v := math.Abs(x[i+2]); v > m2 {
			m2 = v
		}
		if v := math.Abs(x[i+3]); v > m3 {
			m3 = v
		}
	}

	max := m0
	if m1 > max {
		max = m1
	}
	if m2 > max {
		max = m2
	}
	if m3 > max {
		max = m3
	}
	for ; i < n; i++ {
		if v := math.Abs(x[i]); v > max {
			max = v
		}
	}

	return max
}
