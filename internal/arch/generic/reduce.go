package generic

import "math"

// Sum returns the sum of all elements in x. Returns 0 for an empty slice.
func Sum(x []float64) float64 {
	sum := 0.0
	for i := range x {
		sum += x[i]
	}
	return sum
}

// DotProduct returns sum(a[i] * b[i]). Slices must have equal length.
// Panics if lengths differ. Returns 0 for empty slices.
func DotProduct(a, b []float64) float64 {
	if len(a) != len(b) {
		panic("vecops: slice length mismatch")
	}
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// MaxAbs returns the maximum absolute value in x. Returns 0 for an empty
// slice. NaN elements are ignored (comparisons against NaN are false), so
// an all-NaN input also returns 0; the unrolled variants must match this.
func MaxAbs(x []float64) float64 {
	max := 0.0
	for i := range x {
		if v := math.Abs(x[i]); v > max {
			max = v
		}
	}
	return max
}
