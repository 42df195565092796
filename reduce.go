package vecops

import "sync"

var (
	sumImpl        func(x []float64) float64
	dotProductImpl func(a, b []float64) float64
	maxAbsImpl     func(x []float64) float64
	reduceInitOnce sync.Once
)

func initReduceKernels() {
	for _, entry := range eligibleEntries() {
		if sumImpl == nil && entry.Sum != nil {
			sumImpl = entry.Sum
		}
		if dotProductImpl == nil && entry.DotProduct != nil {
			dotProductImpl = entry.DotProduct
		}
		if maxAbsImpl == nil && entry.MaxAbs != nil {
			maxAbsImpl = entry.MaxAbs
		}
	}
	if sumImpl == nil || dotProductImpl == nil || maxAbsImpl == nil {
		panic("vecops: no reduction kernel registered")
	}
}

// Sum returns the sum of all elements in x. Returns 0 for an empty slice.
//
// SIMD-levelled variants split the accumulator, so the summation order
// differs from a plain left-to-right loop within floating-point rounding.
func Sum(x []float64) float64 {
	reduceInitOnce.Do(initReduceKernels)
	return sumImpl(x)
}

// DotProduct returns sum(a[i] * b[i]). Both slices must have equal length;
// a mismatch panics. Returns 0 for empty slices.
func DotProduct(a, b []float64) float64 {
	reduceInitOnce.Do(initReduceKernels)
	return dotProductImpl(a, b)
}

// MaxAbs returns the maximum absolute value in x. Returns 0 for an empty
// slice. NaN elements are ignored, so an all-NaN input also returns 0.
func MaxAbs(x []float64) float64 {
	reduceInitOnce.Do(initReduceKernels)
	return maxAbsImpl(x)
}
