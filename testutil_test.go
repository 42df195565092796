package vecops

import (
	"fmt"
	"math"
	"sync"
)

// Test sizes span every unroll remainder of the 2x and 4x kernels plus a
// few larger blocks.
var testSizes = []int{0, 1, 2, 3, 4, 5, 7, 8, 15, 16, 17, 31, 32, 33, 63, 64, 100, 1000}

// Benchmark sizes shared across all benchmark files.
var benchSizes = []struct {
	name string
	size int
}{
	{"16", 16},
	{"64", 64},
	{"256", 256},
	{"1K", 1024},
	{"4K", 4096},
	{"16K", 16384},
	{"64K", 65536},
}

func closeEnough(a, b float64) bool {
	const epsilon = 1e-14
	if a == b {
		return true
	}
	diff := math.Abs(a - b)
	if a == 0 || b == 0 {
		return diff < epsilon
	}
	return diff/math.Max(math.Abs(a), math.Abs(b)) < epsilon
}

func sizeStr(n int) string {
	return fmt.Sprintf("n=%d", n)
}

// sumWithin reports whether a reduction result matches the reference
// within floating-point reordering error. Split-accumulator kernels
// reorder the additions, so the achievable error scales with the sum of
// the absolute terms, not with the result: zero-mean inputs cancel to a
// value many orders of magnitude below the terms, and a relative check
// on that near-cancelling result rejects legitimate reorderings.
func sumWithin(got, want, absTermSum float64) bool {
	const epsilon = 1e-14
	return math.Abs(got-want) <= epsilon*(absTermSum+1)
}

// resetKernelBindingsForTest drops every cached per-op binding so the next
// kernel call re-resolves against the (possibly forced) CPU features.
func resetKernelBindingsForTest() {
	addBlockImpl = nil
	addBlockInPlaceImpl = nil
	addInitOnce = sync.Once{}

	subBlockImpl = nil
	subBlockInPlaceImpl = nil
	subInitOnce = sync.Once{}

	mulBlockImpl = nil
	mulBlockInPlaceImpl = nil
	mulInitOnce = sync.Once{}

	scaleBlockImpl = nil
	scaleBlockInPlaceImpl = nil
	scaleInitOnce = sync.Once{}

	addMulBlockImpl = nil
	mulAddBlockImpl = nil
	fusedInitOnce = sync.Once{}

	mulComplexBlockImpl = nil
	mulComplexBlockInPlaceImpl = nil
	mulConjComplexBlockImpl = nil
	complexInitOnce = sync.Once{}

	sumImpl = nil
	dotProductImpl = nil
	maxAbsImpl = nil
	reduceInitOnce = sync.Once{}

	magnitudeImpl = nil
	powerImpl = nil
	splitInitOnce = sync.Once{}
}
