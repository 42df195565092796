// Package buffer provides reusable sample buffer types and pools for
// allocation-friendly DSP processing. The vecops kernels accept raw
// []float64 and []complex128 slices and never allocate; Buffer and
// ComplexBuffer are optional conveniences on the caller side for managing
// allocation and reuse in hot paths.
package buffer
