package buffer

// Buffer wraps a float64 slice so block-processing loops can resize and
// recycle scratch memory without re-allocating. The kernels take plain
// []float64; Samples bridges to them.
type Buffer struct {
	samples []float64
}

// New returns a zero-filled Buffer of the given length. Negative lengths
// are treated as zero.
func New(length int) *Buffer {
	if length < 0 {
		length = 0
	}
	return &Buffer{samples: make([]float64, length)}
}

// FromSlice wraps an existing slice without copying, so writes through
// either the slice or the Buffer are visible through both.
func FromSlice(s []float64) *Buffer {
	return &Buffer{samples: s}
}

// Samples returns the underlying slice.
func (b *Buffer) Samples() []float64 {
	return b.samples
}

// Len returns the current number of samples.
func (b *Buffer) Len() int {
	return len(b.samples)
}

// Cap returns the current capacity of the backing slice.
func (b *Buffer) Cap() int {
	return cap(b.samples)
}

// Resize sets the length to n. Capacity is reused when it suffices;
// elements exposed beyond the previous length are zeroed either way, so a
// shrink followed by a grow never leaks stale samples.
func (b *Buffer) Resize(n int) {
	if n < 0 {
		n = 0
	}
	if n > cap(b.samples) {
		grown := make([]float64, n)
		copy(grown, b.samples)
		b.samples = grown
		return
	}
	oldLen := len(b.samples)
	b.samples = b.samples[:n]
	if n > oldLen {
		clear(b.samples[oldLen:])
	}
}

// Grow raises the capacity to at least n without changing the length.
// A no-op when the capacity already suffices.
func (b *Buffer) Grow(n int) {
	if n <= cap(b.samples) {
		return
	}
	grown := make([]float64, len(b.samples), n)
	copy(grown, b.samples)
	b.samples = grown
}

// Zero sets every sample to 0.
func (b *Buffer) Zero() {
	clear(b.samples)
}

// ZeroRange sets the samples in [start, end) to 0, clamping both bounds
// to the valid index range.
func (b *Buffer) ZeroRange(start, end int) {
	if start < 0 {
		start = 0
	}
	if end > len(b.samples) {
		end = len(b.samples)
	}
	if start < end {
		clear(b.samples[start:end])
	}
}

// Copy returns a deep copy sharing no memory with the receiver.
func (b *Buffer) Copy() *Buffer {
	s := make([]float64, len(b.samples))
	copy(s, b.samples)
	return &Buffer{samples: s}
}
