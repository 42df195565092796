package buffer

// ComplexBuffer wraps a complex128 slice with the same reuse-friendly
// semantics as Buffer. Each element stores an interleaved (re, im) pair of
// float64 fields, matching the layout the complex kernels operate on.
type ComplexBuffer struct {
	samples []complex128
}

// NewComplex returns a zero-filled ComplexBuffer of the given length.
func NewComplex(length int) *ComplexBuffer {
	if length < 0 {
		length = 0
	}
	return &ComplexBuffer{samples: make([]complex128, length)}
}

// ComplexFromSlice wraps an existing slice without copying.
// Mutations to the slice are visible through the ComplexBuffer and vice
// versa.
func ComplexFromSlice(s []complex128) *ComplexBuffer {
	return &ComplexBuffer{samples: s}
}

// Samples returns the underlying slice.
func (b *ComplexBuffer) Samples() []complex128 {
	return b.samples
}

// Len returns the current number of samples.
func (b *ComplexBuffer) Len() int {
	return len(b.samples)
}

// Cap returns the current capacity of the backing slice.
func (b *ComplexBuffer) Cap() int {
	return cap(b.samples)
}

// Grow ensures capacity is at least n, preserving existing data.
// If the current capacity is already >= n this is a no-op.
func (b *ComplexBuffer) Grow(n int) {
	if n <= cap(b.samples) {
		return
	}
	grown := make([]complex128, len(b.samples), n)
	copy(grown, b.samples)
	b.samples = grown
}

// Resize sets the length to n. Capacity is reused when it suffices;
// elements exposed beyond the previous length are zeroed either way.
func (b *ComplexBuffer) Resize(n int) {
	if n < 0 {
		n = 0
	}
	if n > cap(b.samples) {
		grown := make([]complex128, n)
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

// Zero sets every sample to 0.
func (b *ComplexBuffer) Zero() {
	clear(b.samples)
}

// ZeroRange sets the samples in [start, end) to 0, clamping both bounds
// to the valid index range.
func (b *ComplexBuffer) ZeroRange(start, end int) {
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

// Copy returns a deep copy of the buffer.
func (b *ComplexBuffer) Copy() *ComplexBuffer {
	s := make([]complex128, len(b.samples))
	copy(s, b.samples)
	return &ComplexBuffer{samples: s}
}
