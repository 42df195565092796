// Package vecops provides element-wise vector arithmetic kernels for DSP
// pipelines: block add/subtract/multiply over real samples, complex
// multiplication over interleaved (re, im) pairs, scalar scaling, fused
// forms, reductions and split-complex helpers.
//
// All kernels operate on caller-owned slices and follow one contract:
// every slice passed to a call must have the same length (a mismatch
// panics), a zero-length call is a no-op, the destination may alias an
// input since element i depends only on element i of the inputs, and no
// call allocates or retains state. Calls on disjoint buffers are safe to
// run concurrently.
//
// Each operation binds on first use to the fastest implementation variant
// the current CPU supports (AVX2, SSE2 or NEON levelled, with a pure Go
// fallback). The purego build tag and [cpu.Features.ForceGeneric] both pin
// the fallback. [Implementations] and [KernelSelection] report what is
// registered and what this machine bound.
package vecops
