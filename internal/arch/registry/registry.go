// Package registry holds the kernel implementation registry for the vecops
// dispatch layer.
//
// Architecture packages register an [OpEntry] per SIMD level from their
// init() functions. At first use the vecops package binds each operation to
// the highest-priority eligible entry that populates that operation's slot,
// so an entry may implement any subset of the operations and the remainder
// falls through to the next candidate (ultimately the generic fallback).
package registry

import (
	"sync"

	"github.com/cwbudde/algo-vecops/cpu"
)

// OpEntry is one registered kernel implementation variant. Only the
// operations provided at this SIMD level need to be populated.
type OpEntry struct {
	// Name identifies the variant in diagnostics ("generic", "avx2", ...).
	Name string

	// SIMDLevel is the instruction set the variant requires.
	SIMDLevel cpu.SIMDLevel

	// Priority orders candidates; higher wins. Convention:
	// generic 0, SSE2 10, AVX/NEON 15, AVX2 20.
	Priority int

	// Element-wise arithmetic. dst[i] = a[i] op b[i]; the in-place forms
	// fold src into dst.
	AddBlock        func(dst, a, b []float64)
	AddBlockInPlace func(dst, src []float64)
	SubBlock        func(dst, a, b []float64)
	SubBlockInPlace func(dst, src []float64)
	MulBlock        func(dst, a, b []float64)
	MulBlockInPlace func(dst, src []float64)

	// Scalar scaling.
	ScaleBlock        func(dst, src []float64, scale float64)
	ScaleBlockInPlace func(dst []float64, scale float64)

	// Fused forms. AddMulBlock: dst[i] = (a[i] + b[i]) * scale.
	// MulAddBlock: dst[i] = a[i]*b[i] + c[i].
	AddMulBlock func(dst, a, b []float64, scale float64)
	MulAddBlock func(dst, a, b, c []float64)

	// Complex element-wise products over interleaved (re, im) pairs.
	MulComplexBlock        func(dst, a, b []complex128)
	MulComplexBlockInPlace func(dst, src []complex128)
	MulConjComplexBlock    func(dst, a, b []complex128)

	// Reductions.
	Sum        func(x []float64) float64
	DotProduct func(a, b []float64) float64
	MaxAbs     func(x []float64) float64

	// Split-complex helpers over separate re/im planes.
	Magnitude func(dst, re, im []float64)
	Power     func(dst, re, im []float64)
}

// OpRegistry stores the registered implementation variants.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool
}

// Global is the registry all vecops kernels resolve against.
var Global = &OpRegistry{}

// Register adds an implementation variant. Called from arch package init()
// functions; registrations must complete before the first kernel call.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority entry whose SIMD level the given
// features support, or nil if nothing is registered.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.sortEntries()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

// Entries returns every entry eligible under features, highest priority
// first. Callers bind individual operations by scanning for the first entry
// that populates the wanted slot.
func (r *OpRegistry) Entries(features cpu.Features) []OpEntry {
	r.sortEntries()

	r.mu.RLock()
	defer r.mu.RUnlock()

	eligible := make([]OpEntry, 0, len(r.entries))
	for _, entry := range r.entries {
		if cpu.Supports(features, entry.SIMDLevel) {
			eligible = append(eligible, entry)
		}
	}

	return eligible
}

// ListEntries returns a copy of all registered entries, highest priority
// first, regardless of CPU eligibility. Intended for diagnostics and tests.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.sortEntries()

	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)

	return entries
}

// Reset clears all entries. Intended for tests.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}

func (r *OpRegistry) sortEntries() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sorted {
		return
	}

	// Insertion sort; the registry holds a handful of entries.
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}

	r.sorted = true
}
