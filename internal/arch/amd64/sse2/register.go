//go:build amd64 && !purego

// Package sse2 provides the SSE2-levelled kernel variants. SSE2 is part of
// the x86-64 baseline, so this entry is eligible on every amd64 CPU.
package sse2

import (
	"github.com/cwbudde/algo-vecops/cpu"
	"github.com/cwbudde/algo-vecops/internal/arch/registry"
)

// init registers the SSE2 variant.
//
// Only the reductions are implemented at this level: the 2x unroll pays for
// dependency-chained accumulation but adds nothing over the generic loop
// for streaming element-wise stores. Every other operation binds to the
// next eligible entry (AVX2 when available, otherwise generic).
//
// Priority: 10 (above generic, below NEON and AVX2).
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "sse2",
		SIMDLevel: cpu.SIMDSSE2,
		Priority:  10,

		Sum:        Sum,
		DotProduct: DotProduct,
		MaxAbs:     MaxAbs,
	})
}
