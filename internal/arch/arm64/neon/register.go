//go:build arm64 && !purego

// Package neon provides the NEON-levelled kernel variants for arm64:
// 2x-unrolled loops sized to the 128-bit Advanced SIMD registers, written
// in pure Go.
package neon

import (
	"github.com/cwbudde/algo-vecops/cpu"
	"github.com/cwbudde/algo-vecops/internal/arch/registry"
)

// init registers the NEON variant.
//
// Advanced SIMD is mandatory on ARMv8, so this entry is eligible on every
// arm64 system Go supports. Scaling, the fused forms and the split-complex
// helpers are not specialized at this level and bind to generic.
//
// Priority: 15 (above SSE2, below AVX2; the levels never compete on one
// machine, the ordering just keeps the convention in one place).
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "neon",
		SIMDLevel: cpu.SIMDNEON,
		Priority:  15,

		AddBlock:        AddBlock,
		AddBlockInPlace: AddBlockInPlace,
		SubBlock:        SubBlock,
		SubBlockInPlace: SubBlockInPlace,
		MulBlock:        MulBlock,
		MulBlockInPlace: MulBlockInPlace,

		MulComplexBlock:        MulComplexBlock,
		MulComplexBlockInPlace: MulComplexBlockInPlace,
		MulConjComplexBlock:    MulConjComplexBlock,

		Sum:        Sum,
		DotProduct: DotProduct,
		MaxAbs:     MaxAbs,
	})
}
