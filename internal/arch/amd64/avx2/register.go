//go:build amd64 && !purego

// Package avx2 provides the AVX2-levelled kernel variants: 4x-unrolled
// loops over 256-bit-friendly strides, written in pure Go so the compiler
// vectorizes the straight-line bodies. Assembly kernels can be swapped in
// behind the same registration without touching the dispatch layer.
package avx2

import (
	"github.com/cwbudde/algo-vecops/cpu"
	"github.com/cwbudde/algo-vecops/internal/arch/registry"
)

// init registers the AVX2 variant.
//
// AVX2 is available on Intel Haswell (2013+) and AMD Excavator (2015+).
//
// Priority: 20 (preferred over NEON/SSE2/generic when eligible).
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "avx2",
		SIMDLevel: cpu.SIMDAVX2,
		Priority:  20,

		AddBlock:        AddBlock,
		AddBlockInPlace: AddBlockInPlace,
		SubBlock:        SubBlock,
		SubBlockInPlace: SubBlockInPlace,
		MulBlock:        MulBlock,
		MulBlockInPlace: MulBlockInPlace,

		ScaleBlock:        ScaleBlock,
		ScaleBlockInPlace: ScaleBlockInPlace,

		AddMulBlock: AddMulBlock,
		MulAddBlock: MulAddBlock,

		MulComplexBlock:        MulComplexBlock,
		MulComplexBlockInPlace: MulComplexBlockInPlace,
		MulConjComplexBlock:    MulConjComplexBlock,

		Sum:        Sum,
		DotProduct: DotProduct,
		MaxAbs:     MaxAbs,

		Magnitude: Magnitude,
		Power:     Power,
	})
}
