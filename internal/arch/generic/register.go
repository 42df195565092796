package generic

import (
	"github.com/cwbudde/algo-vecops/cpu"
	"github.com/cwbudde/algo-vecops/internal/arch/registry"
)

// init registers the pure Go kernels as the baseline fallback.
//
// This entry populates every operation slot; it is the guarantee that
// per-op binding always terminates with a usable kernel.
//
// Priority: 0 (lowest, used when no SIMD variant is eligible).
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,

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
