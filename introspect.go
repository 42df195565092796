package vecops

import (
	"github.com/cwbudde/algo-vecops/cpu"
	"github.com/cwbudde/algo-vecops/internal/arch/registry"
)

// ImplInfo describes one registered kernel implementation variant.
type ImplInfo struct {
	// Name identifies the variant ("generic", "sse2", "avx2", "neon").
	Name string

	// SIMDLevel is the instruction set the variant requires.
	SIMDLevel cpu.SIMDLevel

	// Priority orders candidates during binding; higher wins.
	Priority int

	// Ops lists the operations the variant provides, in the fixed
	// operation order used throughout the package.
	Ops []string

	// Eligible reports whether the current CPU can run the variant.
	Eligible bool
}

// KernelChoice records which variant one operation binds to on the
// current CPU.
type KernelChoice struct {
	Op        string
	Impl      string
	SIMDLevel cpu.SIMDLevel
}

// opSlots enumerates every operation slot of an entry in a fixed order.
// Binding in the dispatch files and reporting here must agree on the
// fall-through rule, so both scan entries highest priority first.
var opSlots = []struct {
	name string
	has  func(*registry.OpEntry) bool
}{
	{"AddBlock", func(e *registry.OpEntry) bool { return e.AddBlock != nil }},
	{"AddBlockInPlace", func(e *registry.OpEntry) bool { return e.AddBlockInPlace != nil }},
	{"SubBlock", func(e *registry.OpEntry) bool { return e.SubBlock != nil }},
	{"SubBlockInPlace", func(e *registry.OpEntry) bool { return e.SubBlockInPlace != nil }},
	{"MulBlock", func(e *registry.OpEntry) bool { return e.MulBlock != nil }},
	{"MulBlockInPlace", func(e *registry.OpEntry) bool { return e.MulBlockInPlace != nil }},
	{"ScaleBlock", func(e *registry.OpEntry) bool { return e.ScaleBlock != nil }},
	{"ScaleBlockInPlace", func(e *registry.OpEntry) bool { return e.ScaleBlockInPlace != nil }},
	{"AddMulBlock", func(e *registry.OpEntry) bool { return e.AddMulBlock != nil }},
	{"MulAddBlock", func(e *registry.OpEntry) bool { return e.MulAddBlock != nil }},
	{"MulComplexBlock", func(e *registry.OpEntry) bool { return e.MulComplexBlock != nil }},
	{"MulComplexBlockInPlace", func(e *registry.OpEntry) bool { return e.MulComplexBlockInPlace != nil }},
	{"MulConjComplexBlock", func(e *registry.OpEntry) bool { return e.MulConjComplexBlock != nil }},
	{"Sum", func(e *registry.OpEntry) bool { return e.Sum != nil }},
	{"DotProduct", func(e *registry.OpEntry) bool { return e.DotProduct != nil }},
	{"MaxAbs", func(e *registry.OpEntry) bool { return e.MaxAbs != nil }},
	{"Magnitude", func(e *registry.OpEntry) bool { return e.Magnitude != nil }},
	{"Power", func(e *registry.OpEntry) bool { return e.Power != nil }},
}

// Implementations returns every registered kernel variant, highest
// priority first, with the operations each provides and whether the
// current CPU can run it.
func Implementations() []ImplInfo {
	features := cpu.DetectFeatures()
	entries := registry.Global.ListEntries()

	infos := make([]ImplInfo, 0, len(entries))
	for i := range entries {
		entry := &entries[i]

		ops := make([]string, 0, len(opSlots))
		for _, slot := range opSlots {
			if slot.has(entry) {
				ops = append(ops, slot.name)
			}
		}

		infos = append(infos, ImplInfo{
			Name:      entry.Name,
			SIMDLevel: entry.SIMDLevel,
			Priority:  entry.Priority,
			Ops:       ops,
			Eligible:  cpu.Supports(features, entry.SIMDLevel),
		})
	}

	return infos
}

// KernelSelection reports, for every operation, the variant it binds to
// on the current CPU. The result reflects the same per-op fall-through
// the dispatch layer applies, so it matches what the kernels execute.
func KernelSelection() []KernelChoice {
	entries := eligibleEntries()

	choices := make([]KernelChoice, 0, len(opSlots))
	for _, slot := range opSlots {
		for i := range entries {
			if slot.has(&entries[i]) {
				choices = append(choices, KernelChoice{
					Op:        slot.name,
					Impl:      entries[i].Name,
					SIMDLevel: entries[i].SIMDLevel,
				})

				break
			}
		}
	}

	return choices
}
