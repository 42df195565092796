package vecops

import (
	"github.com/cwbudde/algo-vecops/cpu"
	"github.com/cwbudde/algo-vecops/internal/arch/registry"
)

// eligibleEntries returns the registered implementation variants the
// current CPU can run, highest priority first. Binding scans this list per
// operation: an entry may populate any subset of the operation slots and
// the remainder falls through to the next candidate. The generic entry
// populates every slot, so a scan always terminates.
func eligibleEntries() []registry.OpEntry {
	entries := registry.Global.Entries(cpu.DetectFeatures())
	if len(entries) == 0 {
		panic("vecops: no kernel implementations registered")
	}

	return entries
}
