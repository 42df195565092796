//go:build purego

package vecops

import "testing"

// Under the purego tag only the generic variant registers, so every op
// must bind to it regardless of CPU features.
func TestKernelSelection_PureGo(t *testing.T) {
	for _, choice := range KernelSelection() {
		if choice.Impl != "generic" {
			t.Errorf("%s bound to %q, want generic", choice.Op, choice.Impl)
		}
	}
}
