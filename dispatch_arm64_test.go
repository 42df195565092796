//go:build arm64 && !purego

package vecops

import (
	"testing"

	"github.com/cwbudde/algo-vecops/cpu"
)

func TestKernelSelection_ARM64Modes(t *testing.T) {
	tests := []struct {
		name     string
		features cpu.Features
		want     map[string]string
	}{
		{
			name:     "generic-forced",
			features: cpu.Features{ForceGeneric: true, Architecture: "arm64"},
			want: map[string]string{
				"AddBlock": "generic",
				"Sum":      "generic",
			},
		},
		{
			// NEON covers arithmetic, complex and reductions; scaling and
			// the fused and split-complex ops fall through to generic.
			name:     "neon",
			features: cpu.Features{HasNEON: true, Architecture: "arm64"},
			want: map[string]string{
				"AddBlock":        "neon",
				"MulBlock":        "neon",
				"MulComplexBlock": "neon",
				"Sum":             "neon",
				"ScaleBlock":      "generic",
				"AddMulBlock":     "generic",
				"Magnitude":       "generic",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cpu.SetForcedFeatures(tt.features)

			defer cpu.ResetDetection()

			choices := KernelSelection()
			byOp := make(map[string]string, len(choices))
			for _, choice := range choices {
				byOp[choice.Op] = choice.Impl
			}

			for op, wantImpl := range tt.want {
				if byOp[op] != wantImpl {
					t.Errorf("%s bound to %q, want %q", op, byOp[op], wantImpl)
				}
			}
		})
	}
}
