//go:build amd64 && !purego

package vecops

import (
	_ "github.com/cwbudde/algo-vecops/internal/arch/amd64/avx2" // register AVX2 variant
	_ "github.com/cwbudde/algo-vecops/internal/arch/amd64/sse2" // register SSE2 variant
	_ "github.com/cwbudde/algo-vecops/internal/arch/generic"    // register generic fallback
)
