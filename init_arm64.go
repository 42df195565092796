//go:build arm64 && !purego

package vecops

import (
	_ "github.com/cwbudde/algo-vecops/internal/arch/arm64/neon" // register NEON variant
	_ "github.com/cwbudde/algo-vecops/internal/arch/generic"    // register generic fallback
)
