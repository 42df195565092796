//go:build purego && (amd64 || arm64)

package vecops

import (
	_ "github.com/cwbudde/algo-vecops/internal/arch/generic" // generic only under purego
)
