//go:build purego || !(amd64 || arm64)

package strided

import (
	_ "github.com/cwbudde/algo-strided/internal/arch/generic"  // register generic backend
	_ "github.com/cwbudde/algo-strided/internal/arch/registry" // initialize backend registry
)
