//go:build arm64 && !purego

package strided

import (
	_ "github.com/cwbudde/algo-strided/internal/arch/arm64/neon" // register NEON backend
	_ "github.com/cwbudde/algo-strided/internal/arch/generic"    // register generic backend
	_ "github.com/cwbudde/algo-strided/internal/arch/registry"   // initialize backend registry
)
