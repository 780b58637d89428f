//go:build amd64 && !purego

package strided

import (
	_ "github.com/cwbudde/algo-strided/internal/arch/amd64/avx2" // register AVX2 backend
	_ "github.com/cwbudde/algo-strided/internal/arch/generic"    // register generic backend
	_ "github.com/cwbudde/algo-strided/internal/arch/registry"   // initialize backend registry
)
