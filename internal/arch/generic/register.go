package generic

import (
	"github.com/cwbudde/algo-strided/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// init registers the pure Go kernels. They are the fallback when no SIMD
// variant applies or when ForceGeneric is set.
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,

		Copy:   Copy,
		Abs:    Abs,
		Negate: Negate,
		Square: Square,
		Sqrt:   Sqrt,
	})
}
