//go:build arm64 && !purego

package neon

import (
	"github.com/cwbudde/algo-strided/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// NEON is mandatory on arm64, so this variant wins over generic on every
// arm64 CPU unless ForceGeneric is set.
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "neon",
		SIMDLevel: cpu.SIMDNEON,
		Priority:  15,

		Copy:   copyBlock,
		Abs:    absBlock,
		Negate: negateBlock,
		Square: squareBlock,
		Sqrt:   sqrtBlock,
	})
}
