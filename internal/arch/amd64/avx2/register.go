//go:build amd64 && !purego

package avx2

import (
	"github.com/cwbudde/algo-strided/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "avx2",
		SIMDLevel: cpu.SIMDAVX2,
		Priority:  20,

		Copy:   copyBlock,
		Abs:    absBlock,
		Negate: negateBlock,
		Square: squareBlock,
		Sqrt:   sqrtBlock,
	})
}
