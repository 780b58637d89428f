//go:build arm64 && !purego

package neon

import (
	"fmt"
	"math"
	"testing"

	"github.com/cwbudde/algo-strided/internal/arch/generic"
)

func TestKernelsMatchGeneric_NEON(t *testing.T) {
	kernels := []struct {
		name string
		got  func(dst, src []float64)
		want func(dst, src []float64)
	}{
		{"copy", copyBlock, generic.Copy},
		{"abs", absBlock, generic.Abs},
		{"negate", negateBlock, generic.Negate},
		{"square", squareBlock, generic.Square},
		{"sqrt", sqrtBlock, generic.Sqrt},
	}

	for _, k := range kernels {
		for _, n := range []int{0, 1, 3, 4, 5, 8, 15, 64, 1023} {
			t.Run(fmt.Sprintf("%s/n=%d", k.name, n), func(t *testing.T) {
				src := make([]float64, n)
				for i := range src {
					src[i] = math.Sin(float64(i)) * 7
				}
				if k.name == "sqrt" {
					for i := range src {
						src[i] = math.Abs(src[i])
					}
				}

				got := make([]float64, n)
				want := make([]float64, n)
				k.got(got, src)
				k.want(want, src)

				for i := range got {
					if got[i] != want[i] {
						t.Fatalf("%s[%d] = %v, want %v", k.name, i, got[i], want[i])
					}
				}
			})
		}
	}
}
