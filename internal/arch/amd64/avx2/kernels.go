//go:build amd64 && !purego

// Package avx2 provides block kernels selected on AVX2-capable CPUs.
//
// Square and Negate run on algo-vecmath's SIMD multiply and scale. Abs and
// Sqrt are 4x-unrolled scalar loops.
package avx2

import (
	"math"

	vecmath "github.com/cwbudde/algo-vecmath"
)

func copyBlock(dst, src []float64) {
	copy(dst, src)
}

func squareBlock(dst, src []float64) {
	vecmath.MulBlock(dst, src, src)
}

func absBlock(dst, src []float64) {
	n := len(dst)
	src = src[:n]

	i := 0
	for ; i+3 < n; i += 4 {
		x0, x1, x2, x3 := src[i], src[i+1], src[i+2], src[i+3]
		dst[i] = math.Abs(x0)
		dst[i+1] = math.Abs(x1)
		dst[i+2] = math.Abs(x2)
		dst[i+3] = math.Abs(x3)
	}

	for ; i < n; i++ {
		dst[i] = math.Abs(src[i])
	}
}

func negateBlock(dst, src []float64) {
	vecmath.ScaleBlock(dst, src, -1)
}

func sqrtBlock(dst, src []float64) {
	n := len(dst)
	src = src[:n]

	i := 0
	for ; i+3 < n; i += 4 {
		x0, x1, x2, x3 := src[i], src[i+1], src[i+2], src[i+3]
		dst[i] = math.Sqrt(x0)
		dst[i+1] = math.Sqrt(x1)
		dst[i+2] = math.Sqrt(x2)
		dst[i+3] = math.Sqrt(x3)
	}

	for ; i < n; i++ {
		dst[i] = math.Sqrt(src[i])
	}
}
