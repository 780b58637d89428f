//go:build arm64 && !purego

// Package neon provides block kernels for arm64. Square runs on
// algo-vecmath's NEON multiply; the rest are 2x-unrolled loops.
package neon

import (
	"math"

	vecmath "github.com/cwbudde/algo-vecmath"
)

func copyBlock(dst, src []float64) {
	copy(dst, src)
}

func absBlock(dst, src []float64) {
	n := len(dst)
	src = src[:n]

	i := 0
	for ; i+1 < n; i += 2 {
		x0, x1 := src[i], src[i+1]
		dst[i] = math.Abs(x0)
		dst[i+1] = math.Abs(x1)
	}

	if i < n {
		dst[i] = math.Abs(src[i])
	}
}

func negateBlock(dst, src []float64) {
	n := len(dst)
	src = src[:n]

	i := 0
	for ; i+1 < n; i += 2 {
		x0, x1 := src[i], src[i+1]
		dst[i] = -x0
		dst[i+1] = -x1
	}

	if i < n {
		dst[i] = -src[i]
	}
}

func squareBlock(dst, src []float64) {
	vecmath.MulBlock(dst, src, src)
}

func sqrtBlock(dst, src []float64) {
	n := len(dst)
	src = src[:n]

	i := 0
	for ; i+1 < n; i += 2 {
		x0, x1 := src[i], src[i+1]
		dst[i] = math.Sqrt(x0)
		dst[i+1] = math.Sqrt(x1)
	}

	if i < n {
		dst[i] = math.Sqrt(src[i])
	}
}
