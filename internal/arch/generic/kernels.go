// Package generic provides the pure Go block kernels.
package generic

import "math"

// Copy sets dst[i] = src[i].
func Copy(dst, src []float64) {
	copy(dst, src)
}

// Abs sets dst[i] = |src[i]|.
func Abs(dst, src []float64) {
	src = src[:len(dst)]
	for i, v := range src {
		dst[i] = math.Abs(v)
	}
}

// Negate sets dst[i] = -src[i].
func Negate(dst, src []float64) {
	src = src[:len(dst)]
	for i, v := range src {
		dst[i] = -v
	}
}

// Square sets dst[i] = src[i]*src[i].
func Square(dst, src []float64) {
	src = src[:len(dst)]
	for i, v := range src {
		dst[i] = v * v
	}
}

// Sqrt sets dst[i] = sqrt(src[i]).
func Sqrt(dst, src []float64) {
	src = src[:len(dst)]
	for i, v := range src {
		dst[i] = math.Sqrt(v)
	}
}
