package strided

import (
	"fmt"
	"math"
	"strings"
)

// Kernel names a built-in unary transform with a contiguous block
// implementation.
type Kernel int

const (
	// KernelIdentity copies values unchanged.
	KernelIdentity Kernel = iota
	// KernelAbs computes |x|.
	KernelAbs
	// KernelNegate computes -x.
	KernelNegate
	// KernelSquare computes x*x.
	KernelSquare
	// KernelSqrt computes sqrt(x).
	KernelSqrt

	numKernels
)

var kernelNames = [numKernels]string{
	KernelIdentity: "identity",
	KernelAbs:      "abs",
	KernelNegate:   "negate",
	KernelSquare:   "square",
	KernelSqrt:     "sqrt",
}

var kernelFuncs = [numKernels]func(float64) float64{
	KernelIdentity: func(v float64) float64 { return v },
	KernelAbs:      math.Abs,
	KernelNegate:   func(v float64) float64 { return -v },
	KernelSquare:   func(v float64) float64 { return v * v },
	KernelSqrt:     math.Sqrt,
}

func (k Kernel) valid() bool {
	return k >= 0 && k < numKernels
}

// String returns the kernel name as accepted by ParseKernel.
func (k Kernel) String() string {
	if !k.valid() {
		return fmt.Sprintf("Kernel(%d)", int(k))
	}

	return kernelNames[k]
}

// Func returns the scalar transform of k, or nil if k is not a known kernel.
func (k Kernel) Func() func(float64) float64 {
	if !k.valid() {
		return nil
	}

	return kernelFuncs[k]
}

// Kernels returns every built-in kernel in declaration order.
func Kernels() []Kernel {
	out := make([]Kernel, numKernels)
	for i := range out {
		out[i] = Kernel(i)
	}

	return out
}

// ParseKernel resolves a kernel by name, ignoring case and surrounding
// space.
func ParseKernel(name string) (Kernel, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range kernelNames {
		if n == name {
			return Kernel(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownKernel, name)
}
