package strided

import (
	"fmt"
	"sync"

	archregistry "github.com/cwbudde/algo-strided/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

var (
	selectedImpl   *archregistry.OpEntry
	selectInitOnce sync.Once
)

func initKernelImpl() {
	entry := archregistry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("strided: no kernel implementation registered (missing generic fallback?)")
	}

	selectedImpl = entry
}

func kernelImpl() *archregistry.OpEntry {
	selectInitOnce.Do(initKernelImpl)

	return selectedImpl
}

// Implementation returns the name of the block kernel variant selected for
// the current CPU, e.g. "generic", "avx2" or "neon".
func Implementation() string {
	return kernelImpl().Name
}

func blockFor(entry *archregistry.OpEntry, k Kernel) archregistry.BlockFn {
	switch k {
	case KernelIdentity:
		return entry.Copy
	case KernelAbs:
		return entry.Abs
	case KernelNegate:
		return entry.Negate
	case KernelSquare:
		return entry.Square
	case KernelSqrt:
		return entry.Sqrt
	default:
		return nil
	}
}

// MapKernel is Map with the scalar transform of k.
//
// When both strides are 1, both windows lie inside their buffers, and the
// windows are disjoint or start at the same element, the selected block
// kernel processes the whole window at once. Any other layout, including
// an out-of-range window, runs the scalar loop, so the result (and the
// prefix written before an index panic) is always identical to
// Map(n, x, strideX, offsetX, y, strideY, offsetY, k.Func()).
//
// MapKernel panics if k is not a built-in kernel and n > 0.
func MapKernel(n int, x []float64, strideX, offsetX int, y []float64, strideY, offsetY int, k Kernel) []float64 {
	if n <= 0 {
		return y
	}

	fn := k.Func()
	if fn == nil {
		panic(fmt.Sprintf("strided: unknown kernel %d", int(k)))
	}

	if strideX == 1 && strideY == 1 &&
		contiguousInRange(n, len(x), offsetX) && contiguousInRange(n, len(y), offsetY) {
		if block := blockFor(kernelImpl(), k); block != nil &&
			(sameStart(x, offsetX, y, offsetY) || !windowsOverlap(n, x, 1, offsetX, y, 1, offsetY)) {
			block(y[offsetY:offsetY+n], x[offsetX:offsetX+n])
			return y
		}
	}

	return MapT(n, x, strideX, offsetX, y, strideY, offsetY, fn)
}

// contiguousInRange reports whether [offset, offset+n) lies inside a buffer
// of length elements.
func contiguousInRange(n, length, offset int) bool {
	return offset >= 0 && n <= length && offset <= length-n
}
