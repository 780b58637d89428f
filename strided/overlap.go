package strided

import "unsafe"

// span returns the half-open address range covering every element visited
// by n steps of stride from offset in buf. Interleaved strides are
// treated as covering the whole range.
func span[F Float](buf []F, n, stride, offset int) (lo, hi uintptr) {
	var zero F
	size := unsafe.Sizeof(zero)

	first := offset
	last := offset + (n-1)*stride
	if first > last {
		first, last = last, first
	}

	base := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))

	return base + uintptr(first)*size, base + uintptr(last+1)*size
}

// windowsOverlap reports whether the regions of x and y visited by a map
// of n elements may share memory.
func windowsOverlap[F Float](n int, x []F, strideX, offsetX int, y []F, strideY, offsetY int) bool {
	if n <= 0 || len(x) == 0 || len(y) == 0 {
		return false
	}

	xlo, xhi := span(x, n, strideX, offsetX)
	ylo, yhi := span(y, n, strideY, offsetY)

	return xlo < yhi && ylo < xhi
}

// sameStart reports whether x[offsetX] and y[offsetY] are the same element.
func sameStart[F Float](x []F, offsetX int, y []F, offsetY int) bool {
	if len(x) == 0 || len(y) == 0 {
		return false
	}

	var zero F
	size := unsafe.Sizeof(zero)
	xa := uintptr(unsafe.Pointer(unsafe.SliceData(x))) + uintptr(offsetX)*size
	ya := uintptr(unsafe.Pointer(unsafe.SliceData(y))) + uintptr(offsetY)*size

	return xa == ya
}
