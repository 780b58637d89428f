// Package strided applies unary transforms element-wise over strided
// float buffers.
//
// The core primitive is [MapT] (with the concrete [Map] and [Map32] forms).
// It visits N logical elements. The read index into x is
// offsetX + i*strideX and the write index into y is offsetY + i*strideY,
// for i = 0, 1, ..., N-1 in increasing order:
//
//	y[offsetY+i*strideY] = fn(x[offsetX+i*strideX])
//
// Strides are signed and counted in elements. A negative stride walks a
// buffer backwards from its offset, and a zero stride revisits the same
// position on every step. N <= 0 is a no-op. The destination slice is
// returned unchanged in identity, so calls can be chained.
//
// # Bounds
//
// [Map] does not validate its arguments. Every physical index goes through
// Go's checked slice indexing, so an index outside a buffer panics with a
// runtime index-out-of-range error. Elements for earlier logical indices
// have already been written at that point. Indices are never clamped or
// wrapped. Use [CheckBounds] or [MapChecked] to validate a layout up front
// and get an error instead.
//
// # Aliasing
//
// x and y may share memory. No defensive copy is made: a value written
// at logical index i is what a later logical index reads if it visits the
// same position.
//
// # Kernels
//
// [MapKernel] takes a built-in [Kernel] instead of a callback. For unit
// strides over non-overlapping (or identical) windows it runs a contiguous
// block implementation selected at runtime from the CPU features, and in
// every other layout it falls back to the scalar loop, so results never
// depend on the path taken.
//
// [MapParallel] splits large maps with pure transforms across goroutines.
package strided
