package strided

// Float is the set of element types accepted by the generic map functions.
type Float interface {
	~float32 | ~float64
}

// MapT applies fn to n elements of x and stores the results in y.
//
// Logical index i reads x[offsetX+i*strideX] and writes
// y[offsetY+i*strideY]. Indices are visited for i = 0..n-1 in that order,
// and fn is called exactly once per index. If n <= 0, y is returned
// untouched and fn is never called.
//
// MapT returns y. Out-of-range indices panic through Go's slice bounds
// checks; see the package documentation.
func MapT[F Float](n int, x []F, strideX, offsetX int, y []F, strideY, offsetY int, fn func(F) F) []F {
	if n <= 0 {
		return y
	}

	ix := offsetX
	iy := offsetY
	for i := 0; i < n; i++ {
		y[iy] = fn(x[ix])
		ix += strideX
		iy += strideY
	}

	return y
}

// Map is MapT for float64 buffers.
func Map(n int, x []float64, strideX, offsetX int, y []float64, strideY, offsetY int, fn func(float64) float64) []float64 {
	return MapT(n, x, strideX, offsetX, y, strideY, offsetY, fn)
}

// Map32 is MapT for float32 buffers.
func Map32(n int, x []float32, strideX, offsetX int, y []float32, strideY, offsetY int, fn func(float32) float32) []float32 {
	return MapT(n, x, strideX, offsetX, y, strideY, offsetY, fn)
}

// OffsetFor returns the starting index for n elements at stride when the
// buffer is addressed BLAS style: forward strides start at 0 and negative
// strides start at the far end, (1-n)*stride.
func OffsetFor(n, stride int) int {
	if n <= 0 || stride >= 0 {
		return 0
	}

	return (1 - n) * stride
}

// MapStrided is MapT with offsets derived from the strides by OffsetFor.
func MapStrided[F Float](n int, x []F, strideX int, y []F, strideY int, fn func(F) F) []F {
	return MapT(n, x, strideX, OffsetFor(n, strideX), y, strideY, OffsetFor(n, strideY), fn)
}
