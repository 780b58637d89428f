package strided_test

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-strided/strided"
)

func ExampleMap() {
	x := []float64{-1, -2, -3, -4, -5}
	y := make([]float64, 5)

	strided.Map(len(x), x, 1, 0, y, 1, 0, math.Abs)
	fmt.Println(y)
	// Output: [1 2 3 4 5]
}

func ExampleMap_negativeStrides() {
	x := []float64{-1, -2, -3, -4, -5}
	y := make([]float64, 5)

	// Read x[4], x[2], x[0] and write y[3], y[2], y[1].
	strided.Map(3, x, -2, 4, y, -1, 3, math.Abs)
	fmt.Println(y)
	// Output: [0 1 3 5 0]
}

func ExampleMapStrided() {
	x := []float64{1, 2, 3, 4}
	y := make([]float64, 4)

	// A negative stride starts from the far end of the buffer.
	strided.MapStrided(4, x, -1, y, 1, func(v float64) float64 { return v * 10 })
	fmt.Println(y)
	// Output: [40 30 20 10]
}

func ExampleMapChecked() {
	x := []float64{1, 2, 3}
	y := make([]float64, 3)

	_, err := strided.MapChecked(3, x, 2, 0, y, 1, 0, math.Sqrt)
	fmt.Println(errors.Is(err, strided.ErrIndexOutOfRange))
	fmt.Println(y)
	// Output:
	// true
	// [0 0 0]
}

func ExampleMapKernel() {
	k, err := strided.ParseKernel("square")
	if err != nil {
		panic(err)
	}

	buf := []float64{1, 2, 3, 4}
	strided.MapKernel(len(buf), buf, 1, 0, buf, 1, 0, k)
	fmt.Println(buf)
	// Output: [1 4 9 16]
}

func ExampleMapParallel() {
	x := make([]float64, 10000)
	for i := range x {
		x[i] = float64(i)
	}
	y := make([]float64, len(x))

	strided.MapParallel(len(x), x, 1, 0, y, 1, 0, math.Sqrt,
		strided.WithWorkers(4), strided.WithMinChunk(1000))
	fmt.Println(y[0], y[1], y[9801])
	// Output: 0 1 99
}
