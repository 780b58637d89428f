package strided

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// workerPanic carries a recovered panic value from a MapParallel worker
// back to the calling goroutine.
type workerPanic struct {
	value any
}

func (p *workerPanic) Error() string {
	return fmt.Sprintf("strided: worker panic: %v", p.value)
}

// MapParallel computes the same result as MapT, splitting [0, n) into
// contiguous chunks that run on separate goroutines.
//
// fn must be safe for concurrent use and its result must not depend on
// call order. The work runs sequentially through MapT when the visited
// windows of x and y may overlap, when strideY is 0 (every step writes the
// same element, and the last logical element must win), when there are
// fewer than two chunks' worth of elements, or when only one worker is
// configured.
//
// A panic in any chunk, including an out-of-range index, is re-raised on
// the caller's goroutine after all running chunks have stopped. Chunks
// not yet started when the panic is seen are skipped. Unlike MapT, chunks
// covering higher logical indices may already have been written by then,
// so only the elements of the failing chunk at and after the failing
// index are guaranteed untouched.
func MapParallel[F Float](n int, x []F, strideX, offsetX int, y []F, strideY, offsetY int, fn func(F) F, opts ...ParallelOption) []F {
	if n <= 0 {
		return y
	}

	cfg := ApplyParallelOptions(opts...)
	if cfg.Workers <= 1 || n < 2*cfg.MinChunk || strideY == 0 ||
		windowsOverlap(n, x, strideX, offsetX, y, strideY, offsetY) {
		return MapT(n, x, strideX, offsetX, y, strideY, offsetY, fn)
	}

	chunk := max((n+cfg.Workers-1)/cfg.Workers, cfg.MinChunk)

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(cfg.Workers)

	for start := 0; start < n; start += chunk {
		count := min(chunk, n-start)
		g.Go(func() (err error) {
			if ctx.Err() != nil {
				return nil
			}

			defer func() {
				if r := recover(); r != nil {
					err = &workerPanic{value: r}
				}
			}()

			MapT(count, x, strideX, offsetX+start*strideX, y, strideY, offsetY+start*strideY, fn)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		var wp *workerPanic
		if errors.As(err, &wp) {
			panic(wp.value)
		}

		panic(err)
	}

	return y
}
