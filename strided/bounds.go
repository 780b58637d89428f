package strided

import (
	"fmt"
	"math"
)

// MinLen returns the smallest buffer length that contains every index
// offset + i*stride for i in [0, n). It returns 0 for n <= 0.
//
// Returns ErrIndexOutOfRange if the lowest visited index is negative.
// Returns ErrIndexOverflow if the index arithmetic overflows int.
func MinLen(n, stride, offset int) (int, error) {
	if n <= 0 {
		return 0, nil
	}

	if offset < 0 {
		return 0, fmt.Errorf("%w: offset %d is negative", ErrIndexOutOfRange, offset)
	}

	steps := n - 1

	var span int
	if stride != 0 && steps > 0 {
		if stride == math.MinInt {
			return 0, ErrIndexOverflow
		}

		mag := stride
		if mag < 0 {
			mag = -mag
		}

		if steps > math.MaxInt/mag {
			return 0, ErrIndexOverflow
		}

		span = steps * stride
	}

	if span > 0 && offset > math.MaxInt-span {
		return 0, ErrIndexOverflow
	}

	last := offset + span
	if last < 0 {
		return 0, fmt.Errorf("%w: index %d is negative (offset %d, stride %d, n %d)",
			ErrIndexOutOfRange, last, offset, stride, n)
	}

	hi := offset
	if last > hi {
		hi = last
	}

	if hi == math.MaxInt {
		return 0, ErrIndexOverflow
	}

	return hi + 1, nil
}

// CheckBounds reports whether a buffer of length elements covers every
// index visited by n elements at stride starting from offset.
func CheckBounds(n, length, stride, offset int) error {
	need, err := MinLen(n, stride, offset)
	if err != nil {
		return err
	}

	if need > length {
		return fmt.Errorf("%w: need %d elements, have %d", ErrIndexOutOfRange, need, length)
	}

	return nil
}

// MapChecked validates the layout of both buffers and then runs MapT.
//
// For n <= 0 it returns y and a nil error without looking at the other
// arguments. Otherwise it returns ErrNilFunc for a nil fn, and an error
// wrapping ErrIndexOutOfRange or ErrIndexOverflow when either buffer is
// too small for its stride and offset. Nothing is written on error.
func MapChecked[F Float](n int, x []F, strideX, offsetX int, y []F, strideY, offsetY int, fn func(F) F) ([]F, error) {
	if n <= 0 {
		return y, nil
	}

	if fn == nil {
		return y, ErrNilFunc
	}

	if err := CheckBounds(n, len(x), strideX, offsetX); err != nil {
		return y, fmt.Errorf("source buffer: %w", err)
	}

	if err := CheckBounds(n, len(y), strideY, offsetY); err != nil {
		return y, fmt.Errorf("destination buffer: %w", err)
	}

	return MapT(n, x, strideX, offsetX, y, strideY, offsetY, fn), nil
}
