package strided

import "errors"

// Sentinel errors returned by the validating entry points.
var (
	// ErrNilFunc is returned when a transform is required but nil.
	ErrNilFunc = errors.New("strided: nil transform")

	// ErrIndexOutOfRange is returned when a visited physical index falls
	// outside its buffer, including negative indices.
	ErrIndexOutOfRange = errors.New("strided: index out of range")

	// ErrIndexOverflow is returned when offset + (n-1)*stride cannot be
	// represented as an int.
	ErrIndexOverflow = errors.New("strided: index computation overflows int")

	// ErrUnknownKernel is returned by ParseKernel for unrecognized names.
	ErrUnknownKernel = errors.New("strided: unknown kernel")
)
