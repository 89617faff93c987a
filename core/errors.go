package core

import "errors"

var (
	// ErrInvalidConfiguration covers malformed kernels: empty, non-square,
	// even side length, zero or non-finite factor, non-finite offset.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrInvalidInput covers nil or empty pixel buffers.
	ErrInvalidInput = errors.New("invalid input")
)
