package inplace

import "errors"

var (
	ErrCapacityExceeded = errors.New("inplace: capacity exceeded")
	ErrOutOfRange       = errors.New("inplace: index out of range")
	// ErrStorage is wrapped by the panic raised when a Vector's storage type
	// is not an array of its element type.
	ErrStorage = errors.New("inplace: storage must be an array of the element type")
)
