package sparse

import "errors"

var (
	// ErrIndexOutOfRange indicates a row or column index outside the matrix bounds.
	ErrIndexOutOfRange = errors.New("sparse: index out of range")
	// ErrNegativeIndex indicates a triplet carrying a negative row or column index.
	ErrNegativeIndex = errors.New("sparse: negative triplet index")
	// ErrDimensionMismatch indicates a vector length incompatible with the matrix shape.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")
)
