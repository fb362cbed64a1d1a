package fgraph

import "errors"

var (
	// ErrNilFactor indicates a nil *Factor was passed to the graph.
	ErrNilFactor = errors.New("fgraph: factor is nil")
	// ErrEmptyKey indicates a factor block referencing the empty key.
	ErrEmptyKey = errors.New("fgraph: variable key is empty")
	// ErrDuplicateKey indicates one factor carrying two blocks for the same key.
	ErrDuplicateKey = errors.New("fgraph: duplicate key within factor")
	// ErrBlockShape indicates a Jacobian block whose row count disagrees with
	// the factor residual, or whose rows are ragged or empty.
	ErrBlockShape = errors.New("fgraph: jacobian block shape mismatch")
	// ErrEmptyResidual indicates a factor with a zero-length residual.
	ErrEmptyResidual = errors.New("fgraph: residual is empty")
	// ErrDimensionMismatch indicates key dimensions that disagree across
	// factors, or a solution vector not exactly consumed by the key map.
	ErrDimensionMismatch = errors.New("fgraph: dimension mismatch")
)
