package solver

import "errors"

var (
	// ErrNilGraph indicates a nil *fgraph.Graph passed to Solve.
	ErrNilGraph = errors.New("solver: graph is nil")

	// ErrBadOrdering indicates an ordering that is not a permutation of the
	// Jacobian column range.
	ErrBadOrdering = errors.New("solver: ordering is not a valid column permutation")

	// ErrNotPositiveDefinite is returned by the Cholesky path when the
	// normal-equations matrix AᵗA is not positive definite within the pivot
	// tolerance — the signature of a singular or underdetermined factor
	// graph. The QR path remains available as the best-effort fallback.
	ErrNotPositiveDefinite = errors.New("solver: normal equations not positive definite")

	// ErrUnknownMethod indicates a Method value outside the closed set.
	ErrUnknownMethod = errors.New("solver: unknown solve method")

	// ErrOptionViolation indicates an invalid Option (e.g. a non-positive
	// pivot tolerance).
	ErrOptionViolation = errors.New("solver: invalid option supplied")
)
