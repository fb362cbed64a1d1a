package solver

import (
	"fmt"

	"github.com/katalvlaran/lsqgraph/ordering"
)

// Method selects the factorization algorithm used by Solve.
type Method int

const (
	// MethodQR solves the least-squares problem by Householder QR on A.
	MethodQR Method = iota

	// MethodCholesky solves the normal equations AᵗAx = Aᵗb by lower
	// Cholesky. Cheaper, less numerically robust.
	MethodCholesky
)

// Options configures the solvers via functional arguments. An invalid
// Option is recorded internally and surfaced as ErrOptionViolation when the
// solve is invoked.
type Options struct {
	// PivotTol is the relative threshold below which a QR diagonal is
	// treated as rank-deficient and a Cholesky pivot as non-positive.
	PivotTol float64

	// Method picks the factorization used by Solve.
	Method Method

	// Strategy is the fill-reducing ordering Solve computes when no cache
	// is supplied.
	Strategy ordering.Strategy

	// internal error recorded during option parsing
	err error
}

// Option configures solver behavior.
type Option func(*Options)

// DefaultOptions returns Options with sane defaults: QR with a COLAMD
// ordering and a 1e-12 relative pivot tolerance.
func DefaultOptions() Options {
	return Options{
		PivotTol: 1e-12,
		Method:   MethodQR,
		Strategy: ordering.COLAMD,
	}
}

// WithPivotTol overrides the relative pivot tolerance.
//
//	tol > 0: use tol
//	tol ≤ 0: invalid option → ErrOptionViolation
func WithPivotTol(tol float64) Option {
	return func(o *Options) {
		if tol <= 0 {
			o.err = fmt.Errorf("%w: PivotTol must be positive (%g)", ErrOptionViolation, tol)

			return
		}
		o.PivotTol = tol
	}
}

// WithMethod selects the factorization algorithm.
func WithMethod(m Method) Option {
	return func(o *Options) { o.Method = m }
}

// WithStrategy selects the ordering strategy Solve uses when it computes an
// ordering itself (no cache supplied).
func WithStrategy(st ordering.Strategy) Option {
	return func(o *Options) { o.Strategy = st }
}

// resolveOptions applies opts over the defaults and reports any recorded
// option violation.
func resolveOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}
