package solver

import (
	"math"

	"github.com/katalvlaran/lsqgraph/ordering"
	"github.com/katalvlaran/lsqgraph/sparse"
	"gonum.org/v1/gonum/floats"
)

// SolveQR solves the least-squares problem min‖Ax − b‖₂ for the augmented
// system [A|b], factoring A by Householder QR with its columns permuted by
// perm (perm[k] = original column at elimination position k; nil means the
// natural order).
//
// Implementation:
//  1. Split [A|b]; materialize the permuted columns into dense column
//     vectors (the reflectors fill them in anyway, so compressed storage
//     buys nothing during this factorization).
//  2. For k = 0..min(m,n)-1 build the Householder reflector of column k
//     below row k and apply it to the trailing columns and to b. A column
//     whose remaining norm falls below PivotTol·maxColNorm is structurally
//     dependent: it gets no reflector and a zero pivot.
//  3. Back-substitute R x̂ = Qᵗb, pinning x̂ to zero wherever the pivot was
//     zeroed, then undo the permutation.
//
// Numerical contract: the exact least-squares solution when A has full
// column rank. On rank deficiency (and for underdetermined systems, m < n)
// the dependent components are pinned to zero and the call still succeeds —
// a documented best-effort result, not an optimum over the full space.
//
// Deterministic, stateless, safe for concurrent use on independent inputs.
//
// Errors:
//   - ErrBadOrdering     — perm is not a permutation of A's column range.
//   - ErrOptionViolation — invalid Option.
func SolveQR(ab *sparse.Matrix, perm []int, opts ...Option) ([]float64, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	if ab == nil || ab.Cols() == 0 {
		return []float64{}, nil
	}

	a, b := ab.SplitAugmented()
	m, n := a.Rows(), a.Cols()
	if n == 0 {
		return []float64{}, nil
	}
	perm, err = normalizePerm(perm, n)
	if err != nil {
		return nil, err
	}

	// permuted dense working copy, column-major
	cols := make([][]float64, n)
	maxNorm := 0.0
	for k := 0; k < n; k++ {
		cols[k], _ = a.DenseCol(perm[k])
		if nrm := floats.Norm(cols[k], 2); nrm > maxNorm {
			maxNorm = nrm
		}
	}
	if maxNorm == 0 {
		// A is structurally zero: every direction is dependent.
		return make([]float64, n), nil
	}
	tol := o.PivotTol * maxNorm
	rhs := append([]float64(nil), b...)

	// pr is the next pivot row; it advances only when a reflector is built,
	// so a dependent column never wastes an elimination row on the columns
	// after it.
	diag := make([]float64, n)
	rowOf := make([]int, n)
	pr := 0
	for k := 0; k < n && pr < m; k++ {
		v := cols[k][pr:]
		nrm := floats.Norm(v, 2)
		if nrm <= tol {
			continue // dependent column: zero pivot, no reflector needed
		}
		alpha := -math.Copysign(nrm, v[0])
		v[0] -= alpha // v now holds the Householder vector
		tau := 2.0 / floats.Dot(v, v)

		for j := k + 1; j < n; j++ {
			u := cols[j][pr:]
			s := floats.Dot(v, u)
			floats.AddScaled(u, -tau*s, v)
		}
		u := rhs[pr:]
		s := floats.Dot(v, u)
		floats.AddScaled(u, -tau*s, v)

		diag[k] = alpha
		rowOf[k] = pr
		pr++
	}

	// back substitution over R; column k's pivot lives in row rowOf[k]
	xp := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		if diag[i] == 0 {
			continue // rank-deficient pivot: best-effort zero
		}
		sum := rhs[rowOf[i]]
		for j := i + 1; j < n; j++ {
			sum -= cols[j][rowOf[i]] * xp[j]
		}
		xp[i] = sum / diag[i]
	}

	// undo the column permutation
	x := make([]float64, n)
	for k, p := range perm {
		x[p] = xp[k]
	}

	return x, nil
}

// normalizePerm defaults a nil ordering to the identity and validates
// anything else against the column range.
func normalizePerm(perm []int, n int) ([]int, error) {
	if perm == nil {
		perm = make([]int, n)
		for i := range perm {
			perm[i] = i
		}

		return perm, nil
	}
	if err := ordering.ValidatePermutation(perm, n); err != nil {
		return nil, ErrBadOrdering
	}

	return perm, nil
}
