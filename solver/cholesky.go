package solver

import (
	"math"

	"github.com/katalvlaran/lsqgraph/sparse"
	"gonum.org/v1/gonum/floats"
)

// SolveCholesky solves the normal equations AᵗA x = Aᵗb for the augmented
// system [A|b], factoring the Gram matrix into a lower triangle under the
// symmetric permutation perm (perm[k] = original column at elimination
// position k; nil means the natural order).
//
// Implementation:
//  1. Split [A|b]; form AᵗA sparsely (row-wise outer products) and Aᵗb.
//  2. Apply perm symmetrically while densifying the Gram matrix, then run
//     the standard lower-triangular factorization L·Lᵗ, pivot by pivot.
//  3. Forward-substitute L y = Pᵗ(Aᵗb), back-substitute Lᵗ x̂ = y, undo the
//     permutation.
//
// Numerical contract: requires AᵗA positive definite within the pivot
// tolerance; a pivot at or below PivotTol·maxDiag means a singular or
// underdetermined factor graph and fails with ErrNotPositiveDefinite.
// Squaring A squares its condition number — this path trades stability for
// speed against QR, which is why both exist.
//
// Deterministic, stateless, safe for concurrent use on independent inputs.
//
// Errors:
//   - ErrNotPositiveDefinite — AᵗA not positive definite within tolerance.
//   - ErrBadOrdering         — perm is not a permutation of A's columns.
//   - ErrOptionViolation     — invalid Option.
func SolveCholesky(ab *sparse.Matrix, perm []int, opts ...Option) ([]float64, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	if ab == nil || ab.Cols() == 0 {
		return []float64{}, nil
	}

	a, b := ab.SplitAugmented()
	n := a.Cols()
	if n == 0 {
		return []float64{}, nil
	}
	perm, err = normalizePerm(perm, n)
	if err != nil {
		return nil, err
	}

	gram := a.Gram()
	atb, err := a.MulTransVec(b)
	if err != nil {
		return nil, err
	}

	// densify the Gram matrix under the symmetric permutation
	g := make([][]float64, n)
	maxDiag := 0.0
	for i := range g {
		g[i] = make([]float64, n)
	}
	for j := 0; j < n; j++ {
		col, _ := gram.DenseCol(perm[j])
		for i := 0; i < n; i++ {
			g[i][j] = col[perm[i]]
		}
	}
	for i := 0; i < n; i++ {
		if g[i][i] > maxDiag {
			maxDiag = g[i][i]
		}
	}
	tol := o.PivotTol * maxDiag

	// in-place lower Cholesky over g (row i of L lives in g[i][:i+1])
	for j := 0; j < n; j++ {
		d := g[j][j] - floats.Dot(g[j][:j], g[j][:j])
		if d <= tol {
			return nil, ErrNotPositiveDefinite
		}
		g[j][j] = math.Sqrt(d)
		for i := j + 1; i < n; i++ {
			g[i][j] = (g[i][j] - floats.Dot(g[i][:j], g[j][:j])) / g[j][j]
		}
	}

	// forward substitution: L y = Pᵗ(Aᵗb)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		y[i] = (atb[perm[i]] - floats.Dot(g[i][:i], y[:i])) / g[i][i]
	}
	// back substitution: Lᵗ x̂ = y
	xp := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := y[i]
		for k := i + 1; k < n; k++ {
			sum -= g[k][i] * xp[k]
		}
		xp[i] = sum / g[i][i]
	}

	// undo the permutation
	x := make([]float64, n)
	for k, p := range perm {
		x[p] = xp[k]
	}

	return x, nil
}
