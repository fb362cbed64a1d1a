package solver

import (
	"github.com/katalvlaran/lsqgraph/fgraph"
	"github.com/katalvlaran/lsqgraph/ordering"
	"github.com/katalvlaran/lsqgraph/sparse"
)

// Solve runs one full linearization step: flatten the factor graph into
// triplets, build the augmented system [A|b], obtain a column ordering,
// factor and solve, and map the flat solution back onto per-key update
// vectors.
//
// The ordering comes from cache when one is supplied — computed lazily on
// the first call and reused verbatim afterwards, exactly the sharing an
// optimizer wants across iterations of the same structure. With a nil
// cache a fresh ordering is computed from Options.Strategy on every call.
//
// A graph with zero factors returns the empty map without error.
//
// Errors:
//   - ErrNilGraph                    — g is nil.
//   - ErrUnknownMethod               — Options.Method outside the closed set.
//   - ErrNotPositiveDefinite         — Cholesky path on a singular system.
//   - ordering.ErrUnknownStrategy    — strategy outside the closed set.
//   - fgraph.ErrDimensionMismatch    — the solved vector does not match the
//     key-dimension snapshot (the inferred-dimension hazard: a variable
//     whose every Jacobian entry is zero vanishes from the built matrix).
func Solve(g *fgraph.Graph, cache *ordering.Cache, opts ...Option) (map[fgraph.Key][]float64, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrNilGraph
	}

	ab, err := sparse.BuildAugmented(g.SparseEntries())
	if err != nil {
		return nil, err
	}
	if ab.Cols() == 0 {
		return map[fgraph.Key][]float64{}, nil
	}

	a, _ := ab.SplitAugmented()
	adj := a.ColAdjacency()
	var perm []int
	if cache != nil {
		perm, err = cache.Ordering(adj)
	} else {
		perm, err = ordering.Compute(o.Strategy, adj)
	}
	if err != nil {
		return nil, err
	}

	var x []float64
	switch o.Method {
	case MethodQR:
		x, err = SolveQR(ab, perm, opts...)
	case MethodCholesky:
		x, err = SolveCholesky(ab, perm, opts...)
	default:
		return nil, ErrUnknownMethod
	}
	if err != nil {
		return nil, err
	}

	return fgraph.MapSolution(x, g.KeyDims())
}
