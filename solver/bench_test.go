package solver_test

import (
	"testing"

	"github.com/katalvlaran/lsqgraph/fgraph"
	"github.com/katalvlaran/lsqgraph/ordering"
	"github.com/katalvlaran/lsqgraph/solver"
)

// benchChainGraph builds a 1-D pose chain of n scalar variables: one prior
// on the first pose plus n−1 between-factors, the classic SLAM-style band
// structure that fill-reducing orderings are made for.
func benchChainGraph(b *testing.B, n int) *fgraph.Graph {
	b.Helper()
	g := fgraph.NewGraph()

	prior, err := fgraph.NewFactor([]float64{-1},
		fgraph.Block{Key: "x0000", J: [][]float64{{1}}})
	if err != nil {
		b.Fatalf("prior factor: %v", err)
	}
	if err = g.AddFactor(prior); err != nil {
		b.Fatalf("add prior: %v", err)
	}

	for i := 1; i < n; i++ {
		between, err := fgraph.NewFactor([]float64{-1},
			fgraph.Block{Key: benchKey(i - 1), J: [][]float64{{-1}}},
			fgraph.Block{Key: benchKey(i), J: [][]float64{{1}}})
		if err != nil {
			b.Fatalf("between factor %d: %v", i, err)
		}
		if err = g.AddFactor(between); err != nil {
			b.Fatalf("add between %d: %v", i, err)
		}
	}

	return g
}

// benchKey formats a fixed-width key so sorted key order matches chain order.
func benchKey(i int) fgraph.Key {
	const digits = "0123456789"
	buf := []byte{'x', '0', '0', '0', '0'}
	for p := 4; p >= 1 && i > 0; p-- {
		buf[p] = digits[i%10]
		i /= 10
	}

	return fgraph.Key(buf)
}

// benchmarkSolve runs the full pipeline on an n-variable chain with the
// given method and a fresh per-iteration ordering.
func benchmarkSolve(b *testing.B, n int, m solver.Method) {
	g := benchChainGraph(b, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := solver.Solve(g, nil, solver.WithMethod(m)); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

// BenchmarkSolve_QRChain50 benchmarks the QR path on a 50-variable chain.
func BenchmarkSolve_QRChain50(b *testing.B) {
	benchmarkSolve(b, 50, solver.MethodQR)
}

// BenchmarkSolve_QRChain200 benchmarks the QR path on a 200-variable chain.
func BenchmarkSolve_QRChain200(b *testing.B) {
	benchmarkSolve(b, 200, solver.MethodQR)
}

// BenchmarkSolve_CholeskyChain50 benchmarks the normal-equations path on a
// 50-variable chain.
func BenchmarkSolve_CholeskyChain50(b *testing.B) {
	benchmarkSolve(b, 50, solver.MethodCholesky)
}

// BenchmarkSolve_CholeskyChain200 benchmarks the normal-equations path on a
// 200-variable chain.
func BenchmarkSolve_CholeskyChain200(b *testing.B) {
	benchmarkSolve(b, 200, solver.MethodCholesky)
}

// BenchmarkSolve_CachedOrdering benchmarks repeated solves that reuse one
// cached COLAMD ordering, the optimizer-iteration pattern.
func BenchmarkSolve_CachedOrdering(b *testing.B) {
	g := benchChainGraph(b, 200)
	cache := ordering.NewCache()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := solver.Solve(g, cache); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}
