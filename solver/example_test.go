package solver_test

import (
	"fmt"

	"github.com/katalvlaran/lsqgraph/fgraph"
	"github.com/katalvlaran/lsqgraph/ordering"
	"github.com/katalvlaran/lsqgraph/solver"
)

// ExampleSolve linearizes three scalar measurements — x≈1, y≈2 and x+y≈3 —
// and solves the resulting least-squares system in one call.
func ExampleSolve() {
	g := fgraph.NewGraph()

	px, _ := fgraph.NewFactor([]float64{-1},
		fgraph.Block{Key: "x", J: [][]float64{{1}}})
	py, _ := fgraph.NewFactor([]float64{-2},
		fgraph.Block{Key: "y", J: [][]float64{{1}}})
	pxy, _ := fgraph.NewFactor([]float64{-3},
		fgraph.Block{Key: "x", J: [][]float64{{1}}},
		fgraph.Block{Key: "y", J: [][]float64{{1}}})
	_ = g.AddFactor(px)
	_ = g.AddFactor(py)
	_ = g.AddFactor(pxy)

	cache := ordering.NewCache() // COLAMD by default, computed once
	sol, err := solver.Solve(g, cache)
	if err != nil {
		fmt.Println("solve failed:", err)

		return
	}

	fmt.Printf("x = %.2f\n", sol["x"][0])
	fmt.Printf("y = %.2f\n", sol["y"][0])
	// Output:
	// x = 1.00
	// y = 2.00
}

// ExampleSolveCholesky solves the same system through the normal equations.
func ExampleSolveCholesky() {
	g := fgraph.NewGraph()
	px, _ := fgraph.NewFactor([]float64{-1},
		fgraph.Block{Key: "x", J: [][]float64{{1}}})
	_ = g.AddFactor(px)

	sol, err := solver.Solve(g, nil, solver.WithMethod(solver.MethodCholesky))
	if err != nil {
		fmt.Println("solve failed:", err)

		return
	}

	fmt.Printf("x = %.2f\n", sol["x"][0])
	// Output:
	// x = 1.00
}
