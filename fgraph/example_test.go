package fgraph_test

import (
	"fmt"

	"github.com/katalvlaran/lsqgraph/fgraph"
)

// ExampleGraph_SparseEntries flattens a two-factor graph into the triplet
// stream of the augmented system [A|b]. Keys own contiguous column spans in
// sorted key order; the right-hand side lands in the extra final column with
// b = −residual.
func ExampleGraph_SparseEntries() {
	g := fgraph.NewGraph()

	prior, _ := fgraph.NewFactor([]float64{-1},
		fgraph.Block{Key: "pose", J: [][]float64{{2}}})
	_ = g.AddFactor(prior)

	for _, e := range g.SparseEntries() {
		fmt.Printf("(%d,%d) = %g\n", e.Row, e.Col, e.Val)
	}
	// Output:
	// (0,0) = 2
	// (0,1) = 1
}

// ExampleMapSolution splits a flat solution vector back into per-key update
// vectors, walking keys in sorted order.
func ExampleMapSolution() {
	sol, err := fgraph.MapSolution(
		[]float64{0.5, 1.5, 2.5},
		map[fgraph.Key]int{"pose": 2, "velocity": 1},
	)
	if err != nil {
		fmt.Println("map failed:", err)

		return
	}

	fmt.Println("pose:", sol["pose"])
	fmt.Println("velocity:", sol["velocity"])
	// Output:
	// pose: [0.5 1.5]
	// velocity: [2.5]
}
