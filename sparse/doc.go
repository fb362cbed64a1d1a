// Package sparse provides triplet (coordinate) assembly and a compressed
// column-major sparse matrix, sized for one linearization step of a
// least-squares factor graph.
//
// The sparse package provides:
//
//   - Entry, the ephemeral (row, col, value) triplet produced by flattening
//     factors; duplicate positions accumulate by summation.
//   - BuildAugmented, which turns a triplet stream into the compressed
//     augmented matrix [A|b] in a single pass, deriving dimensions from the
//     maximum observed index.
//   - Column views, A·x and Aᵗ·x products, the Gram matrix AᵗA, and the
//     column-adjacency pattern consumed by the ordering package.
//
// Matrices are immutable once built; every operation here is a pure
// function of its inputs and safe to call concurrently.
package sparse
