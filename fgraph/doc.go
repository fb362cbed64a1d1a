// Package fgraph holds the factor-graph surface of the linear core:
// variable keys, linearized Jacobian factors, the graph container that
// flattens them into sparse triplets, and the mapping of a flat solution
// vector back onto per-variable update vectors.
//
// The fgraph package provides:
//
//   - Key, an opaque variable identifier with a fixed per-graph dimension.
//   - Factor, an immutable bundle of (key, local Jacobian block) pairs plus
//     a residual — one measurement's linearization.
//   - Graph, which assigns each key a contiguous column span (sorted key
//     order, deterministic) and streams the factors out as (row, col,
//     value) triplets with the negated residual in the augmented column.
//   - MapSolution, which slices a solved vector back per key and fails with
//     ErrDimensionMismatch when the key dimensions do not exactly consume it.
//
// Graph is a plain container: flattening is a pure read and safe to run
// concurrently with other reads.
package fgraph
