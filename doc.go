// Package lsqgraph is the sparse linear core of a nonlinear least-squares
// factor-graph optimizer: it assembles the augmented system [A|b] produced
// at each linearization step, orders its columns to limit factorization
// fill-in, solves it, and maps the solution back onto the variables.
//
// 🚀 What is lsqgraph?
//
//	A small, deterministic library that brings together:
//		• fgraph/   — variable keys, Jacobian factors and the factor-graph
//		  container; flattening into sparse triplets; per-key result mapping
//		• sparse/   — triplet (COO) accumulation and the compressed
//		  column-major matrix, with the products the solvers need
//		• ordering/ — fill-reducing column orderings (Natural, AMD, COLAMD,
//		  NestedDissection) and the optimizer-owned ordering cache
//		• solver/   — sparse least squares via Householder QR, and the
//		  cheaper normal-equations path via lower Cholesky
//
// ✨ Why choose lsqgraph?
//
//   - Deterministic – same input, same ordering, same bits; no randomness
//   - Explicit errors – sentinel errors matched via errors.Is, never panics
//     on user-triggered conditions
//   - Concurrency-clear – builders and solvers are stateless and safe to
//     run in parallel on independent inputs; only the ordering cache is
//     single-owner mutable state
//   - Pure Go – no cgo; the only runtime dependency is gonum
//
// The enclosing optimizer loop (step acceptance, damping, relinearization)
// lives outside this module: lsqgraph owns exactly one linearization step,
// from factors to a per-key update map.
//
//	go get github.com/katalvlaran/lsqgraph
package lsqgraph
