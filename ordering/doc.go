// Package ordering provides fill-reducing column orderings for sparse
// factorization, and the optimizer-owned cache that shares one ordering
// across repeated linearizations.
//
// The ordering package provides:
//
//   - Strategy, a closed set of permutation algorithms: Natural (identity),
//     AMD (minimum degree over the symmetric AᵗA pattern, the Cholesky
//     companion), COLAMD (approximate column minimum degree, the QR
//     companion) and NestedDissection (partition-based, heavier setup,
//     lower fill on large structured systems).
//   - Compute, which turns a column-adjacency pattern into a deterministic
//     permutation. Same pattern, same permutation — orderings affect only
//     factorization cost, never the mathematical solution.
//   - Cache, a two-state (uncomputed / cached) memo owned by the optimizer
//     instance. It computes lazily on first request, adopts explicit
//     orderings verbatim, and holds its value until an explicit Reset.
//
// Every Compute variant is a pure function and safe to run concurrently;
// Cache is single-owner mutable state and needs external synchronization
// if shared.
package ordering
