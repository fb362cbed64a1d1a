// Package solver factors and solves the augmented sparse system [A|b] of
// one linearization step, under a caller-supplied fill-reducing column
// ordering.
//
// Two algorithms coexist on purpose:
//
//   - SolveQR factors A directly via Householder QR and solves the
//     least-squares problem. Exact for full column rank; on rank-deficient
//     systems it returns a best-effort solution (dependent columns pinned
//     to zero) instead of failing.
//   - SolveCholesky forms the normal equations AᵗA x = Aᵗb and factors the
//     Gram matrix into a lower triangle. Roughly half the work of QR, but
//     squaring A squares its condition number — the classic speed-for-
//     stability trade, and the reason neither path subsumes the other.
//
// Both are stateless, deterministic and safe to run concurrently on
// independent inputs; the ordering permutes columns before factorization
// and is undone afterwards, so it can change cost but never the solution.
//
// Solve ties the whole core together: flatten the factor graph, build
// [A|b], fetch an ordering from the optimizer's cache, solve, and map the
// result back per variable key.
package solver
