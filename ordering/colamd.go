package ordering

// approxColumnMinDegree runs the COLAMD strategy: minimum-degree elimination
// with approximate degree updates.
//
// Where exact minimum degree (see minimumDegree) forms the fill clique and
// recounts true degrees after every pivot, this variant keeps only an upper
// bound: eliminating pivot p merges p's clique into each surviving neighbor
// u, so u's degree is bounded by deg(u) - 1 + deg(p) - 1, capped at the
// number of other alive vertices. No fill structure is materialized, which
// keeps every pivot update O(deg) — the approximate-degree trade the
// column variant is known for.
//
// Deterministic: ties break toward the lowest column index.
func approxColumnMinDegree(adj [][]int) []int {
	n := len(adj)
	deg := make([]int, n)
	for v := range adj {
		deg[v] = len(adj[v])
	}

	perm := make([]int, 0, n)
	eliminated := make([]bool, n)
	alive := n
	for alive > 0 {
		best, bestDeg := -1, n+1
		for v := 0; v < n; v++ {
			if !eliminated[v] && deg[v] < bestDeg {
				best, bestDeg = v, deg[v]
			}
		}
		perm = append(perm, best)
		eliminated[best] = true
		alive--

		for _, u := range adj[best] {
			if eliminated[u] {
				continue
			}
			// clique upper bound on u's post-elimination degree
			bound := deg[u] - 1 + deg[best] - 1
			if bound > alive-1 {
				bound = alive - 1
			}
			if bound < 0 {
				bound = 0
			}
			deg[u] = bound
		}
	}

	return perm
}
