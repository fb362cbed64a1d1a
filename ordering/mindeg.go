package ordering

import "sort"

// minimumDegree runs exact minimum-degree elimination over a symmetric
// pattern (the AMD strategy).
//
// Algorithm outline:
//  1. Mirror the pattern into per-vertex neighbor sets.
//  2. Repeatedly eliminate the alive vertex of smallest current degree,
//     breaking ties toward the lowest index for determinism.
//  3. On elimination, connect the surviving neighbors into a clique — the
//     structural fill that factorizing this pivot would create — and let
//     the updated degrees steer subsequent picks.
//
// Complexity: O(n² + fill) with the linear min-scan; pattern sizes here are
// column counts of one linearization step, so the simple scan wins over a
// degree-bucket structure in practice.
func minimumDegree(adj [][]int) []int {
	n := len(adj)
	nb := make([]map[int]struct{}, n)
	for v := range adj {
		nb[v] = make(map[int]struct{}, len(adj[v]))
		for _, u := range adj[v] {
			if u != v {
				nb[v][u] = struct{}{}
				// mirror lazily below once all sets exist
			}
		}
	}
	for v := range adj {
		for u := range nb[v] {
			nb[u][v] = struct{}{}
		}
	}

	perm := make([]int, 0, n)
	eliminated := make([]bool, n)
	for len(perm) < n {
		best, bestDeg := -1, n+1
		for v := 0; v < n; v++ {
			if !eliminated[v] && len(nb[v]) < bestDeg {
				best, bestDeg = v, len(nb[v])
			}
		}
		perm = append(perm, best)
		eliminated[best] = true

		neigh := make([]int, 0, len(nb[best]))
		for u := range nb[best] {
			neigh = append(neigh, u)
		}
		sort.Ints(neigh)
		for _, u := range neigh {
			delete(nb[u], best)
		}
		// clique fill among the pivot's surviving neighbors
		for i, u := range neigh {
			for _, w := range neigh[i+1:] {
				nb[u][w] = struct{}{}
				nb[w][u] = struct{}{}
			}
		}
	}

	return perm
}
