package ordering

import "sort"

// ndBaseSize is the subgraph size below which nested dissection stops
// recursing and hands the remainder to exact minimum degree.
const ndBaseSize = 8

// nestedDissection orders a pattern by recursive graph bisection: find a
// small vertex separator via a breadth-first level structure, order the two
// halves recursively, and eliminate the separator last. Keeping separators
// late confines their fill to the trailing rows and columns of the factor,
// which is the whole point of the strategy.
//
// Deterministic: component discovery, root selection and level splits all
// walk vertices in ascending index order.
func nestedDissection(adj [][]int) []int {
	n := len(adj)
	order := make([]int, 0, n)

	var recurse func(nodes []int)
	recurse = func(nodes []int) {
		if len(nodes) == 0 {
			return
		}
		sub, back := inducedSubgraph(adj, nodes)
		if len(nodes) <= ndBaseSize {
			for _, k := range minimumDegree(sub) {
				order = append(order, back[k])
			}

			return
		}

		comps := connectedComponents(sub)
		if len(comps) > 1 {
			for _, comp := range comps {
				mapped := make([]int, len(comp))
				for i, k := range comp {
					mapped[i] = back[k]
				}
				recurse(mapped)
			}

			return
		}

		levels := levelStructure(sub, pseudoPeripheral(sub))
		left, right, sep := splitByLevels(levels, len(sub))

		mapBack := func(idx []int) []int {
			out := make([]int, len(idx))
			for i, k := range idx {
				out[i] = back[k]
			}

			return out
		}
		recurse(mapBack(left))
		recurse(mapBack(right))
		order = append(order, mapBack(sep)...) // separator eliminated last
	}

	all := make([]int, n)
	for i := range all {
		all[i] = i
	}
	recurse(all)

	return order
}

// inducedSubgraph restricts adj to nodes, relabeling them 0..len(nodes)-1.
// back maps local indices to the original ones.
func inducedSubgraph(adj [][]int, nodes []int) (sub [][]int, back []int) {
	local := make(map[int]int, len(nodes))
	back = make([]int, len(nodes))
	for i, v := range nodes {
		local[v] = i
		back[i] = v
	}
	sub = make([][]int, len(nodes))
	for i, v := range nodes {
		for _, u := range adj[v] {
			if lu, ok := local[u]; ok {
				sub[i] = append(sub[i], lu)
			}
		}
		sort.Ints(sub[i])
	}

	return sub, back
}

// connectedComponents returns the components of adj, each sorted ascending,
// discovered in ascending root order.
func connectedComponents(adj [][]int) [][]int {
	n := len(adj)
	visited := make([]bool, n)
	var comps [][]int
	for root := 0; root < n; root++ {
		if visited[root] {
			continue
		}
		comp := []int{root}
		visited[root] = true
		for at := 0; at < len(comp); at++ {
			for _, u := range adj[comp[at]] {
				if !visited[u] {
					visited[u] = true
					comp = append(comp, u)
				}
			}
		}
		sort.Ints(comp)
		comps = append(comps, comp)
	}

	return comps
}

// levelStructure runs BFS from root and returns each vertex's level.
// Assumes a connected graph.
func levelStructure(adj [][]int, root int) []int {
	level := make([]int, len(adj))
	for i := range level {
		level[i] = -1
	}
	level[root] = 0
	queue := []int{root}
	for at := 0; at < len(queue); at++ {
		v := queue[at]
		for _, u := range adj[v] {
			if level[u] < 0 {
				level[u] = level[v] + 1
				queue = append(queue, u)
			}
		}
	}

	return level
}

// pseudoPeripheral picks a BFS root far from the graph's center: start at
// vertex 0, walk to the lowest-indexed vertex of the deepest level, repeat
// once. Two sweeps capture most of the eccentricity gain.
func pseudoPeripheral(adj [][]int) int {
	root := 0
	for sweep := 0; sweep < 2; sweep++ {
		level := levelStructure(adj, root)
		deepest, at := -1, root
		for v := len(level) - 1; v >= 0; v-- {
			if level[v] >= deepest {
				deepest, at = level[v], v
			}
		}
		if at == root {
			break
		}
		root = at
	}

	return root
}

// splitByLevels cuts a level structure at the median level: vertices below
// go left, above go right, the cut level itself is the separator. Each part
// comes back sorted ascending.
func splitByLevels(level []int, n int) (left, right, sep []int) {
	maxLevel := 0
	for _, l := range level {
		if l > maxLevel {
			maxLevel = l
		}
	}
	// choose the cut level so the halves stay balanced
	counts := make([]int, maxLevel+1)
	for _, l := range level {
		counts[l]++
	}
	cut, below := 0, 0
	for l := 0; l <= maxLevel; l++ {
		if below+counts[l] >= n/2 {
			cut = l

			break
		}
		below += counts[l]
	}

	for v := 0; v < n; v++ {
		switch {
		case level[v] < cut:
			left = append(left, v)
		case level[v] > cut:
			right = append(right, v)
		default:
			sep = append(sep, v)
		}
	}

	return left, right, sep
}
