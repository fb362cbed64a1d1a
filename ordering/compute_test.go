package ordering_test

import (
	"sort"
	"testing"

	"github.com/katalvlaran/lsqgraph/ordering"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allStrategies enumerates the closed strategy set once for table tests.
var allStrategies = []ordering.Strategy{
	ordering.Natural,
	ordering.AMD,
	ordering.COLAMD,
	ordering.NestedDissection,
}

// chainPattern builds the column adjacency of a path graph 0-1-2-...-(n-1).
func chainPattern(n int) [][]int {
	adj := make([][]int, n)
	for v := 0; v < n; v++ {
		if v > 0 {
			adj[v] = append(adj[v], v-1)
		}
		if v < n-1 {
			adj[v] = append(adj[v], v+1)
		}
	}

	return adj
}

// TestParseStrategy_Recognized verifies round-tripping of every selector.
func TestParseStrategy_Recognized(t *testing.T) {
	for _, st := range allStrategies {
		parsed, err := ordering.ParseStrategy(st.String())
		require.NoError(t, err, "selector %q must parse", st)
		assert.Equal(t, st, parsed)
	}
}

// TestParseStrategy_Unknown verifies the explicit boundary error: an
// unrecognized selector must fail, never silently fall through.
func TestParseStrategy_Unknown(t *testing.T) {
	for _, bad := range []string{"", "METIS", "colamd", "RANDOM"} {
		_, err := ordering.ParseStrategy(bad)
		assert.ErrorIs(t, err, ordering.ErrUnknownStrategy, "selector %q", bad)
	}
}

// TestCompute_NaturalIsIdentity verifies the Natural strategy.
func TestCompute_NaturalIsIdentity(t *testing.T) {
	perm, err := ordering.Compute(ordering.Natural, chainPattern(5))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, perm)
}

// TestCompute_AllStrategiesPermute verifies every strategy returns a valid
// permutation of the full column range.
func TestCompute_AllStrategiesPermute(t *testing.T) {
	adj := chainPattern(12)
	for _, st := range allStrategies {
		perm, err := ordering.Compute(st, adj)
		require.NoError(t, err, "strategy %v", st)
		require.Len(t, perm, 12, "strategy %v", st)

		sorted := append([]int(nil), perm...)
		sort.Ints(sorted)
		for i, v := range sorted {
			assert.Equal(t, i, v, "strategy %v must yield a bijection", st)
		}
	}
}

// TestCompute_Deterministic verifies same pattern ⇒ same permutation.
func TestCompute_Deterministic(t *testing.T) {
	adj := chainPattern(16)
	for _, st := range allStrategies {
		first, err := ordering.Compute(st, adj)
		require.NoError(t, err)
		second, err := ordering.Compute(st, adj)
		require.NoError(t, err)
		assert.Equal(t, first, second, "strategy %v must be deterministic", st)
	}
}

// TestCompute_AMD_ChainEliminatesEndpointsFirst checks a known property of
// minimum degree on a path: degree-1 endpoints go before interior vertices.
func TestCompute_AMD_ChainEliminatesEndpointsFirst(t *testing.T) {
	perm, err := ordering.Compute(ordering.AMD, chainPattern(6))
	require.NoError(t, err)
	assert.Equal(t, 0, perm[0], "lowest-indexed degree-1 endpoint must be eliminated first")
}

// TestCompute_UnknownStrategy verifies closed-set dispatch.
func TestCompute_UnknownStrategy(t *testing.T) {
	_, err := ordering.Compute(ordering.Strategy(42), chainPattern(3))
	assert.ErrorIs(t, err, ordering.ErrUnknownStrategy)
}

// TestCompute_BadPattern verifies pattern validation.
func TestCompute_BadPattern(t *testing.T) {
	_, err := ordering.Compute(ordering.AMD, [][]int{{1}, {0, 7}})
	assert.ErrorIs(t, err, ordering.ErrBadPattern)
}

// TestCompute_EmptyPattern verifies the degenerate zero-column case.
func TestCompute_EmptyPattern(t *testing.T) {
	for _, st := range allStrategies {
		perm, err := ordering.Compute(st, nil)
		require.NoError(t, err, "strategy %v", st)
		assert.Empty(t, perm)
	}
}

// TestCompute_NestedDissection_Disconnected verifies component handling.
func TestCompute_NestedDissection_Disconnected(t *testing.T) {
	// two disjoint chains of length 10 → 20 columns total
	adj := make([][]int, 20)
	for v := 0; v < 10; v++ {
		if v > 0 {
			adj[v] = append(adj[v], v-1)
			adj[v+10] = append(adj[v+10], v+9)
		}
		if v < 9 {
			adj[v] = append(adj[v], v+1)
			adj[v+10] = append(adj[v+10], v+11)
		}
	}

	perm, err := ordering.Compute(ordering.NestedDissection, adj)
	require.NoError(t, err)
	require.Len(t, perm, 20)

	sorted := append([]int(nil), perm...)
	sort.Ints(sorted)
	for i, v := range sorted {
		require.Equal(t, i, v)
	}
}

// TestValidatePermutation covers accept and reject cases.
func TestValidatePermutation(t *testing.T) {
	assert.NoError(t, ordering.ValidatePermutation([]int{2, 0, 1}, 3))
	assert.ErrorIs(t, ordering.ValidatePermutation([]int{0, 0, 1}, 3), ordering.ErrBadPermutation)
	assert.ErrorIs(t, ordering.ValidatePermutation([]int{0, 1}, 3), ordering.ErrBadPermutation)
	assert.ErrorIs(t, ordering.ValidatePermutation([]int{0, 1, 3}, 3), ordering.ErrBadPermutation)
}
