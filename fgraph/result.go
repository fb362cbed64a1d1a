package fgraph

import (
	"fmt"
	"sort"
)

// MapSolution splits a flat solution vector into per-key update vectors.
//
// Keys are walked in sorted order — the same deterministic layout
// SparseEntries uses to assign column spans — and each key takes its next
// dims[key] components. The accumulated dimensions must consume the vector
// exactly; anything over or under is ErrDimensionMismatch, surfaced rather
// than padded or truncated.
//
// A zero-factor system maps the empty vector to the empty map without
// error.
func MapSolution(x []float64, dims map[Key]int) (map[Key][]float64, error) {
	keys := make([]Key, 0, len(dims))
	total := 0
	for k, d := range dims {
		keys = append(keys, k)
		total += d
	}
	if total != len(x) {
		return nil, fmt.Errorf("%w: key dims sum to %d, solution has length %d",
			ErrDimensionMismatch, total, len(x))
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	out := make(map[Key][]float64, len(keys))
	at := 0
	for _, k := range keys {
		d := dims[k]
		out[k] = append([]float64(nil), x[at:at+d]...)
		at += d
	}

	return out, nil
}
