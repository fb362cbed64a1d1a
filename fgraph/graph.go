package fgraph

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lsqgraph/sparse"
)

// Graph collects the factors of one estimation problem and flattens them
// into the triplet stream the sparse builder consumes.
//
// Column layout is deterministic: keys own contiguous column spans in
// sorted key order, so the same factor set always produces the same
// Jacobian structure. Rows follow factor insertion order.
type Graph struct {
	factors []*Factor
	dims    map[Key]int
}

// NewGraph returns an empty factor graph.
func NewGraph() *Graph {
	return &Graph{dims: make(map[Key]int)}
}

// AddFactor appends a factor, recording the dimension of every key it
// touches. A factor whose block width disagrees with a key's previously
// recorded dimension is rejected with ErrDimensionMismatch.
func (g *Graph) AddFactor(f *Factor) error {
	if f == nil {
		return ErrNilFactor
	}
	for _, b := range f.blocks {
		width := len(b.J[0])
		if prev, ok := g.dims[b.Key]; ok && prev != width {
			return fmt.Errorf("%w: key %q has dim %d, factor block has %d",
				ErrDimensionMismatch, b.Key, prev, width)
		}
	}
	for _, b := range f.blocks {
		g.dims[b.Key] = len(b.J[0])
	}
	g.factors = append(g.factors, f)

	return nil
}

// Len returns the number of factors.
func (g *Graph) Len() int { return len(g.factors) }

// Keys returns every variable key in sorted order.
func (g *Graph) Keys() []Key {
	keys := make([]Key, 0, len(g.dims))
	for k := range g.dims {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	return keys
}

// KeyDims returns a snapshot of the key → dimension map. The snapshot taken
// at build time is what splits the solution vector later; mutating the
// graph afterwards does not retroactively change an earlier snapshot.
func (g *Graph) KeyDims() map[Key]int {
	out := make(map[Key]int, len(g.dims))
	for k, d := range g.dims {
		out[k] = d
	}

	return out
}

// colOffsets assigns each key the start of its contiguous column span and
// returns the total Jacobian column count.
func (g *Graph) colOffsets() (map[Key]int, int) {
	offsets := make(map[Key]int, len(g.dims))
	total := 0
	for _, k := range g.Keys() {
		offsets[k] = total
		total += g.dims[k]
	}

	return offsets, total
}

// SparseEntries flattens the graph into (row, col, value) triplets of the
// augmented system [A | b] with b = −residual stacked in the extra column
// at index equal to the total Jacobian width.
//
// Only nonzero values are emitted — dimensions downstream are derived from
// the maximum emitted index, so a variable or row whose every contribution
// is zero simply never appears in the stream.
//
// Pure read: no graph state changes; safe to call concurrently with other
// reads.
func (g *Graph) SparseEntries() []sparse.Entry {
	offsets, total := g.colOffsets()

	var entries []sparse.Entry
	rowBase := 0
	for _, f := range g.factors {
		for _, b := range f.blocks {
			colBase := offsets[b.Key]
			for r, row := range b.J {
				for c, v := range row {
					if v != 0 {
						entries = append(entries, sparse.Entry{Row: rowBase + r, Col: colBase + c, Val: v})
					}
				}
			}
		}
		for r, v := range f.resid {
			if v != 0 {
				entries = append(entries, sparse.Entry{Row: rowBase + r, Col: total, Val: -v})
			}
		}
		rowBase += f.Dim()
	}

	return entries
}
