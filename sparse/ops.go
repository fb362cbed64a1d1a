package sparse

import "sort"

// SplitAugmented splits an augmented matrix [A|b] into the Jacobian A
// (every column but the last) and the dense right-hand side b (the last
// column). The returned A shares storage with the receiver; neither may be
// mutated. A 0×0 receiver splits into a 0×0 A and a nil b.
func (m *Matrix) SplitAugmented() (*Matrix, []float64) {
	if m.cols == 0 {
		return &Matrix{colPtr: make([]int, 1)}, nil
	}
	n := m.cols - 1
	a := &Matrix{
		rows:   m.rows,
		cols:   n,
		colPtr: m.colPtr[:n+1],
		rowInd: m.rowInd[:m.colPtr[n]],
		val:    m.val[:m.colPtr[n]],
	}
	b := make([]float64, m.rows)
	for p := m.colPtr[n]; p < m.colPtr[n+1]; p++ {
		b[m.rowInd[p]] = m.val[p]
	}

	return a, b
}

// MulVec computes y = A·x. Returns ErrDimensionMismatch when len(x) != Cols().
func (m *Matrix) MulVec(x []float64) ([]float64, error) {
	if len(x) != m.cols {
		return nil, ErrDimensionMismatch
	}
	y := make([]float64, m.rows)
	for j := 0; j < m.cols; j++ {
		xj := x[j]
		if xj == 0 {
			continue
		}
		for p := m.colPtr[j]; p < m.colPtr[j+1]; p++ {
			y[m.rowInd[p]] += m.val[p] * xj
		}
	}

	return y, nil
}

// MulTransVec computes y = Aᵗ·x. Returns ErrDimensionMismatch when
// len(x) != Rows(). For an augmented system this is how Aᵗb is formed.
func (m *Matrix) MulTransVec(x []float64) ([]float64, error) {
	if len(x) != m.rows {
		return nil, ErrDimensionMismatch
	}
	y := make([]float64, m.cols)
	for j := 0; j < m.cols; j++ {
		var acc float64
		for p := m.colPtr[j]; p < m.colPtr[j+1]; p++ {
			acc += m.val[p] * x[m.rowInd[p]]
		}
		y[j] = acc
	}

	return y, nil
}

// Gram forms the normal-equations matrix AᵗA as a fresh n×n sparse matrix,
// n = Cols(). Both triangles are stored explicitly.
//
// The computation walks rows rather than columns: each row r with pattern
// {j₁..jₖ} contributes the outer product of its values, so the cost is
// O(Σ nnz(row)²), which stays small for the short rows typical of factor
// Jacobians.
func (m *Matrix) Gram() *Matrix {
	type rowEntry struct {
		col int
		val float64
	}
	byRow := make([][]rowEntry, m.rows)
	for j := 0; j < m.cols; j++ {
		for p := m.colPtr[j]; p < m.colPtr[j+1]; p++ {
			i := m.rowInd[p]
			byRow[i] = append(byRow[i], rowEntry{col: j, val: m.val[p]})
		}
	}

	var tris []Entry
	for _, row := range byRow {
		for a := 0; a < len(row); a++ {
			for b := 0; b < len(row); b++ {
				tris = append(tris, Entry{Row: row[a].col, Col: row[b].col, Val: row[a].val * row[b].val})
			}
		}
	}

	return compress(m.cols, m.cols, tris)
}

// ColAdjacency returns, per column, the sorted list of other columns that
// share at least one row with it. This is the structural pattern of AᵗA and
// the input every fill-reducing ordering consumes.
//
// Deterministic: neighbor lists are sorted ascending; the same matrix always
// yields the same adjacency.
func (m *Matrix) ColAdjacency() [][]int {
	byRow := make([][]int, m.rows)
	for j := 0; j < m.cols; j++ {
		for p := m.colPtr[j]; p < m.colPtr[j+1]; p++ {
			byRow[m.rowInd[p]] = append(byRow[m.rowInd[p]], j)
		}
	}

	seen := make([]map[int]struct{}, m.cols)
	for j := range seen {
		seen[j] = make(map[int]struct{})
	}
	for _, cols := range byRow {
		for a := 0; a < len(cols); a++ {
			for b := 0; b < len(cols); b++ {
				if cols[a] != cols[b] {
					seen[cols[a]][cols[b]] = struct{}{}
				}
			}
		}
	}

	adj := make([][]int, m.cols)
	for j := range seen {
		adj[j] = make([]int, 0, len(seen[j]))
		for k := range seen[j] {
			adj[j] = append(adj[j], k)
		}
		sort.Ints(adj[j])
	}

	return adj
}
