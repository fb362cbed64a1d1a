// Package sparse: triplet and compressed-matrix types.
package sparse

import "sort"

// Entry is one (row, col, value) triplet of a sparse matrix under assembly.
//
// Entries are ephemeral: they exist only between factor flattening and
// compression. Several entries may address the same (Row, Col) position;
// compression sums them.
type Entry struct {
	Row int
	Col int
	Val float64
}

// Matrix is an immutable sparse matrix in compressed column (CSC) storage.
//
// For each column j, the row indices rowInd[colPtr[j]:colPtr[j+1]] are
// strictly increasing and val holds the matching values. A Matrix built by
// BuildAugmented has shape rows × cols with the final column holding the
// right-hand side b; plain matrices built internally (e.g. Gram) have no
// augmented column.
type Matrix struct {
	rows, cols int
	colPtr     []int // len cols+1; colPtr[cols] == len(rowInd)
	rowInd     []int
	val        []float64
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns (including the augmented column, if any).
func (m *Matrix) Cols() int { return m.cols }

// NNZ returns the number of stored entries.
func (m *Matrix) NNZ() int { return len(m.rowInd) }

// At returns the value at (i, j), or zero when the position is structurally
// empty. Returns ErrIndexOutOfRange for indices outside the matrix bounds.
func (m *Matrix) At(i, j int) (float64, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, ErrIndexOutOfRange
	}
	lo, hi := m.colPtr[j], m.colPtr[j+1]
	// binary search within the column's sorted row indices
	pos := sort.SearchInts(m.rowInd[lo:hi], i) + lo
	if pos < hi && m.rowInd[pos] == i {
		return m.val[pos], nil
	}

	return 0, nil
}

// Col returns the stored row indices and values of column j as read-only
// views into the matrix. Returns ErrIndexOutOfRange when j is out of bounds.
func (m *Matrix) Col(j int) ([]int, []float64, error) {
	if j < 0 || j >= m.cols {
		return nil, nil, ErrIndexOutOfRange
	}
	lo, hi := m.colPtr[j], m.colPtr[j+1]

	return m.rowInd[lo:hi], m.val[lo:hi], nil
}

// DenseCol materializes column j as a dense vector of length Rows().
// Returns ErrIndexOutOfRange when j is out of bounds.
func (m *Matrix) DenseCol(j int) ([]float64, error) {
	if j < 0 || j >= m.cols {
		return nil, ErrIndexOutOfRange
	}
	out := make([]float64, m.rows)
	for p := m.colPtr[j]; p < m.colPtr[j+1]; p++ {
		out[m.rowInd[p]] = m.val[p]
	}

	return out, nil
}
