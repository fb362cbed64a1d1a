package sparse

import "sort"

// BuildAugmented assembles the compressed augmented matrix [A|b] from a flat
// triplet stream in a single pass.
//
// Dimensions are derived from the data, not declared: rows is the maximum
// observed row index plus one and cols the maximum observed column index
// plus one, so the final column of a well-formed stream is the right-hand
// side b and columns 0..cols-2 hold the Jacobian A. A consequence worth
// knowing: trailing all-zero rows or columns are invisible to the triplet
// stream and are silently dropped from the shape.
//
// Duplicate (row, col) positions sum. Zero factor sets yield the 0×0 matrix
// without error. Negative indices return ErrNegativeIndex.
//
// Complexity: O(nnz log nnz) for the compression sort, O(nnz) otherwise.
func BuildAugmented(entries []Entry) (*Matrix, error) {
	maxRow, maxCol := -1, -1
	for _, e := range entries {
		if e.Row < 0 || e.Col < 0 {
			return nil, ErrNegativeIndex
		}
		if e.Row > maxRow {
			maxRow = e.Row
		}
		if e.Col > maxCol {
			maxCol = e.Col
		}
	}
	// Degenerate but legal: no factors, no system.
	if maxRow < 0 {
		return &Matrix{colPtr: make([]int, 1)}, nil
	}

	return compress(maxRow+1, maxCol+1, entries), nil
}

// NewFromEntries assembles a matrix of a declared shape from triplets,
// validating every index against it. Duplicate positions sum.
func NewFromEntries(rows, cols int, entries []Entry) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrIndexOutOfRange
	}
	for _, e := range entries {
		if e.Row < 0 || e.Row >= rows || e.Col < 0 || e.Col >= cols {
			return nil, ErrIndexOutOfRange
		}
	}

	return compress(rows, cols, entries), nil
}

// compress sorts triplets column-major, sums duplicates and packs the CSC
// arrays. Indices are assumed validated by the caller.
func compress(rows, cols int, entries []Entry) *Matrix {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(a, b int) bool {
		if sorted[a].Col != sorted[b].Col {
			return sorted[a].Col < sorted[b].Col
		}

		return sorted[a].Row < sorted[b].Row
	})

	m := &Matrix{
		rows:   rows,
		cols:   cols,
		colPtr: make([]int, cols+1),
		rowInd: make([]int, 0, len(sorted)),
		val:    make([]float64, 0, len(sorted)),
	}
	prevRow, prevCol := -1, -1
	for _, e := range sorted {
		if e.Col == prevCol && e.Row == prevRow {
			m.val[len(m.val)-1] += e.Val // duplicate position: accumulate

			continue
		}
		m.rowInd = append(m.rowInd, e.Row)
		m.val = append(m.val, e.Val)
		m.colPtr[e.Col+1]++
		prevRow, prevCol = e.Row, e.Col
	}
	for j := 0; j < cols; j++ {
		m.colPtr[j+1] += m.colPtr[j]
	}

	return m
}
