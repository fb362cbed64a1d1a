// Package fgraph: key, block and factor types.
package fgraph

// Key identifies one optimization variable. Keys are opaque to the linear
// core; the graph only requires that each key keeps a single dimension for
// the lifetime of a linearization.
type Key string

// Block pairs a variable key with the factor's local Jacobian with respect
// to that variable. J has one row per residual component and one column per
// variable dimension.
type Block struct {
	Key Key
	J   [][]float64
}

// Factor is one measurement's linearization: local Jacobian blocks per
// involved variable plus the residual vector. Factors are immutable after
// construction; NewFactor deep-copies its inputs.
type Factor struct {
	blocks []Block
	resid  []float64
}

// NewFactor builds a validated, immutable factor.
//
// Errors:
//   - ErrEmptyResidual — residual has length zero.
//   - ErrEmptyKey      — a block references the empty key.
//   - ErrDuplicateKey  — two blocks name the same key.
//   - ErrBlockShape    — block rows ≠ len(residual), ragged rows, or zero
//     columns.
func NewFactor(residual []float64, blocks ...Block) (*Factor, error) {
	if len(residual) == 0 {
		return nil, ErrEmptyResidual
	}
	seen := make(map[Key]struct{}, len(blocks))
	copied := make([]Block, len(blocks))
	for i, b := range blocks {
		if b.Key == "" {
			return nil, ErrEmptyKey
		}
		if _, dup := seen[b.Key]; dup {
			return nil, ErrDuplicateKey
		}
		seen[b.Key] = struct{}{}

		if len(b.J) != len(residual) {
			return nil, ErrBlockShape
		}
		width := len(b.J[0])
		if width == 0 {
			return nil, ErrBlockShape
		}
		rows := make([][]float64, len(b.J))
		for r, row := range b.J {
			if len(row) != width {
				return nil, ErrBlockShape
			}
			rows[r] = append([]float64(nil), row...)
		}
		copied[i] = Block{Key: b.Key, J: rows}
	}

	return &Factor{
		blocks: copied,
		resid:  append([]float64(nil), residual...),
	}, nil
}

// Dim returns the residual dimension (the factor's row count).
func (f *Factor) Dim() int { return len(f.resid) }

// Keys returns the involved variable keys in block order.
func (f *Factor) Keys() []Key {
	keys := make([]Key, len(f.blocks))
	for i, b := range f.blocks {
		keys[i] = b.Key
	}

	return keys
}

// keyDim returns the column width of the block for key k, or 0.
func (f *Factor) keyDim(k Key) int {
	for _, b := range f.blocks {
		if b.Key == k {
			return len(b.J[0])
		}
	}

	return 0
}
