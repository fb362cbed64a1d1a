// Package ordering: strategy enumeration, selector parsing, sentinel errors.
package ordering

import (
	"errors"
	"fmt"
)

// Sentinel errors for ordering computation and selector parsing.
var (
	// ErrUnknownStrategy is returned for a selector outside the recognized
	// set {NATURAL, AMD, COLAMD, NESTED-DISSECTION}. An unrecognized
	// selector is a contract violation at the boundary, never a silent
	// identity fallback.
	ErrUnknownStrategy = errors.New("ordering: unknown ordering strategy")

	// ErrBadPattern indicates a malformed column-adjacency pattern
	// (neighbor index outside [0, n)).
	ErrBadPattern = errors.New("ordering: malformed sparsity pattern")

	// ErrBadPermutation indicates an explicit ordering that is not a
	// permutation of its index range.
	ErrBadPermutation = errors.New("ordering: not a permutation")
)

// Strategy selects a fill-reducing ordering algorithm. The set is closed:
// dispatching an out-of-range value fails with ErrUnknownStrategy.
type Strategy int

const (
	// Natural is the identity permutation: columns stay in place.
	Natural Strategy = iota

	// AMD runs exact minimum-degree elimination over the symmetric
	// pattern of AᵗA. Pairs with the Cholesky normal-equations path.
	AMD

	// COLAMD runs approximate column minimum degree: degree updates use a
	// clique upper bound instead of exact fill tracking, trading a little
	// ordering quality for speed. Pairs with QR directly on A.
	COLAMD

	// NestedDissection recursively bisects the pattern graph via breadth
	// first level structures, ordering separators last. Heavier setup,
	// lower fill for large, well-structured systems.
	NestedDissection
)

// strategyNames holds the canonical selector spelling per Strategy.
var strategyNames = map[Strategy]string{
	Natural:          "NATURAL",
	AMD:              "AMD",
	COLAMD:           "COLAMD",
	NestedDissection: "NESTED-DISSECTION",
}

// String returns the canonical selector for s, or a diagnostic form for
// out-of-range values.
func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}

	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy maps a selector string onto its Strategy. Selectors are
// exact-match and case-sensitive; anything outside the recognized set
// returns ErrUnknownStrategy.
func ParseStrategy(selector string) (Strategy, error) {
	for s, name := range strategyNames {
		if name == selector {
			return s, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, selector)
}
