package ordering

// Compute returns the elimination permutation for the given strategy over a
// column-adjacency pattern: perm[k] is the original column eliminated at
// position k.
//
// Contract: deterministic (same pattern ⇒ same permutation), a bijection
// over [0, len(adj)), and purely structural — it can change factorization
// cost but never the mathematical solution. A zero-length pattern returns
// the empty permutation.
//
// Errors:
//   - ErrUnknownStrategy — st outside the closed strategy set.
//   - ErrBadPattern      — a neighbor index outside [0, len(adj)).
func Compute(st Strategy, adj [][]int) ([]int, error) {
	if err := validatePattern(adj); err != nil {
		return nil, err
	}

	switch st {
	case Natural:
		return identity(len(adj)), nil
	case AMD:
		return minimumDegree(adj), nil
	case COLAMD:
		return approxColumnMinDegree(adj), nil
	case NestedDissection:
		return nestedDissection(adj), nil
	default:
		return nil, ErrUnknownStrategy
	}
}

// validatePattern rejects neighbor indices outside the vertex range.
func validatePattern(adj [][]int) error {
	n := len(adj)
	for _, nbs := range adj {
		for _, u := range nbs {
			if u < 0 || u >= n {
				return ErrBadPattern
			}
		}
	}

	return nil
}

// identity returns the natural permutation 0..n-1.
func identity(n int) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	return perm
}

// ValidatePermutation checks that perm is a bijection over [0, n).
// Returns ErrBadPermutation otherwise.
func ValidatePermutation(perm []int, n int) error {
	if len(perm) != n {
		return ErrBadPermutation
	}
	seen := make([]bool, n)
	for _, p := range perm {
		if p < 0 || p >= n || seen[p] {
			return ErrBadPermutation
		}
		seen[p] = true
	}

	return nil
}
