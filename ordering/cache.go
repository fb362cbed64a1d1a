package ordering

// Cache memoizes one ordering across the repeated linearizations of an
// optimizer run. It is an explicit two-state machine:
//
//	Uncomputed --Ordering(pattern)--> Cached   (computes via the strategy)
//	Uncomputed --SetExplicit(perm)--> Cached   (adopts verbatim)
//	Cached     --Reset()-----------> Uncomputed
//
// Once cached, every Ordering call returns the same permutation until the
// owner resets — the cache deliberately does NOT watch the graph for
// structural changes, so an owner that mutates the graph's structure and
// keeps solving against a stale ordering gets stale fill behavior (never a
// wrong solution, orderings are purely structural). Reset after structural
// edits is the owner's job.
//
// Single-owner: Cache is mutable state and not safe for concurrent use.
type Cache struct {
	strategy Strategy
	perm     []int
	cached   bool
}

// CacheOption configures a Cache at construction.
type CacheOption func(*Cache)

// WithStrategy selects the strategy used for lazy computation.
// The default is COLAMD, the usual companion of the QR path.
func WithStrategy(st Strategy) CacheOption {
	return func(c *Cache) { c.strategy = st }
}

// NewCache returns an Uncomputed cache. Without options the lazily computed
// ordering uses COLAMD.
func NewCache(opts ...CacheOption) *Cache {
	c := &Cache{strategy: COLAMD}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Ordering returns the cached permutation, computing it from the pattern on
// first call. Subsequent calls ignore the pattern entirely and return the
// memoized value; callers must not mutate the returned slice.
func (c *Cache) Ordering(adj [][]int) ([]int, error) {
	if c.cached {
		return c.perm, nil
	}
	perm, err := Compute(c.strategy, adj)
	if err != nil {
		return nil, err
	}
	c.perm = perm
	c.cached = true

	return c.perm, nil
}

// SetExplicit adopts a caller-supplied ordering verbatim and marks the
// cache Cached without any structural computation. The permutation is
// validated against its own length only; shape agreement with the matrix is
// checked where the ordering is consumed.
func (c *Cache) SetExplicit(perm []int) error {
	if err := ValidatePermutation(perm, len(perm)); err != nil {
		return err
	}
	c.perm = perm
	c.cached = true

	return nil
}

// Cached reports whether the cache holds an ordering.
func (c *Cache) Cached() bool { return c.cached }

// Reset returns the cache to Uncomputed, dropping any held ordering.
func (c *Cache) Reset() {
	c.perm = nil
	c.cached = false
}
