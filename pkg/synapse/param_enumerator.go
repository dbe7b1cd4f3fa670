package synapse

// paramEnumerator is an explicit iterator object: an index-tuple odometer
// over the pool sizes. It lazily walks the Cartesian product of pools one
// tuple at a time and is restartable via Reset.
type paramEnumerator struct {
	pools []([]Value)
	idx   uint64
	total uint64
}

func newParamEnumerator(pools [][]Value) *paramEnumerator {
	total := uint64(1)
	for _, p := range pools {
		total *= uint64(len(p))
	}
	return &paramEnumerator{pools: pools, total: total}
}

// Advance draws the next tuple, or reports ok=false once the product is
// exhausted.
func (e *paramEnumerator) Advance() (tuple []Value, ok bool) {
	if e.idx >= e.total {
		return nil, false
	}
	rem := e.idx
	tuple = make([]Value, len(e.pools))
	// Mixed-radix decomposition of idx over the pool sizes, least
	// significant (last position) varying fastest, matching a standard
	// Cartesian-product odometer.
	for i := len(e.pools) - 1; i >= 0; i-- {
		n := uint64(len(e.pools[i]))
		tuple[i] = e.pools[i][rem%n]
		rem /= n
	}
	e.idx++
	return tuple, true
}

// Reset rewinds the enumerator to the beginning.
func (e *paramEnumerator) Reset() { e.idx = 0 }

// Exhausted reports whether Advance would return ok=false.
func (e *paramEnumerator) Exhausted() bool { return e.idx >= e.total }
