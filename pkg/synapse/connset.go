package synapse

// connSet is a deduplicating set of *Connection keyed by structural hash
// with collision resolution via Equal, backing the skeleton enumerator's
// deduplicated set of candidate connections: a small, purpose-built
// concurrency-free collection rather than a generic container.
type connSet struct {
	buckets map[uint64][]*Connection
}

func newConnSet() *connSet {
	return &connSet{buckets: make(map[uint64][]*Connection)}
}

// add inserts c if no structurally-equal Connection is already present,
// reporting whether it was newly added.
func (s *connSet) add(c *Connection) bool {
	h := c.Hash()
	for _, existing := range s.buckets[h] {
		if existing.Equal(c) {
			return false
		}
	}
	s.buckets[h] = append(s.buckets[h], c)
	return true
}

func (s *connSet) slice() []*Connection {
	out := make([]*Connection, 0, len(s.buckets))
	for _, bucket := range s.buckets {
		out = append(out, bucket...)
	}
	return out
}

func (s *connSet) addAll(cs []*Connection) {
	for _, c := range cs {
		s.add(c)
	}
}
