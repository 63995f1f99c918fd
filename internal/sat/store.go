package sat

// ClauseStore holds the two clause collections: the fixed original clauses
// and the append-only learned clauses. The propagator and decision
// heuristic both iterate original clauses in insertion order followed by
// learned clauses in insertion order.
type ClauseStore struct {
	original []*Clause
	learned  []*Clause

	// learnedKeys bounds the growth of the learned collection. Dedup is
	// not required for correctness but keeps the store from growing without bound when
	// the same conflict recurs.
	learnedKeys map[uint64]struct{}
}

// NewClauseStore returns an empty ClauseStore.
func NewClauseStore() *ClauseStore {
	return &ClauseStore{learnedKeys: map[uint64]struct{}{}}
}

// Original returns the fixed collection of original clauses, in the order
// they were added. Callers must not mutate the returned slice.
func (cs *ClauseStore) Original() []*Clause {
	return cs.original
}

// Learned returns the collection of learned clauses, in the order they
// were added. Callers must not mutate the returned slice.
func (cs *ClauseStore) Learned() []*Clause {
	return cs.learned
}

// NumOriginal returns the number of original clauses.
func (cs *ClauseStore) NumOriginal() int {
	return len(cs.original)
}

// NumLearned returns the number of learned clauses.
func (cs *ClauseStore) NumLearned() int {
	return len(cs.learned)
}

// AddOriginal appends c to the fixed original clause collection. It must
// only be called before search begins.
func (cs *ClauseStore) AddOriginal(c *Clause) {
	cs.original = append(cs.original, c)
}

// AddLearned appends c to the learned clause collection unless a clause
// with the same structural key has already been learned, in which case it
// is a no-op. Reports whether c was actually added.
func (cs *ClauseStore) AddLearned(c *Clause) bool {
	if _, dup := cs.learnedKeys[c.key]; dup {
		return false
	}
	cs.learnedKeys[c.key] = struct{}{}
	cs.learned = append(cs.learned, c)
	return true
}
