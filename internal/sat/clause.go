package sat

import (
	"sort"
	"strings"
)

// Clause is a finite, nonempty, duplicate-free set of literals (not
// necessarily over distinct variables — see NewClause on tautologies).
// It never mutates its literal set after construction: original clauses
// are immutable for the solver's lifetime and learned clauses are
// append-only, so there is no watched-literal bookkeeping here.
type Clause struct {
	literals []Literal

	// key is a structural hash of the sorted literal set, used by the
	// clause store to bound growth of the learned-clause collection. A
	// hash collision would wrongly treat two distinct clauses as
	// duplicates; learned-clause dedup is a growth bound, not a soundness
	// requirement (duplicates are harmless on their own), so this is an
	// acceptable trade.
	key uint64
}

// NewClause builds a Clause from lits, sorting and deduplicating identical
// literals. It reports ok=false if the clause is empty after
// deduplication, which signals malformed input at load time.
// Tautological clauses (containing both l and -l) are accepted as
// permanently satisfied and harmless, and indeed nothing downstream needs
// to special-case them — a clause containing l and -l can never be
// classified falsified, since at least one of the two is true whenever
// both are assigned.
func NewClause(lits []Literal) (*Clause, bool) {
	if len(lits) == 0 {
		return nil, false
	}

	sorted := append([]Literal(nil), lits...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	j := 0
	for i, l := range sorted {
		if i > 0 && l == sorted[i-1] {
			continue // duplicate literal, drop it
		}
		sorted[j] = l
		j++
	}
	sorted = sorted[:j]

	if len(sorted) == 0 {
		return nil, false
	}

	return &Clause{literals: sorted, key: hashLiterals(sorted)}, true
}

// hashLiterals computes an FNV-1a hash over the (already sorted) literal
// set, giving clauses with the same literal set the same key regardless of
// the order they were supplied in.
func hashLiterals(lits []Literal) uint64 {
	var h uint64 = 14695981039346656037
	for _, l := range lits {
		h ^= uint64(uint32(l))
		h *= 1099511628211
	}
	return h
}

// Literals returns the clause's literal set. Callers must not mutate the
// returned slice.
func (c *Clause) Literals() []Literal {
	return c.literals
}

// Len returns the number of literals in the clause.
func (c *Clause) Len() int {
	return len(c.literals)
}

// Key returns the clause's structural hash, used for learned-clause dedup.
func (c *Clause) Key() uint64 {
	return c.key
}

func (c *Clause) String() string {
	if len(c.literals) == 0 {
		return "Clause[]"
	}
	sb := strings.Builder{}
	sb.WriteString("Clause[")
	sb.WriteString(c.literals[0].String())
	for _, l := range c.literals[1:] {
		sb.WriteByte(' ')
		sb.WriteString(l.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
