package sat

import "fmt"

// Literal is a signed reference to a boolean variable, encoded densely so
// that it can index directly into per-literal arrays: for internal
// (0-based) variable index v, the positive literal is 2*v and the negative
// literal is 2*v+1. Negation flips the low bit.
//
// This is the canonical literal encoding: lit = 2*v + sign, negate(lit) =
// lit XOR 1.
type Literal int

// PositiveLiteral returns the positive literal of the internal variable v.
func PositiveLiteral(v int) Literal {
	return Literal(v * 2)
}

// NegativeLiteral returns the negative literal of the internal variable v.
func NegativeLiteral(v int) Literal {
	return Literal(v*2 + 1)
}

// VarID returns the internal (0-based) variable index of the literal.
func (l Literal) VarID() int {
	return int(l) / 2
}

// IsPositive reports whether l is the positive literal of its variable
// (i.e. not its negation).
func (l Literal) IsPositive() bool {
	return l&1 == 0
}

// Opposite returns the negation of l.
func (l Literal) Opposite() Literal {
	return l ^ 1
}

// FromDIMACS converts a signed, 1-based DIMACS literal (e.g. 3 or -3) into
// a Literal over the internal 0-based variable it denotes.
func FromDIMACS(d int) Literal {
	if d < 0 {
		return NegativeLiteral(-d - 1)
	}
	return PositiveLiteral(d - 1)
}

// DIMACS returns the signed, 1-based DIMACS representation of l.
func (l Literal) DIMACS() int {
	if l.IsPositive() {
		return l.VarID() + 1
	}
	return -(l.VarID() + 1)
}

func (l Literal) String() string {
	if l.IsPositive() {
		return fmt.Sprintf("%d", l.VarID())
	}
	return fmt.Sprintf("!%d", l.VarID())
}
