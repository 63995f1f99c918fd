package sat

import "testing"

func TestNewClause_dedupAndSort(t *testing.T) {
	c, ok := NewClause([]Literal{
		PositiveLiteral(2), PositiveLiteral(0), PositiveLiteral(2), NegativeLiteral(1),
	})
	if !ok {
		t.Fatalf("NewClause(): want ok=true, got false")
	}
	want := []Literal{PositiveLiteral(0), NegativeLiteral(1), PositiveLiteral(2)}
	got := c.Literals()
	if len(got) != len(want) {
		t.Fatalf("Literals() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Literals()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestNewClause_empty(t *testing.T) {
	if _, ok := NewClause(nil); ok {
		t.Errorf("NewClause(nil): want ok=false, got true")
	}
	if _, ok := NewClause([]Literal{}); ok {
		t.Errorf("NewClause([]): want ok=false, got true")
	}
}

func TestNewClause_allDuplicates(t *testing.T) {
	c, ok := NewClause([]Literal{PositiveLiteral(0), PositiveLiteral(0)})
	if !ok {
		t.Fatalf("NewClause(): want ok=true, got false")
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestNewClause_tautologyAccepted(t *testing.T) {
	// A clause containing both a literal and its negation is permanently
	// satisfied, not malformed: it must still construct successfully.
	c, ok := NewClause([]Literal{PositiveLiteral(0), NegativeLiteral(0)})
	if !ok {
		t.Fatalf("NewClause(): want ok=true for a tautological clause, got false")
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}

func TestClauseKey_orderIndependent(t *testing.T) {
	a, _ := NewClause([]Literal{PositiveLiteral(0), NegativeLiteral(1), PositiveLiteral(2)})
	b, _ := NewClause([]Literal{PositiveLiteral(2), PositiveLiteral(0), NegativeLiteral(1)})
	if a.Key() != b.Key() {
		t.Errorf("Key() differs for clauses with the same literal set in different order")
	}
}

func TestClauseKey_distinctClausesUsuallyDiffer(t *testing.T) {
	a, _ := NewClause([]Literal{PositiveLiteral(0), PositiveLiteral(1)})
	b, _ := NewClause([]Literal{PositiveLiteral(0), NegativeLiteral(1)})
	if a.Key() == b.Key() {
		t.Errorf("Key() collided for distinct clauses %v and %v", a, b)
	}
}
