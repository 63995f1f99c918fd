package sat

import "testing"

func TestAssignmentStore_basic(t *testing.T) {
	a := newAssignmentStore()
	a.grow()
	a.grow()

	if a.NumVars() != 2 {
		t.Fatalf("NumVars() = %d, want 2", a.NumVars())
	}
	if !a.haveUnassigned() {
		t.Errorf("haveUnassigned() = false, want true")
	}

	a.assign(0, True, 1, nil)
	if got := a.Value(0); got != True {
		t.Errorf("Value(0) = %s, want true", got)
	}
	if got := a.Level(0); got != 1 {
		t.Errorf("Level(0) = %d, want 1", got)
	}
	if got := a.Reason(0); got != nil {
		t.Errorf("Reason(0) = %v, want nil", got)
	}

	a.assign(1, False, 1, nil)
	if a.haveUnassigned() {
		t.Errorf("haveUnassigned() = true, want false")
	}

	a.unassign(0)
	if got := a.Value(0); got != Unknown {
		t.Errorf("Value(0) after unassign = %s, want unknown", got)
	}
	if got := a.Level(0); got != -1 {
		t.Errorf("Level(0) after unassign = %d, want -1", got)
	}
	if !a.haveUnassigned() {
		t.Errorf("haveUnassigned() = false, want true")
	}
}

func TestAssignmentStore_litValue(t *testing.T) {
	a := newAssignmentStore()
	a.grow()
	a.assign(0, True, 1, nil)

	if got := a.LitValue(PositiveLiteral(0)); got != True {
		t.Errorf("LitValue(+v0) = %s, want true", got)
	}
	if got := a.LitValue(NegativeLiteral(0)); got != False {
		t.Errorf("LitValue(-v0) = %s, want false", got)
	}

	a.grow()
	if got := a.LitValue(PositiveLiteral(1)); got != Unknown {
		t.Errorf("LitValue(+v1) = %s, want unknown", got)
	}
	if got := a.LitValue(NegativeLiteral(1)); got != Unknown {
		t.Errorf("LitValue(-v1) = %s, want unknown", got)
	}
}
