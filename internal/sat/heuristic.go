package sat

// decide implements the Dynamic Largest Individual Sum heuristic: on
// every call it recomputes, from scratch, how many unresolved clauses
// each unassigned literal would satisfy, and returns the variable/polarity
// pair with the largest count. There is no incrementally-maintained score
// (unlike VSIDS): see DESIGN.md for why that rules out an indexed
// priority-queue structure here.
//
// Ties are broken by ascending variable id for reproducibility, and a tie
// between the best positive and best negative count favors the negative
// branch even though it looks arbitrary.
//
// decide returns ok=false only when every variable is already assigned;
// callers must check haveUnassigned first.
func (s *Solver) decide() (v int, polarity int, ok bool) {
	numVars := s.assignment.NumVars()
	pos := make([]int, numVars)
	neg := make([]int, numVars)

	tally := func(clauses []*Clause) {
		for _, c := range clauses {
			satisfied := false
			for _, l := range c.Literals() {
				if s.assignment.LitValue(l) == True {
					satisfied = true
					break
				}
			}
			if satisfied {
				continue
			}
			for _, l := range c.Literals() {
				if s.assignment.Value(l.VarID()) != Unknown {
					continue
				}
				if l.IsPositive() {
					pos[l.VarID()]++
				} else {
					neg[l.VarID()]++
				}
			}
		}
	}
	tally(s.store.Original())
	tally(s.store.Learned())

	bestPosVar, bestPosCount := -1, -1
	bestNegVar, bestNegCount := -1, -1
	for v := 0; v < numVars; v++ {
		if s.assignment.Value(v) != Unknown {
			continue
		}
		if pos[v] > bestPosCount {
			bestPosCount, bestPosVar = pos[v], v
		}
		if neg[v] > bestNegCount {
			bestNegCount, bestNegVar = neg[v], v
		}
	}

	if bestPosVar == -1 && bestNegVar == -1 {
		return 0, 0, false
	}
	if bestPosCount > bestNegCount {
		return bestPosVar, 1, true
	}
	return bestNegVar, 0, true
}
