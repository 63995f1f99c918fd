package sat

// analyze implements 1-UIP conflict analysis restricted to the current
// decision level, given the falsified clause conflict and the current
// decision level lvl. It returns the learned clause and the backjump
// level, or a backjump level of -1 to signal UNSAT (the base case: a
// conflict at level 0).
//
// Two easy-to-miss behaviors are preserved here deliberately:
//   - the "v in curr or -v in curr" selection match is sign-agnostic,
//     which this implementation gets for free by keying curr on variable
//     id rather than literal value (an unsigned decision variable and a
//     signed propagated literal for the same variable never need to be
//     disambiguated here).
//   - when the variable chosen for resolution is a decision (reason is
//     empty), pool becomes empty and the next partition step adds
//     nothing; there is no early exit for this case, and the loop still
//     ends only once |curr| == 1.
func (s *Solver) analyze(conflict *Clause, lvl int) (learned []Literal, backjumpLevel int) {
	if lvl == 0 {
		return nil, -1
	}

	s.analyzeSeen.Clear()
	s.analyzeDone.Clear()

	curr := map[int]Literal{}
	var prev []Literal

	history := s.levelHistoryVars(lvl)

	pool := append([]Literal(nil), conflict.Literals()...)
	var last Literal

	for {
		for _, l := range pool {
			v := l.VarID()
			if s.analyzeSeen.Contains(v) {
				continue // already partitioned earlier in this analysis
			}
			s.analyzeSeen.Add(v)
			if s.assignment.Level(v) == lvl {
				curr[v] = l
			} else {
				prev = append(prev, l)
			}
		}

		if len(curr) == 1 {
			for _, l := range curr {
				last = l
			}
			break
		}

		lastVar := -1
		for i := len(history) - 1; i >= 0; i-- {
			if _, ok := curr[history[i]]; ok {
				lastVar = history[i]
				break
			}
		}
		// Guaranteed to be found: every variable in curr is at level lvl
		// and therefore appears in this level's decision/propagated
		// history.
		last = curr[lastVar]
		delete(curr, lastVar)
		s.analyzeDone.Add(lastVar)

		reason := s.assignment.Reason(lastVar)
		pool = pool[:0]
		if reason != nil {
			for _, l := range reason.Literals() {
				if !s.analyzeDone.Contains(l.VarID()) {
					pool = append(pool, l)
				}
			}
		}
		// If reason == nil, lastVar was a decision: pool stays empty and
		// the next iteration's partition step adds nothing new.
	}

	learned = make([]Literal, 0, len(prev)+1)
	learned = append(learned, last)
	learned = append(learned, prev...)

	backjumpLevel = lvl - 1
	if len(prev) > 0 {
		backjumpLevel = -1
		for _, l := range prev {
			if lv := s.assignment.Level(l.VarID()); lv > backjumpLevel {
				backjumpLevel = lv
			}
		}
	}

	return learned, backjumpLevel
}

// levelHistoryVars returns the variable ids of H = [decision[lvl]] ++
// propagated[lvl], in chronological order.
func (s *Solver) levelHistoryVars(lvl int) []int {
	propagated := s.levels.propagatedAt(lvl)
	history := make([]int, 0, 1+len(propagated))
	history = append(history, s.levels.decisionAt(lvl))
	for _, l := range propagated {
		history = append(history, l.VarID())
	}
	return history
}
