package sat

// backtrack restores the solver to decision level target: every variable
// assigned above target is unassigned and the per-level
// bookkeeping above target is discarded. This is non-chronological — the
// conflict analyzer can send target arbitrarily far below the current
// level, skipping over decisions that played no part in the conflict.
func (s *Solver) backtrack(target int) {
	for lvl := s.levels.currentLevel(); lvl > target; lvl-- {
		for _, l := range s.levels.propagatedAt(lvl) {
			s.assignment.unassign(l.VarID())
		}
		s.assignment.unassign(s.levels.decisionAt(lvl))
	}
	s.levels.truncate(target)
}
