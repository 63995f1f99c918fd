package sat

import (
	"fmt"
	"time"
)

// Status is the verdict returned by Solve.
type Status int

const (
	StatusUnsatisfiable Status = iota
	StatusSatisfiable
)

func (st Status) String() string {
	if st == StatusSatisfiable {
		return "SATISFIABLE"
	}
	return "UNSATISFIABLE"
}

// Stats accumulates search statistics. There is no restart schedule, so
// there is nothing for a restart counter to count.
type Stats struct {
	TotalConflicts    int64
	TotalDecisions    int64
	TotalPropagations int64
}

// Options configures a Solver. Trace is the only knob with any bearing on
// behavior visible outside the search itself: there are no restarts, no
// clause/variable activity decay, and no other stop conditions to tune.
type Options struct {
	// Trace, if true, prints periodic search statistics to stdout in a
	// "c ..."-prefixed style.
	Trace bool
}

// DefaultOptions is the zero-value configuration: silent search.
var DefaultOptions = Options{}

// Solver is a single-use CDCL solver instance. All of its state — clause
// store, assignment store, implication-graph arrays, per-level
// bookkeeping — is exclusively owned by the instance; nothing is shared
// across solvers.
type Solver struct {
	store      *ClauseStore
	assignment *assignmentStore
	levels     *levelBook

	// unsat is latched once a root-level (level 0) conflict is found,
	// either during search or by an AddClause call that produces an
	// immediately empty clause.
	unsat bool

	// Reusable scratch state, shared across calls to avoid reallocating
	// on every sweep/analysis.
	unitSeen    *ResetSet
	unitQueue   *Queue[unitPair]
	analyzeSeen *ResetSet
	analyzeDone *ResetSet

	trace     bool
	startTime time.Time

	Stats Stats

	// model holds the satisfying assignment once Solve returns
	// StatusSatisfiable.
	model []bool
}

// NewSolver returns a new, empty Solver configured with ops.
func NewSolver(ops Options) *Solver {
	return &Solver{
		store:       NewClauseStore(),
		assignment:  newAssignmentStore(),
		levels:      newLevelBook(),
		unitSeen:    &ResetSet{},
		unitQueue:   NewQueue[unitPair](128),
		analyzeSeen: &ResetSet{},
		analyzeDone: &ResetSet{},
		trace:       ops.Trace,
	}
}

// NewDefaultSolver returns a Solver configured with DefaultOptions.
func NewDefaultSolver() *Solver {
	return NewSolver(DefaultOptions)
}

// NumVariables returns the number of variables declared so far.
func (s *Solver) NumVariables() int {
	return s.assignment.NumVars()
}

// NumConstraints returns the number of original clauses.
func (s *Solver) NumConstraints() int {
	return s.store.NumOriginal()
}

// NumLearnts returns the number of learned clauses.
func (s *Solver) NumLearnts() int {
	return s.store.NumLearned()
}

// VarValue returns the current value of variable v (0-based).
func (s *Solver) VarValue(v int) LBool {
	return s.assignment.Value(v)
}

// AddVariable declares one new variable and returns its 0-based id.
func (s *Solver) AddVariable() int {
	id := s.assignment.NumVars()
	s.assignment.grow()
	s.unitSeen.Expand()
	s.unitSeen.Expand() // one slot per literal: positive and negative
	s.analyzeSeen.Expand()
	s.analyzeDone.Expand()
	return id
}

// AddClause adds an original clause over the given literals. It must only
// be called before Solve runs; calling it afterwards is a programming error.
//
// An empty clause (after literal deduplication) is malformed input: it
// latches the solver as permanently unsatisfiable and is reported as an
// error so the caller can surface it.
func (s *Solver) AddClause(lits []Literal) error {
	c, ok := NewClause(lits)
	if !ok {
		s.unsat = true
		return fmt.Errorf("sat: empty clause")
	}
	s.store.AddOriginal(c)
	return nil
}

// haveUnassigned reports whether any variable is still unassigned.
func (s *Solver) haveUnassigned() bool {
	return s.assignment.haveUnassigned()
}

// Solve runs the CDCL main loop to completion and returns SAT or UNSAT. A
// Solver must not be reused after Solve returns.
func (s *Solver) Solve() Status {
	s.startTime = time.Now()

	if s.unsat {
		return StatusUnsatisfiable
	}

	for {
		if !s.haveUnassigned() {
			return s.finishSAT()
		}

		if conflict := s.propagate(); conflict != nil {
			s.Stats.TotalConflicts++

			lvl := s.levels.currentLevel()
			learned, backjump := s.analyze(conflict, lvl)
			if backjump < 0 {
				s.unsat = true
				return StatusUnsatisfiable
			}

			s.backtrack(backjump)
			s.addLearned(learned)

			if s.trace {
				s.printStats()
			}
			continue
		}

		if !s.haveUnassigned() {
			return s.finishSAT()
		}

		v, polarity, ok := s.decide()
		if !ok {
			return s.finishSAT()
		}
		s.Stats.TotalDecisions++

		val := False
		if polarity == 1 {
			val = True
		}
		s.levels.push(v)
		s.assignment.assign(v, val, s.levels.currentLevel(), nil)
	}
}

// addLearned builds a Clause from the analyzer's output and adds it to the
// learned store. The clause is not enqueued explicitly: it is unit by
// construction at the backjump level (its asserting literal, learned[0],
// is the only literal not already falsified there), so the very next
// propagation sweep forces it.
func (s *Solver) addLearned(lits []Literal) {
	c, ok := NewClause(lits)
	if !ok {
		panic("sat: conflict analysis produced an empty learned clause")
	}
	s.store.AddLearned(c)
}

// finishSAT records the current total assignment as the model and returns
// StatusSatisfiable.
func (s *Solver) finishSAT() Status {
	model := make([]bool, s.assignment.NumVars())
	for v := range model {
		lb := s.assignment.Value(v)
		if lb == Unknown {
			panic("sat: finishSAT called with an unassigned variable")
		}
		model[v] = lb == True
	}
	s.model = model
	return StatusSatisfiable
}

// Model returns the satisfying assignment found by the last call to
// Solve, indexed by 0-based variable id in the assignment store's natural
// (ascending) order. It is nil unless Solve returned StatusSatisfiable.
func (s *Solver) Model() []bool {
	return s.model
}

func (s *Solver) printStats() {
	fmt.Printf(
		"c %14.3fs %14d conflicts %14d decisions %14d propagations %14d learnts\n",
		time.Since(s.startTime).Seconds(),
		s.Stats.TotalConflicts,
		s.Stats.TotalDecisions,
		s.Stats.TotalPropagations,
		s.store.NumLearned(),
	)
}
