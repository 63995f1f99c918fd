// Package dimacsio loads CNF formulas and reference models in the DIMACS
// text format, transparently decompressing gzipped input by file
// extension.
package dimacsio

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rhartert/dimacs"

	"github.com/satkit/cdclsat/internal/sat"
)

// Solver is the subset of *sat.Solver that a DIMACS load needs.
type Solver interface {
	AddVariable() int
	AddClause([]sat.Literal) error
}

func open(filename string) (io.ReadCloser, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(filename, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &gzipFile{gz: gz, f: f}, nil
	}
	return f, nil
}

// gzipFile closes both the gzip.Reader and the underlying *os.File.
type gzipFile struct {
	gz *gzip.Reader
	f  *os.File
}

func (g *gzipFile) Read(p []byte) (int, error) { return g.gz.Read(p) }

func (g *gzipFile) Close() error {
	err := g.gz.Close()
	if cerr := g.f.Close(); err == nil {
		err = cerr
	}
	return err
}

// Load parses the DIMACS CNF file at filename and loads its formula into
// solver: one AddVariable call per declared variable, one AddClause call
// per clause line, in file order.
func Load(filename string, solver Solver) error {
	r, err := open(filename)
	if err != nil {
		return fmt.Errorf("dimacsio: opening %q: %w", filename, err)
	}
	defer r.Close()

	b := &builder{solver: solver}
	if err := dimacs.ReadBuilder(r, b); err != nil {
		return fmt.Errorf("dimacsio: parsing %q: %w", filename, err)
	}
	return nil
}

type builder struct {
	solver Solver
}

func (b *builder) Problem(problem string, nVars int, nClauses int) error {
	if problem != "cnf" {
		return fmt.Errorf("dimacsio: unsupported problem type %q, want \"cnf\"", problem)
	}
	for i := 0; i < nVars; i++ {
		b.solver.AddVariable()
	}
	return nil
}

func (b *builder) Clause(tmpClause []int) error {
	clause := make([]sat.Literal, len(tmpClause))
	for i, l := range tmpClause {
		clause[i] = sat.FromDIMACS(l)
	}
	return b.solver.AddClause(clause)
}

func (b *builder) Comment(_ string) error {
	return nil
}

// LoadModels reads one or more reference models from a DIMACS-flavored
// models file: each non-comment line is a full assignment written as
// DIMACS literals (one per variable, sign gives the truth value),
// terminated by 0, exactly like a DIMACS clause line. Used by tests to
// check a solver's model against known-good assignments.
func LoadModels(filename string) ([][]bool, error) {
	r, err := open(filename)
	if err != nil {
		return nil, fmt.Errorf("dimacsio: opening %q: %w", filename, err)
	}
	defer r.Close()

	b := &modelBuilder{}
	if err := dimacs.ReadBuilder(r, b); err != nil {
		return nil, fmt.Errorf("dimacsio: parsing %q: %w", filename, err)
	}
	return b.models, nil
}

type modelBuilder struct {
	models [][]bool
}

func (b *modelBuilder) Problem(problem string, nVars int, nClauses int) error {
	return fmt.Errorf("dimacsio: models file must not contain a problem line")
}

func (b *modelBuilder) Comment(_ string) error {
	return nil
}

func (b *modelBuilder) Clause(tmpClause []int) error {
	model := make([]bool, len(tmpClause))
	for i, l := range tmpClause {
		model[i] = l > 0
	}
	b.models = append(b.models, model)
	return nil
}
