// Command cdclsat reads a DIMACS CNF file and reports its satisfiability.
//
// Usage:
//
//	cdclsat <instance.cnf>
//
// There are no flags: the sole positional argument is the path to the
// CNF instance, optionally gzip-compressed (detected by a ".gz" suffix).
// Exit code is 0 on normal termination regardless of SAT/UNSAT, and
// nonzero for a usage error (not exactly one argument) or malformed input
// (unreadable file, bad token, empty clause) — not recoverable, since the
// search was never meaningfully started.
package main

import (
	"fmt"
	"os"

	"github.com/satkit/cdclsat/internal/dimacsio"
	"github.com/satkit/cdclsat/internal/printer"
	"github.com/satkit/cdclsat/internal/sat"
)

func run(args []string) error {
	if len(args) != 1 || args[0] == "" {
		return fmt.Errorf("usage: cdclsat <instance.cnf>")
	}

	s := sat.NewDefaultSolver()
	if err := dimacsio.Load(args[0], s); err != nil {
		return fmt.Errorf("could not load instance: %s", err)
	}

	status := s.Solve()
	return printer.PrintResult(os.Stdout, status, s.Model())
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "cdclsat: %s\n", err)
		os.Exit(1)
	}
}
