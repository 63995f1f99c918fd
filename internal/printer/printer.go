// Package printer renders a solver's verdict in a DIMACS-adjacent result
// format: a status line, then, for a satisfiable result, one or more
// value lines.
package printer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/satkit/cdclsat/internal/sat"
)

// PrintResult writes status to w in the DIMACS-adjacent result format:
//
//	s SATISFIABLE
//	v <lit> <lit> <lit> <lit> <lit> 0
//	v <lit> ... 0
//
// or
//
//	s UNSATISFIABLE
//
// model is indexed by 0-based variable id in ascending order and is
// ignored for an unsatisfiable result.
func PrintResult(w io.Writer, status sat.Status, model []bool) error {
	if status != sat.StatusSatisfiable {
		_, err := fmt.Fprintln(w, "s UNSATISFIABLE")
		return err
	}

	if _, err := fmt.Fprintln(w, "s SATISFIABLE"); err != nil {
		return err
	}
	return printModel(w, model)
}

// litsPerLine is the number of literals grouped onto each "v" line before
// it is terminated and a new one started.
const litsPerLine = 5

func printModel(w io.Writer, model []bool) error {
	var sb strings.Builder
	count := 0
	for v, val := range model {
		lit := sat.PositiveLiteral(v)
		if !val {
			lit = sat.NegativeLiteral(v)
		}
		if count == 0 {
			sb.WriteString("v")
		}
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(lit.DIMACS()))
		count++
		if count == litsPerLine {
			sb.WriteString(" 0\n")
			count = 0
		}
	}
	if count > 0 {
		sb.WriteString(" 0\n")
	}
	_, err := fmt.Fprint(w, sb.String())
	return err
}
