package solver

import "github.com/pathsat/pathsat/pkg/cnf"

type Status int

const (
	StatusSat Status = iota
	StatusUnsat
)

func (status Status) String() string {
	if status == StatusSat {
		return "SAT"
	}
	return "UNSAT"
}

// Result carries the outcome of a solve attempt. On SAT, Paths holds the
// surviving assignment paths in canonical order and DNF their disjunctive
// normal form rendering; both are empty on UNSAT. Rounds counts the clauses
// actually processed, which is smaller than the formula size when the
// engine short-circuits on an empty path set.
type Result struct {
	Status Status
	Paths  []Path
	DNF    DNF
	Rounds uint64
}

type Solver interface {
	Solve(formula cnf.Formula) (Result, error)
}
