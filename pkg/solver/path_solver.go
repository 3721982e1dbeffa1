package solver

import (
	"github.com/sirupsen/logrus"

	"github.com/pathsat/pathsat/pkg/cnf"
)

// NewPathSolver builds the path-expansion solver. Instead of recursive
// backtracking it carries an explicit deduplicated set of partial
// assignment paths and advances the whole set one clause at a time,
// reporting UNSAT as soon as every path has been invalidated.
func NewPathSolver(config Config) Solver {
	return &pathSolver{
		config:    config,
		scatterer: NewScatterer(config.ChunkSize),
	}
}

type pathSolver struct {
	config    Config
	scatterer Scatterer
}

func (solver *pathSolver) Solve(formula cnf.Formula) (Result, error) {
	scattered, err := solver.scatterer.Scatter(formula, solver.config.Seed)
	if err != nil {
		return Result{}, err
	}
	variables := scattered.InferVariables()

	current := NewPathSet()
	current.Insert(NewEmptyPath(variables))

	var rounds uint64
	for _, clause := range scattered.Clauses {
		if solver.config.MaxRounds > 0 && rounds >= solver.config.MaxRounds {
			return Result{}, ResourceLimitError{Resource: "rounds", Limit: solver.config.MaxRounds, Actual: rounds + 1}
		}

		next := NewPathSet()
		for _, path := range current.Paths() {
			expandPath(path, clause, next)
		}
		rounds++

		logrus.Debugf("round %v: clause %v, %v -> %v paths", rounds, clause, current.Len(), next.Len())

		if next.Len() == 0 {
			return Result{Status: StatusUnsat, Rounds: rounds}, nil
		}
		if solver.config.MaxPaths > 0 && uint64(next.Len()) > solver.config.MaxPaths {
			return Result{}, ResourceLimitError{Resource: "paths", Limit: solver.config.MaxPaths, Actual: uint64(next.Len())}
		}

		// The previous generation is dropped wholesale
		current = next
	}

	paths := current.Sorted()
	return Result{
		Status: StatusSat,
		Paths:  paths,
		DNF:    ExtractDNF(paths),
		Rounds: rounds,
	}, nil
}

// expandPath classifies the clause against a single path and inserts the
// path's contribution to the next generation:
//   - already satisfied: the path is carried over unchanged;
//   - already falsified: the path is dropped before ever reaching the next
//     generation;
//   - undecided: one descendant per literal whose variable is still
//     unassigned (literals that would contradict an assigned slot never
//     spawn a branch).
func expandPath(path Path, clause cnf.Clause, next *PathSet) {
	satisfied := false
	hasUnassigned := false
	for _, literal := range clause {
		switch path.Slot(literal.Var()) {
		case Unassigned:
			hasUnassigned = true
		case True:
			if literal.Positive() {
				satisfied = true
			}
		case False:
			if !literal.Positive() {
				satisfied = true
			}
		}
	}

	if satisfied {
		next.Insert(path)
		return
	}
	if !hasUnassigned {
		// Every literal contradicts its slot: the path dies here
		return
	}

	for _, literal := range clause {
		if path.Slot(literal.Var()) != Unassigned {
			continue
		}
		next.Insert(path.Assign(literal))
	}
}
