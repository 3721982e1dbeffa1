package solver

import (
	gophersat "github.com/crillab/gophersat/solver"
	"github.com/samber/lo"

	"github.com/pathsat/pathsat/pkg/cnf"
)

// NewGophersatSolver wraps the embeddable gophersat CDCL solver behind the
// same Solver interface as the path engine. It serves as the reference
// implementation in benchmarks and cross-check tests. A SAT verdict carries
// a single fully assigned path built from the solver's model.
func NewGophersatSolver() Solver {
	return &gophersatSolver{}
}

type gophersatSolver struct{}

func (solver *gophersatSolver) Solve(formula cnf.Formula) (Result, error) {
	if err := formula.Validate(); err != nil {
		return Result{}, err
	}

	clauses := lo.Map(formula.Clauses, func(clause cnf.Clause, _ int) []int {
		return lo.Map(clause, func(literal cnf.Literal, _ int) int {
			return int(literal)
		})
	})

	problem := gophersat.ParseSlice(clauses)
	engine := gophersat.New(problem)
	if engine.Solve() != gophersat.Sat {
		return Result{Status: StatusUnsat}, nil
	}

	variables := formula.InferVariables()
	path := NewEmptyPath(variables)
	for i, positive := range engine.Model() {
		if uint64(i) >= variables {
			break
		}
		literal := cnf.Literal(i + 1)
		if !positive {
			literal = -literal
		}
		path = path.Assign(literal)
	}

	paths := []Path{path}
	return Result{
		Status: StatusSat,
		Paths:  paths,
		DNF:    ExtractDNF(paths),
	}, nil
}
