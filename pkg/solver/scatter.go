package solver

import (
	"math"
	"math/rand/v2"
	"slices"

	"github.com/samber/lo"

	"github.com/pathsat/pathsat/pkg/cnf"
)

// Scatterer reorders the clauses of a formula so that rare and
// sign-balanced variables are touched early, improving the odds of
// discovering contradictions before the path set can grow. Scattering is a
// pure permutation: the clause multiset is never changed.
type Scatterer interface {
	Scatter(formula cnf.Formula, seed uint64) (cnf.Formula, error)
}

// NewScatterer builds a scatterer with the given shuffle chunk size. A zero
// chunk size selects the default, proportional to the square root of the
// variable count.
func NewScatterer(chunkSize uint64) Scatterer {
	return &scattererImplementation{chunkSize: chunkSize}
}

type scattererImplementation struct {
	chunkSize uint64
}

// clauseScore ranks a clause's diversity: many distinct variables first,
// then rarely occurring variables, then a balanced positive/negative split
// among its literals.
type clauseScore struct {
	uniqueVars int
	frequency  uint64
	imbalance  int
}

func scoreClause(clause cnf.Clause, counts map[uint64][2]uint64) clauseScore {
	variables := lo.Uniq(lo.Map(clause, func(literal cnf.Literal, _ int) uint64 {
		return literal.Var()
	}))

	frequency := lo.Reduce(variables, func(sum uint64, variable uint64, _ int) uint64 {
		return sum + counts[variable][0] + counts[variable][1]
	}, 0)

	balance := lo.Reduce(clause, func(sum int, literal cnf.Literal, _ int) int {
		if literal.Positive() {
			return sum + 1
		}
		return sum - 1
	}, 0)
	if balance < 0 {
		balance = -balance
	}

	return clauseScore{
		uniqueVars: len(variables),
		frequency:  frequency,
		imbalance:  balance,
	}
}

// compare orders scores so that the more diverse clause sorts first.
func (score clauseScore) compare(other clauseScore) int {
	if score.uniqueVars != other.uniqueVars {
		if score.uniqueVars > other.uniqueVars {
			return -1
		}
		return 1
	}
	if score.frequency != other.frequency {
		if score.frequency < other.frequency {
			return -1
		}
		return 1
	}
	if score.imbalance != other.imbalance {
		if score.imbalance < other.imbalance {
			return -1
		}
		return 1
	}
	return 0
}

func (scatterer *scattererImplementation) Scatter(formula cnf.Formula, seed uint64) (cnf.Formula, error) {
	if err := formula.Validate(); err != nil {
		return cnf.Formula{}, err
	}

	counts := cnf.Occurrences(formula)

	type scoredClause struct {
		clause cnf.Clause
		score  clauseScore
	}

	scored := lo.Map(formula.Clauses, func(clause cnf.Clause, _ int) scoredClause {
		return scoredClause{clause: clause, score: scoreClause(clause, counts)}
	})

	// Stable so that equally scored clauses keep their original relative order
	slices.SortStableFunc(scored, func(a, b scoredClause) int {
		return a.score.compare(b.score)
	})

	chunkSize := int(scatterer.chunkSize)
	if chunkSize <= 0 {
		chunkSize = max(1, int(math.Sqrt(float64(formula.InferVariables()))))
	}

	rng := rand.New(rand.NewPCG(seed, seed))
	for start := 0; start < len(scored); start += chunkSize {
		chunk := scored[start:min(start+chunkSize, len(scored))]
		rng.Shuffle(len(chunk), func(i, j int) {
			chunk[i], chunk[j] = chunk[j], chunk[i]
		})
	}

	return cnf.Formula{
		Variables: formula.InferVariables(),
		Clauses: lo.Map(scored, func(item scoredClause, _ int) cnf.Clause {
			return item.clause
		}),
	}, nil
}
