package cnf

import (
	"math/rand/v2"
)

// Generate3SATInstance builds a random 3-SAT formula with the given variable
// and clause counts. Each clause references three distinct variables with
// random polarities. The generator is driven entirely by the supplied rng so
// instances are reproducible from a seed.
func Generate3SATInstance(variables uint64, clauses int, rng *rand.Rand) Formula {
	formula := Formula{
		Variables: variables,
		Clauses:   make([]Clause, clauses),
	}

	for i := range clauses {
		picked := make(map[uint64]bool, ClauseSize)
		clause := make(Clause, 0, ClauseSize)
		for len(clause) < ClauseSize {
			variable := 1 + rng.Uint64N(variables)
			if picked[variable] {
				continue
			}
			picked[variable] = true

			literal := Literal(variable)
			if rng.Float32() < 0.5 {
				literal = -literal
			}
			clause = append(clause, literal)
		}
		formula.Clauses[i] = clause
	}

	return formula
}

// AssertAssignment reports whether the given literals form a consistent
// partial assignment that satisfies every clause of the formula on its own,
// regardless of how the unmentioned variables are completed.
func AssertAssignment(formula Formula, assignment []Literal) bool {
	// Make sure there are no duplicates nor contradictions
	literals := make(map[Literal]bool)
	for _, literal := range assignment {
		if literals[literal] || literals[-literal] {
			return false
		}
		literals[literal] = true
	}

	// Check that all clauses are satisfied
	for _, clause := range formula.Clauses {
		satisfied := false
		for _, literal := range clause {
			if literals[literal] {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false
		}
	}

	return true
}

// BruteForceSatisfiable decides satisfiability by enumerating all 2^N
// assignments. Only suitable for the small instances used in tests.
func BruteForceSatisfiable(formula Formula) bool {
	variables := formula.InferVariables()

	for mask := uint64(0); mask < 1<<variables; mask++ {
		satisfied := true
		for _, clause := range formula.Clauses {
			clauseSatisfied := false
			for _, literal := range clause {
				positive := mask&(1<<(literal.Var()-1)) != 0
				if positive == literal.Positive() {
					clauseSatisfied = true
					break
				}
			}
			if !clauseSatisfied {
				satisfied = false
				break
			}
		}
		if satisfied {
			return true
		}
	}

	return false
}
