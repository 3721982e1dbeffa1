package cnf

import (
	"fmt"
	"strings"
)

// ClauseSize is the fixed arity of every clause: the solver works on 3-SAT
// instances exclusively.
const ClauseSize = 3

// Literal is a nonzero signed reference to a variable: the magnitude is a
// 1-based variable index and the sign encodes the required polarity
// (positive = true, negative = false).
type Literal int64

func (literal Literal) Var() uint64 {
	if literal < 0 {
		return uint64(-literal)
	}
	return uint64(literal)
}

func (literal Literal) Positive() bool {
	return literal > 0
}

// Clause is an ordered disjunction of exactly ClauseSize literals.
type Clause []Literal

// Formula is an ordered conjunction of clauses over variables 1..Variables.
type Formula struct {
	Variables uint64
	Clauses   []Clause
}

// InferVariables returns the formula's variable count, deriving it from the
// maximum literal magnitude when no count was declared.
func (formula Formula) InferVariables() uint64 {
	if formula.Variables > 0 {
		return formula.Variables
	}
	var max uint64
	for _, clause := range formula.Clauses {
		for _, literal := range clause {
			if literal.Var() > max {
				max = literal.Var()
			}
		}
	}
	return max
}

// Validate checks the 3-SAT format constraints: every clause has exactly
// ClauseSize literals, no literal is zero and no literal references a
// variable beyond the declared count. Solving never starts on a formula
// that fails validation.
func (formula Formula) Validate() error {
	variables := formula.InferVariables()
	for i, clause := range formula.Clauses {
		if len(clause) != ClauseSize {
			return FormatError{Clause: i, Message: fmt.Sprintf("clause must contain exactly %v literals, got %v", ClauseSize, len(clause))}
		}
		for _, literal := range clause {
			if literal == 0 {
				return FormatError{Clause: i, Message: "literal 0 is not allowed"}
			}
			if literal.Var() > variables {
				return FormatError{Clause: i, Message: fmt.Sprintf("literal %v exceeds variable count %v", literal, variables)}
			}
		}
	}
	return nil
}

func (formula Formula) ToDIMACS() string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "p cnf %d %d\n", formula.InferVariables(), len(formula.Clauses))
	for _, clause := range formula.Clauses {
		for _, literal := range clause {
			fmt.Fprintf(&builder, "%d ", literal)
		}
		builder.WriteString("0\n")
	}
	return builder.String()
}

// Occurrences counts, per variable, how many times it appears positively and
// negatively across the whole formula. Index 0 holds the positive count,
// index 1 the negative one. The table only feeds clause scattering and is
// discarded afterwards.
func Occurrences(formula Formula) map[uint64][2]uint64 {
	counts := make(map[uint64][2]uint64)
	for _, clause := range formula.Clauses {
		for _, literal := range clause {
			count := counts[literal.Var()]
			if literal.Positive() {
				count[0]++
			} else {
				count[1]++
			}
			counts[literal.Var()] = count
		}
	}
	return counts
}
