package cnf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	t.Run("Valid formula", func(t *testing.T) {
		// Arrange
		formula := Formula{
			Variables: 4,
			Clauses: []Clause{
				{1, -3, 4},
				{-1, 2, 3},
			},
		}

		// Act & Assert
		assert.Nil(t, formula.Validate())
	})

	t.Run("Wrong arity", func(t *testing.T) {
		// Arrange
		formula := Formula{
			Variables: 4,
			Clauses: []Clause{
				{1, -3, 4},
				{-1, 2},
			},
		}

		// Act
		err := formula.Validate()

		// Assert
		assert.NotNil(t, err)
		assert.IsType(t, FormatError{}, err)
		assert.Equal(t, 1, err.(FormatError).Clause)
	})

	t.Run("Zero literal", func(t *testing.T) {
		// Arrange
		formula := Formula{
			Variables: 4,
			Clauses:   []Clause{{1, 0, 4}},
		}

		// Act & Assert
		assert.IsType(t, FormatError{}, formula.Validate())
	})

	t.Run("Literal beyond declared variables", func(t *testing.T) {
		// Arrange
		formula := Formula{
			Variables: 3,
			Clauses:   []Clause{{1, -2, 4}},
		}

		// Act & Assert
		assert.IsType(t, FormatError{}, formula.Validate())
	})
}

func TestInferVariables(t *testing.T) {
	// Declared count wins
	declared := Formula{Variables: 7, Clauses: []Clause{{1, 2, 3}}}
	assert.Equal(t, uint64(7), declared.InferVariables())

	// Otherwise the maximum magnitude is used
	inferred := Formula{Clauses: []Clause{{1, -5, 3}, {-2, 4, 1}}}
	assert.Equal(t, uint64(5), inferred.InferVariables())

	// Empty formula without a declaration has no variables
	assert.Equal(t, uint64(0), Formula{}.InferVariables())
}

func TestOccurrences(t *testing.T) {
	// Arrange
	formula := Formula{
		Variables: 3,
		Clauses: []Clause{
			{1, -2, 3},
			{-1, -2, 3},
			{1, 2, -3},
		},
	}

	// Act
	counts := Occurrences(formula)

	// Assert
	assert.Equal(t, [2]uint64{2, 1}, counts[1])
	assert.Equal(t, [2]uint64{1, 2}, counts[2])
	assert.Equal(t, [2]uint64{2, 1}, counts[3])
}

func TestToDIMACS(t *testing.T) {
	// Arrange
	formula := Formula{
		Variables: 4,
		Clauses: []Clause{
			{1, -3, 4},
			{-1, 2, 3},
		},
	}

	// Act & Assert
	assert.Equal(t, "p cnf 4 2\n1 -3 4 0\n-1 2 3 0\n", formula.ToDIMACS())
}

func TestLiteral(t *testing.T) {
	assert.Equal(t, uint64(5), Literal(5).Var())
	assert.Equal(t, uint64(5), Literal(-5).Var())
	assert.True(t, Literal(5).Positive())
	assert.False(t, Literal(-5).Positive())
}
