package solver

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pathsat/pathsat/pkg/cnf"
)

func TestExtractDNF(t *testing.T) {
	// Arrange
	paths := []Path{
		NewEmptyPath(4).Assign(cnf.Literal(3)).Assign(cnf.Literal(-1)),
		NewEmptyPath(4),
	}

	// Act
	dnf := ExtractDNF(paths)

	// Assert: one term per path, assigned slots only, ascending variables
	assert.Equal(t, DNF{{-1, 3}, {}}, dnf)
}

func TestDNFString(t *testing.T) {
	// Arrange
	dnf := DNF{{-1, 3}, {2}}

	// Act & Assert
	assert.Equal(t, "-1 3\n2\n", dnf.String())
}

// completeTerm extends a term with random polarities for every variable it
// omits, exercising the don't-care guarantee.
func completeTerm(term DNFTerm, variables uint64, rng *rand.Rand) []cnf.Literal {
	assigned := map[uint64]bool{}
	completed := append([]cnf.Literal{}, term...)
	for _, literal := range term {
		assigned[literal.Var()] = true
	}
	for variable := uint64(1); variable <= variables; variable++ {
		if assigned[variable] {
			continue
		}
		literal := cnf.Literal(variable)
		if rng.Float32() < 0.5 {
			literal = -literal
		}
		completed = append(completed, literal)
	}
	return completed
}

func TestDNFSoundness(t *testing.T) {
	for seed := range uint64(15) {
		// Arrange
		rng := rand.New(rand.NewPCG(seed, seed))
		formula := cnf.Generate3SATInstance(8, 30, rng)
		engine := NewPathSolver(Config{Seed: seed})

		// Act
		result, err := engine.Solve(formula)

		// Assert: any completion of any emitted term satisfies the
		// original, pre-scattering formula
		assert.Nil(t, err)
		if result.Status != StatusSat {
			continue
		}
		for _, term := range result.DNF {
			for range 5 {
				completed := completeTerm(term, formula.Variables, rng)
				assert.True(t, cnf.AssertAssignment(formula, completed))
			}
		}
	}
}
