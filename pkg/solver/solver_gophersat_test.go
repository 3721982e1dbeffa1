package solver

import (
	"math/rand/v2"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/pathsat/pathsat/pkg/cnf"
)

func TestGophersatAgreement(t *testing.T) {
	g := NewGomegaWithT(t)

	reference := NewGophersatSolver()

	for seed := range uint64(25) {
		// Arrange
		rng := rand.New(rand.NewPCG(seed, seed))
		formula := cnf.Generate3SATInstance(9, 38, rng)
		engine := NewPathSolver(Config{Seed: seed})

		// Act
		pathResult, pathErr := engine.Solve(formula)
		referenceResult, referenceErr := reference.Solve(formula)

		// Assert: both solvers reach the same verdict
		g.Expect(pathErr).ToNot(HaveOccurred())
		g.Expect(referenceErr).ToNot(HaveOccurred())
		g.Expect(pathResult.Status).To(Equal(referenceResult.Status))
	}
}

func TestGophersatModel(t *testing.T) {
	g := NewGomegaWithT(t)

	// Arrange
	formula := cnf.Formula{
		Variables: 4,
		Clauses: []cnf.Clause{
			{1, -3, 4},
			{-1, 2, 3},
			{3, -4, -2},
		},
	}

	// Act
	result, err := NewGophersatSolver().Solve(formula)

	// Assert: SAT comes with one fully assigned path that satisfies the
	// formula, rendered through the shared DNF extractor
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(result.Status).To(Equal(StatusSat))
	g.Expect(result.Paths).To(HaveLen(1))
	g.Expect(result.DNF).To(HaveLen(1))
	g.Expect(cnf.AssertAssignment(formula, result.DNF[0])).To(BeTrue())
}

func TestGophersatUnsat(t *testing.T) {
	g := NewGomegaWithT(t)

	// Arrange
	formula := cnf.Formula{Variables: 3, Clauses: allCombinations(1, 2, 3)}

	// Act
	result, err := NewGophersatSolver().Solve(formula)

	// Assert
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(result.Status).To(Equal(StatusUnsat))
	g.Expect(result.Paths).To(BeEmpty())
}

func TestGophersatRejectsMalformedFormula(t *testing.T) {
	g := NewGomegaWithT(t)

	// Act
	_, err := NewGophersatSolver().Solve(cnf.Formula{Variables: 2, Clauses: []cnf.Clause{{1, 0, 2}}})

	// Assert
	g.Expect(err).To(HaveOccurred())
}
