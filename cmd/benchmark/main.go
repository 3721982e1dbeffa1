package main

import (
	"encoding/csv"
	"errors"
	"flag"
	"log"
	"math/rand/v2"
	"os"
	"strconv"
	"time"

	"github.com/samber/lo"

	"github.com/pathsat/pathsat/pkg/cnf"
	"github.com/pathsat/pathsat/pkg/solver"
)

// Compares the path-expansion engine against the gophersat reference on a
// grid of random 3-SAT instances and records verdicts, agreement and
// durations as CSV.

type benchmarkCase struct {
	Variables uint64
	Clauses   int
}

var cases = []benchmarkCase{
	{Variables: 5, Clauses: 15},
	{Variables: 10, Clauses: 30},
	{Variables: 15, Clauses: 50},
	{Variables: 20, Clauses: 70},
}

func main() {
	outPtr := flag.String("out", "benchmark.csv", "Path to the CSV output file")
	runsPtr := flag.Int("runs", 10, "Instances per (variables, clauses) case")
	maxPathsPtr := flag.Uint64("max-paths", 5_000_000, "Path budget handed to the path solver")
	flag.Parse()

	file, err := os.Create(*outPtr)
	if err != nil {
		log.Fatalf("cannot create output file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"variables", "clauses", "seed", "path_status", "gophersat_status", "agree", "path_ms", "gophersat_ms", "surviving_paths"}
	if err := writer.Write(header); err != nil {
		log.Fatalf("cannot write csv: %v", err)
	}

	reference := solver.NewGophersatSolver()

	for _, benchmark := range cases {
		for run := range *runsPtr {
			seed := uint64(run + 1)
			rng := rand.New(rand.NewPCG(seed, seed))
			formula := cnf.Generate3SATInstance(benchmark.Variables, benchmark.Clauses, rng)

			engine := solver.NewPathSolver(solver.Config{Seed: seed, MaxPaths: *maxPathsPtr})

			pathStart := time.Now()
			pathResult, pathErr := engine.Solve(formula)
			pathDuration := time.Since(pathStart)

			referenceStart := time.Now()
			referenceResult, referenceErr := reference.Solve(formula)
			referenceDuration := time.Since(referenceStart)
			if referenceErr != nil {
				log.Fatalf("reference solver failed: %v", referenceErr)
			}

			pathStatus := statusLabel(pathResult, pathErr)
			referenceStatus := statusLabel(referenceResult, referenceErr)

			row := lo.Map([]any{
				benchmark.Variables,
				benchmark.Clauses,
				seed,
				pathStatus,
				referenceStatus,
				pathStatus == "limit" || pathStatus == referenceStatus,
				pathDuration.Milliseconds(),
				referenceDuration.Milliseconds(),
				len(pathResult.Paths),
			}, func(field any, _ int) string {
				switch value := field.(type) {
				case string:
					return value
				case bool:
					return strconv.FormatBool(value)
				default:
					return lo.Must(formatInteger(value))
				}
			})
			if err := writer.Write(row); err != nil {
				log.Fatalf("cannot write csv: %v", err)
			}
		}
	}
}

// statusLabel folds a solve outcome into one of "SAT", "UNSAT" or "limit"
// (resource budget exhausted before a verdict).
func statusLabel(result solver.Result, err error) string {
	var limit solver.ResourceLimitError
	if errors.As(err, &limit) {
		return "limit"
	} else if err != nil {
		log.Fatalf("solver failed: %v", err)
	}
	return result.Status.String()
}

func formatInteger(value any) (string, error) {
	switch number := value.(type) {
	case int:
		return strconv.Itoa(number), nil
	case int64:
		return strconv.FormatInt(number, 10), nil
	case uint64:
		return strconv.FormatUint(number, 10), nil
	}
	return "", errors.New("unsupported field type")
}
