package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/pathsat/pathsat/pkg/cnf"
	"github.com/pathsat/pathsat/pkg/solver"
)

var (
	validSolvers = []string{"path", "gophersat"}
)

func main() {
	// Define arguments
	filePathPtr := flag.String("file", "", "Path to the DIMACS CNF input file")
	solverPtr := flag.String("solver", "path", "Solver to use. Allowed values are: \"path\" (the path-expansion engine) and \"gophersat\" (embedded CDCL reference), where \"path\" is the default")
	configPtr := flag.String("config", "", "Path to a JSON configuration file (chunkSize, seed, maxPaths, maxRounds); flags override its values when set")
	seedPtr := flag.Uint64("seed", 0, "Seed driving the clause-scattering shuffle")
	chunkPtr := flag.Uint64("chunk", 0, "Scattering chunk size; 0 selects the sqrt-of-variables default")
	maxPathsPtr := flag.Uint64("max-paths", 0, "Give up once the path set grows beyond this size; 0 means unlimited")
	maxRoundsPtr := flag.Uint64("max-rounds", 0, "Give up after this many clause rounds; 0 means unlimited")
	dnfPtr := flag.Bool("dnf", false, "Print the DNF of the surviving paths on SAT")
	outFilePathPtr := flag.String("out", "", "Path to the file where the output will be written; if empty, it'll be written into the Standard Output")
	verbosePtr := flag.Bool("verbose", false, "Enable per-round debug logging")
	flag.Parse()

	solverStr := strings.ToLower(*solverPtr)
	filePath := *filePathPtr
	outFile := *outFilePathPtr

	// Validate arguments
	if !slices.Contains(validSolvers, solverStr) {
		log.Fatalf("%v is not a valid solver", solverStr)
	} else if filePath == "" {
		log.Fatal("an input file must be specified")
	}

	if *verbosePtr {
		logrus.SetLevel(logrus.DebugLevel)
	}

	// Extract input
	formula, err := cnf.FromDIMACSFile(filePath)
	if err != nil {
		log.Fatalf("cannot parse input file: %v", err)
	}

	// Assemble configuration
	config := solver.Config{}
	if *configPtr != "" {
		config, err = solver.ConfigFromJson(*configPtr)
		if err != nil {
			log.Fatalf("cannot parse configuration file: %v", err)
		}
	}
	if *seedPtr != 0 {
		config.Seed = *seedPtr
	}
	if *chunkPtr != 0 {
		config.ChunkSize = *chunkPtr
	}
	if *maxPathsPtr != 0 {
		config.MaxPaths = *maxPathsPtr
	}
	if *maxRoundsPtr != 0 {
		config.MaxRounds = *maxRoundsPtr
	}

	// Initialize engine
	var engine solver.Solver
	switch solverStr {
	case "path":
		engine = solver.NewPathSolver(config)
	case "gophersat":
		engine = solver.NewGophersatSolver()
	}

	// Solve
	result, err := engine.Solve(formula)
	if err != nil {
		log.Fatalf("an error occurred during solving: %v", err)
	} else if result.Status == solver.StatusUnsat {
		fmt.Println(solver.StatusUnsat)
		os.Exit(20)
	}

	var builder strings.Builder
	fmt.Fprintf(&builder, "%v\n", result.Status)
	if *dnfPtr {
		builder.WriteString(result.DNF.String())
	}

	if outFile == "" {
		fmt.Print(builder.String())
	} else if err := os.WriteFile(outFile, []byte(builder.String()), 0644); err != nil {
		log.Fatalf("cannot write output file: %v", err)
	}
}
