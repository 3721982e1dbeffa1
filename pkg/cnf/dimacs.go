package cnf

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// FromDIMACSFile opens the given path and parses it as a DIMACS CNF file.
func FromDIMACSFile(path string) (Formula, error) {
	file, err := os.Open(path)
	if err != nil {
		return Formula{}, fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	return FromDIMACS(file)
}

// FromDIMACS parses a DIMACS CNF document into a Formula. Comment lines
// ('c' or '%') and empty lines are skipped; a clause may span multiple
// lines and is terminated by a 0. The parsed formula is validated against
// the 3-SAT format constraints before being returned.
func FromDIMACS(reader io.Reader) (Formula, error) {
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		formula    Formula
		seenHeader bool
		current    Clause
		lineNo     int
	)

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "c") || strings.HasPrefix(line, "%") {
			continue
		}

		if !seenHeader {
			fields := strings.Fields(line)
			if len(fields) != 4 || fields[0] != "p" || fields[1] != "cnf" {
				return Formula{}, fmt.Errorf("line %d: expected 'p cnf <vars> <clauses>', got %q", lineNo, line)
			}
			variables, err := strconv.ParseUint(fields[2], 10, 64)
			if err != nil || variables == 0 {
				return Formula{}, fmt.Errorf("line %d: invalid variable count %q", lineNo, fields[2])
			}
			if _, err := strconv.Atoi(fields[3]); err != nil {
				return Formula{}, fmt.Errorf("line %d: invalid clause count %q", lineNo, fields[3])
			}
			formula.Variables = variables
			seenHeader = true
			continue
		}

		for _, field := range strings.Fields(line) {
			value, err := strconv.ParseInt(field, 10, 64)
			if err != nil {
				return Formula{}, fmt.Errorf("line %d: invalid literal %q", lineNo, field)
			}
			if value == 0 {
				formula.Clauses = append(formula.Clauses, current)
				current = nil
				continue
			}
			current = append(current, Literal(value))
		}
	}
	if err := scanner.Err(); err != nil {
		return Formula{}, fmt.Errorf("read input: %w", err)
	}
	if !seenHeader {
		return Formula{}, fmt.Errorf("missing 'p cnf' header")
	}
	if len(current) > 0 {
		return Formula{}, fmt.Errorf("unterminated clause at end of input")
	}

	if err := formula.Validate(); err != nil {
		return Formula{}, err
	}
	return formula, nil
}
