package solver

import (
	"github.com/pathsat/pathsat/pkg/cnf"
)

// Slot values of a path: each variable is unassigned, assigned true or
// assigned false.
const (
	Unassigned int8 = 0
	True       int8 = 1
	False      int8 = -1
)

// Path is an immutable partial assignment over variables 1..N, one slot per
// variable. A path represents the conjunction of the literals implied by its
// assigned slots. Paths are never mutated after creation; Assign builds a
// descendant with its own slot storage.
type Path struct {
	slots []int8
}

// NewEmptyPath returns the all-unassigned path over the given variable count.
func NewEmptyPath(variables uint64) Path {
	return Path{slots: make([]int8, variables)}
}

// Slot returns the assignment state of the given 1-based variable.
func (path Path) Slot(variable uint64) int8 {
	return path.slots[variable-1]
}

// Assign returns a descendant path with the given 1-based variable set to
// the literal's polarity. The receiver is left untouched.
func (path Path) Assign(literal cnf.Literal) Path {
	slots := make([]int8, len(path.slots))
	copy(slots, path.slots)
	if literal.Positive() {
		slots[literal.Var()-1] = True
	} else {
		slots[literal.Var()-1] = False
	}
	return Path{slots: slots}
}

// Key returns the structural identity of the path: two paths are equal iff
// their keys are equal. Used by PathSet for O(1) deduplication.
func (path Path) Key() string {
	bytes := make([]byte, len(path.slots))
	for i, slot := range path.slots {
		bytes[i] = byte(slot)
	}
	return string(bytes)
}

// Compare orders paths lexicographically on their slot sequences using the
// fixed slot order False < Unassigned < True. It induces the canonical order
// of a final result.
func (path Path) Compare(other Path) int {
	for i := range path.slots {
		if path.slots[i] != other.slots[i] {
			if path.slots[i] < other.slots[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Literals projects the assigned slots onto signed literals in ascending
// variable order. Unassigned variables are free and omitted.
func (path Path) Literals() []cnf.Literal {
	literals := make([]cnf.Literal, 0, len(path.slots))
	for i, slot := range path.slots {
		variable := cnf.Literal(i + 1)
		switch slot {
		case True:
			literals = append(literals, variable)
		case False:
			literals = append(literals, -variable)
		}
	}
	return literals
}
