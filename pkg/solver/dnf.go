package solver

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/pathsat/pathsat/pkg/cnf"
)

// DNFTerm is a conjunction of literals drawn from one path's assigned
// slots, in ascending variable order. Variables the path left unassigned
// are don't-cares and omitted.
type DNFTerm []cnf.Literal

// DNF is a disjunction of terms, one per surviving path. Terms are not
// minimized and distinct paths may project to equal terms once don't-cares
// are dropped; such projections are kept as-is.
type DNF []DNFTerm

// ExtractDNF renders the surviving paths of a SAT result as a DNF. Any
// completion of a term's omitted variables satisfies the original formula.
func ExtractDNF(paths []Path) DNF {
	return lo.Map(paths, func(path Path, _ int) DNFTerm {
		return DNFTerm(path.Literals())
	})
}

// String renders the DNF one term per line as space-separated signed
// literals, mirroring DIMACS literal notation.
func (dnf DNF) String() string {
	var builder strings.Builder
	for _, term := range dnf {
		for i, literal := range term {
			if i > 0 {
				builder.WriteString(" ")
			}
			fmt.Fprintf(&builder, "%d", literal)
		}
		builder.WriteString("\n")
	}
	return builder.String()
}
