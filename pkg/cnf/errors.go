package cnf

import "fmt"

// FormatError reports a malformed formula: wrong clause arity, a zero
// literal or a literal referencing a variable beyond the declared count.
type FormatError struct {
	Clause  int
	Message string
}

func (err FormatError) Error() string {
	return fmt.Sprintf("malformed formula at clause %v: %v", err.Clause, err.Message)
}
