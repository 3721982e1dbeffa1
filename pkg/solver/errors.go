package solver

import "fmt"

// ResourceLimitError reports that path expansion ran past a configured
// budget. It is a capacity condition, not a verdict: the formula was
// neither proven satisfiable nor unsatisfiable, the solver gave up.
type ResourceLimitError struct {
	Resource string
	Limit    uint64
	Actual   uint64
}

func (err ResourceLimitError) Error() string {
	return fmt.Sprintf("resource limit exceeded: %v %v over budget %v", err.Actual, err.Resource, err.Limit)
}
