package cp

import "context"

// Status is the terminal state of a solve.
type Status int

const (
	StatusUnknown Status = iota
	StatusOptimal
	StatusFeasible
	StatusInfeasible
)

func (s Status) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "OPTIMAL"
	case StatusFeasible:
		return "FEASIBLE"
	case StatusInfeasible:
		return "INFEASIBLE"
	default:
		return "UNKNOWN"
	}
}

// Solution carries the assignment found by a solver. Values is nil unless
// Status is StatusOptimal or StatusFeasible.
type Solution struct {
	Status    Status
	Values    []bool
	Objective float64
}

// Solver searches the boolean variable space of a Model for a feasible,
// objective-maximizing assignment. Cancellation is cooperative: a context
// deadline or cancellation makes Solve return the best incumbent found so far
// (StatusFeasible) or StatusUnknown if none was reached.
type Solver interface {
	Solve(ctx context.Context, model *Model) (Solution, error)
}

func NewSolver() Solver {
	return &branchAndBoundSolver{checkEvery: defaultCheckEvery}
}
