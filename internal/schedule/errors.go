package schedule

import "errors"

// Row-level and per-class failures are accumulated into the run result;
// these sentinels tag the accumulated messages and the few run-level errors.
var (
	ErrMalformedInput        = errors.New("malformed input record")
	ErrEmptyModel            = errors.New("variable space is empty")
	ErrInfeasibleModel       = errors.New("no assignment satisfies all hard constraints")
	ErrSolverBudgetExhausted = errors.New("solver budget exhausted before a feasible assignment was found")
	ErrResolution            = errors.New("cannot resolve entities for assignment")
	ErrPersistence           = errors.New("persistence sink rejected class")
)
