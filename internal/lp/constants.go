package lp

import "errors"

// DefaultTolerance is the reduced-cost tolerance used when none is configured
const DefaultTolerance = 1e-10

// Solver errors
var (
	ErrInvalidModel  = errors.New("invalid linear model")
	ErrInfeasible    = errors.New("linear model is infeasible")
	ErrUnbounded     = errors.New("linear model is unbounded")
	ErrSolverFailure = errors.New("linear solver failed")
)
