package lp

import (
	"context"
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	gonumlp "gonum.org/v1/gonum/optimize/convex/lp"
)

// Simplex solves models with gonum's dense simplex implementation. Models are
// rewritten into standard form (min c·x, Ax = b, x >= 0) by adding one slack
// column per inequality.
type Simplex struct {
	Tolerance float64
}

// NewSimplex creates a simplex solver; a non-positive tolerance selects
// DefaultTolerance
func NewSimplex(tolerance float64) *Simplex {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	return &Simplex{Tolerance: tolerance}
}

var _ Solver = (*Simplex)(nil)

// Solve finds an optimal solution or returns ErrInfeasible, ErrUnbounded,
// ErrInvalidModel or ErrSolverFailure
func (s *Simplex) Solve(ctx context.Context, m *Model) (*Solution, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	tol := s.Tolerance
	if tol <= 0 {
		tol = DefaultTolerance
	}

	sf, err := toStandardForm(m, tol)
	if err != nil {
		return nil, err
	}

	values := make([]float64, len(m.Variables))
	if len(sf.b) > 0 {
		_, x, err := gonumlp.Simplex(sf.c, sf.a, sf.b, tol, nil)
		if err != nil {
			return nil, translateError(err)
		}
		for j, v := range sf.columns {
			if v >= 0 {
				values[v] = x[j]
			}
		}
	}

	for i, v := range values {
		if v < 0 && v > -tol {
			values[i] = 0
		}
	}

	objective := 0.0
	for _, t := range m.Objective {
		objective += t.Coef * values[t.Var]
	}
	return &Solution{Values: values, Objective: objective}, nil
}

// standardForm is the gonum-ready program. columns maps each column back to a
// model variable, or -1 for a slack.
type standardForm struct {
	c       []float64
	a       *mat.Dense
	b       []float64
	columns []int
}

type denseRow struct {
	coef  []float64
	slack float64
	rhs   float64
}

func toStandardForm(m *Model, tol float64) (*standardForm, error) {
	n := len(m.Variables)

	sign := 1.0
	if m.Direction == Maximize {
		sign = -1
	}
	cost := make([]float64, n)
	for _, t := range m.Objective {
		cost[t.Var] += sign * t.Coef
	}

	rows := make([]denseRow, 0, len(m.Constraints))
	for _, c := range m.Constraints {
		coef := make([]float64, n)
		empty := true
		for _, t := range c.Terms {
			coef[t.Var] += t.Coef
		}
		for _, v := range coef {
			if v != 0 {
				empty = false
				break
			}
		}

		if empty {
			if !emptyRowSatisfied(c, tol) {
				return nil, fmt.Errorf("%w: constraint %s reads 0 %s %g", ErrInfeasible, c.Name, c.Relation, c.RHS)
			}
			continue
		}

		row := denseRow{coef: coef, rhs: c.RHS}
		switch c.Relation {
		case GreaterEqual:
			row.slack = -1
		case LessEqual:
			row.slack = 1
		}
		rows = append(rows, row)
	}

	used := make([]bool, n)
	for _, r := range rows {
		for v, coef := range r.coef {
			if coef != 0 {
				used[v] = true
			}
		}
	}

	// Variables outside every constraint sit at zero unless lowering the
	// objective pushes them up forever.
	columnOf := make([]int, n)
	var columns []int
	for v := range n {
		columnOf[v] = -1
		if !used[v] {
			if cost[v] < 0 {
				return nil, fmt.Errorf("%w: variable %s is unconstrained", ErrUnbounded, m.Variables[v].Name)
			}
			continue
		}
		columnOf[v] = len(columns)
		columns = append(columns, v)
	}
	slackColumn := make([]int, len(rows))
	for i, r := range rows {
		slackColumn[i] = -1
		if r.slack != 0 {
			slackColumn[i] = len(columns)
			columns = append(columns, -1)
		}
	}

	sf := &standardForm{columns: columns}
	if len(rows) == 0 {
		return sf, nil
	}
	if len(rows) > len(columns) {
		return nil, fmt.Errorf("%w: %d constraints over %d columns", ErrInvalidModel, len(rows), len(columns))
	}

	sf.a = mat.NewDense(len(rows), len(columns), nil)
	sf.b = make([]float64, len(rows))
	for i, r := range rows {
		flip := 1.0
		if r.rhs < 0 {
			flip = -1
		}
		for v, coef := range r.coef {
			if coef != 0 {
				sf.a.Set(i, columnOf[v], flip*coef)
			}
		}
		if slackColumn[i] >= 0 {
			sf.a.Set(i, slackColumn[i], flip*r.slack)
		}
		sf.b[i] = flip * r.rhs
	}

	sf.c = make([]float64, len(columns))
	for j, v := range columns {
		if v >= 0 {
			sf.c[j] = cost[v]
		}
	}
	return sf, nil
}

func emptyRowSatisfied(c Constraint, tol float64) bool {
	switch c.Relation {
	case GreaterEqual:
		return c.RHS <= tol
	case LessEqual:
		return c.RHS >= -tol
	default:
		return math.Abs(c.RHS) <= tol
	}
}

func translateError(err error) error {
	switch {
	case errors.Is(err, gonumlp.ErrInfeasible):
		return fmt.Errorf("%w: %v", ErrInfeasible, err)
	case errors.Is(err, gonumlp.ErrUnbounded):
		return fmt.Errorf("%w: %v", ErrUnbounded, err)
	default:
		return fmt.Errorf("%w: %v", ErrSolverFailure, err)
	}
}
