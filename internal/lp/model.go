// Package lp describes linear programs as plain data and solves them through a
// swappable Solver. Every variable is implicitly bounded below by zero.
package lp

import (
	"context"
	"fmt"
	"math"
)

// Direction is the optimisation sense of a Model
type Direction int

const (
	Minimize Direction = iota
	Maximize
)

// Relation relates a constraint's left-hand side to its right-hand side
type Relation int

const (
	Equal Relation = iota
	GreaterEqual
	LessEqual
)

func (r Relation) String() string {
	switch r {
	case GreaterEqual:
		return ">="
	case LessEqual:
		return "<="
	default:
		return "="
	}
}

// Term is a coefficient applied to one variable
type Term struct {
	Var  int
	Coef float64
}

// Variable is a non-negative decision variable
type Variable struct {
	Name string
}

// Constraint is sum(Terms) <Relation> RHS
type Constraint struct {
	Name     string
	Terms    []Term
	Relation Relation
	RHS      float64
}

// Model is a declarative linear program
type Model struct {
	Direction   Direction
	Variables   []Variable
	Constraints []Constraint
	Objective   []Term
}

// NewModel creates an empty model with the given direction
func NewModel(direction Direction) *Model {
	return &Model{Direction: direction}
}

// AddVariable appends a variable and returns its index
func (m *Model) AddVariable(name string) int {
	m.Variables = append(m.Variables, Variable{Name: name})
	return len(m.Variables) - 1
}

// AddConstraint appends a constraint
func (m *Model) AddConstraint(name string, terms []Term, rel Relation, rhs float64) {
	m.Constraints = append(m.Constraints, Constraint{Name: name, Terms: terms, Relation: rel, RHS: rhs})
}

// SetObjective replaces the objective coefficients
func (m *Model) SetObjective(terms []Term) {
	m.Objective = terms
}

// Validate checks that every term references a known variable and that all
// numbers are finite
func (m *Model) Validate() error {
	n := len(m.Variables)
	check := func(where string, terms []Term) error {
		for _, t := range terms {
			if t.Var < 0 || t.Var >= n {
				return fmt.Errorf("%w: %s references variable %d of %d", ErrInvalidModel, where, t.Var, n)
			}
			if math.IsNaN(t.Coef) || math.IsInf(t.Coef, 0) {
				return fmt.Errorf("%w: %s has non-finite coefficient for %s", ErrInvalidModel, where, m.Variables[t.Var].Name)
			}
		}
		return nil
	}
	if err := check("objective", m.Objective); err != nil {
		return err
	}
	for _, c := range m.Constraints {
		if err := check("constraint "+c.Name, c.Terms); err != nil {
			return err
		}
		if math.IsNaN(c.RHS) || math.IsInf(c.RHS, 0) {
			return fmt.Errorf("%w: constraint %s has non-finite right-hand side", ErrInvalidModel, c.Name)
		}
	}
	return nil
}

// Solution holds the optimal variable values in model order
type Solution struct {
	Values    []float64
	Objective float64
}

// Value returns the value of variable v
func (s *Solution) Value(v int) float64 {
	return s.Values[v]
}

// Solver solves a Model
type Solver interface {
	Solve(ctx context.Context, m *Model) (*Solution, error)
}
