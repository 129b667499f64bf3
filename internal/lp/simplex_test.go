package lp

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const delta = 1e-9

func TestSimplex_Minimize(t *testing.T) {
	m := NewModel(Minimize)
	x := m.AddVariable("x")
	y := m.AddVariable("y")
	m.AddConstraint("a", []Term{{x, 1}, {y, 2}}, GreaterEqual, 4)
	m.AddConstraint("b", []Term{{x, 3}, {y, 1}}, GreaterEqual, 6)
	m.SetObjective([]Term{{x, 1}, {y, 1}})

	sol, err := NewSimplex(0).Solve(context.Background(), m)
	require.NoError(t, err)
	assert.InDelta(t, 1.6, sol.Value(x), delta)
	assert.InDelta(t, 1.2, sol.Value(y), delta)
	assert.InDelta(t, 2.8, sol.Objective, delta)
}

func TestSimplex_Maximize(t *testing.T) {
	m := NewModel(Maximize)
	x := m.AddVariable("x")
	y := m.AddVariable("y")
	m.AddConstraint("x cap", []Term{{x, 1}}, LessEqual, 3)
	m.AddConstraint("y cap", []Term{{y, 1}}, LessEqual, 2)
	m.SetObjective([]Term{{x, 1}, {y, 1}})

	sol, err := NewSimplex(DefaultTolerance).Solve(context.Background(), m)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, sol.Objective, delta)
}

func TestSimplex_EqualityAndNegativeRHS(t *testing.T) {
	m := NewModel(Minimize)
	x := m.AddVariable("x")
	y := m.AddVariable("y")
	m.AddConstraint("pin", []Term{{x, 1}}, Equal, 2)
	// x - y <= -1, i.e. y >= x + 1
	m.AddConstraint("gap", []Term{{x, 1}, {y, -1}}, LessEqual, -1)
	m.SetObjective([]Term{{x, 1}, {y, 1}})

	sol, err := NewSimplex(0).Solve(context.Background(), m)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, sol.Value(x), delta)
	assert.InDelta(t, 3.0, sol.Value(y), delta)
}

func TestSimplex_DuplicateTermsAreSummed(t *testing.T) {
	m := NewModel(Minimize)
	x := m.AddVariable("x")
	m.AddConstraint("split", []Term{{x, 1}, {x, 1}}, Equal, 4)
	m.SetObjective([]Term{{x, 1}})

	sol, err := NewSimplex(0).Solve(context.Background(), m)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, sol.Value(x), delta)
}

func TestSimplex_UnconstrainedVariables(t *testing.T) {
	t.Run("non-negative cost stays at zero", func(t *testing.T) {
		m := NewModel(Minimize)
		x := m.AddVariable("x")
		y := m.AddVariable("y")
		m.AddConstraint("x floor", []Term{{x, 1}}, GreaterEqual, 1)
		m.SetObjective([]Term{{x, 1}, {y, 1}})

		sol, err := NewSimplex(0).Solve(context.Background(), m)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, sol.Value(x), delta)
		assert.Equal(t, 0.0, sol.Value(y))
	})

	t.Run("negative cost is unbounded", func(t *testing.T) {
		m := NewModel(Maximize)
		x := m.AddVariable("x")
		y := m.AddVariable("y")
		m.AddConstraint("y cap", []Term{{y, 1}}, LessEqual, 1)
		m.SetObjective([]Term{{x, 1}})

		_, err := NewSimplex(0).Solve(context.Background(), m)
		assert.True(t, errors.Is(err, ErrUnbounded))
	})

	t.Run("no constraints", func(t *testing.T) {
		m := NewModel(Minimize)
		x := m.AddVariable("x")
		m.SetObjective([]Term{{x, 1}})

		sol, err := NewSimplex(0).Solve(context.Background(), m)
		require.NoError(t, err)
		assert.Equal(t, []float64{0}, sol.Values)
	})
}

func TestSimplex_EmptyRows(t *testing.T) {
	tests := []struct {
		name       string
		rel        Relation
		rhs        float64
		infeasible bool
	}{
		{"equal zero", Equal, 0, false},
		{"equal nonzero", Equal, 1, true},
		{"greater satisfied", GreaterEqual, -2, false},
		{"greater violated", GreaterEqual, 2, true},
		{"less satisfied", LessEqual, 2, false},
		{"less violated", LessEqual, -2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewModel(Minimize)
			x := m.AddVariable("x")
			m.AddConstraint("x floor", []Term{{x, 1}}, GreaterEqual, 1)
			m.AddConstraint("empty", []Term{{x, 0}}, tt.rel, tt.rhs)
			m.SetObjective([]Term{{x, 1}})

			_, err := NewSimplex(0).Solve(context.Background(), m)
			if tt.infeasible {
				assert.True(t, errors.Is(err, ErrInfeasible))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSimplex_Infeasible(t *testing.T) {
	m := NewModel(Minimize)
	x := m.AddVariable("x")
	m.AddConstraint("floor", []Term{{x, 1}}, GreaterEqual, 5)
	m.AddConstraint("ceiling", []Term{{x, 1}}, LessEqual, 2)
	m.SetObjective([]Term{{x, 1}})

	_, err := NewSimplex(0).Solve(context.Background(), m)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInfeasible))
}

func TestSimplex_Unbounded(t *testing.T) {
	m := NewModel(Maximize)
	x := m.AddVariable("x")
	y := m.AddVariable("y")
	m.AddConstraint("gap", []Term{{x, 1}, {y, -1}}, LessEqual, 1)
	m.SetObjective([]Term{{x, 1}})

	_, err := NewSimplex(0).Solve(context.Background(), m)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnbounded))
}

func TestSimplex_InvalidModel(t *testing.T) {
	t.Run("unknown variable", func(t *testing.T) {
		m := NewModel(Minimize)
		m.AddVariable("x")
		m.AddConstraint("bad", []Term{{Var: 3, Coef: 1}}, Equal, 1)

		_, err := NewSimplex(0).Solve(context.Background(), m)
		assert.True(t, errors.Is(err, ErrInvalidModel))
	})

	t.Run("non-finite coefficient", func(t *testing.T) {
		m := NewModel(Minimize)
		x := m.AddVariable("x")
		m.SetObjective([]Term{{x, math.NaN()}})

		_, err := NewSimplex(0).Solve(context.Background(), m)
		assert.True(t, errors.Is(err, ErrInvalidModel))
	})

	t.Run("more equalities than columns", func(t *testing.T) {
		m := NewModel(Minimize)
		x := m.AddVariable("x")
		m.AddConstraint("one", []Term{{x, 1}}, Equal, 1)
		m.AddConstraint("two", []Term{{x, 2}}, Equal, 2)

		_, err := NewSimplex(0).Solve(context.Background(), m)
		assert.True(t, errors.Is(err, ErrInvalidModel))
	})
}

func TestSimplex_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewSimplex(0).Solve(ctx, NewModel(Minimize))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRelation_String(t *testing.T) {
	assert.Equal(t, "=", Equal.String())
	assert.Equal(t, ">=", GreaterEqual.String())
	assert.Equal(t, "<=", LessEqual.String())
}
