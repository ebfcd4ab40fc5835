/*
Copyright © 2026 Lukas Heiss <lukas@lheiss.dev>

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.
*/

package simplex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lheiss/cutstock/solver"
)

const delta = 0.000001

func TestSolveLP(t *testing.T) {
	// Two cutting patterns covering four widths; the unique optimum is
	// x = (395, 305) with prices (0, 1, 0.5, 0) on the demand rows.
	p := solver.Problem{
		Cost: []float64{1, 1},
		Rows: [][]float64{
			{1, 0},
			{1, 0},
			{0, 2},
			{1, 0},
		},
		RHS: []float64{211, 395, 610, 97},
	}

	res, err := New().SolveLP(p)
	require.NoError(t, err)
	assert.Equal(t, solver.StatusOptimal, res.Status)
	assert.InDelta(t, 700, res.Objective, delta)
	assert.InDeltaSlice(t, []float64{395, 305}, res.Primal, delta)
	assert.InDeltaSlice(t, []float64{0, 1, 0.5, 0}, res.Dual, delta)
}

func TestSolveLPUpperBoundRow(t *testing.T) {
	// maximize x subject to x ≤ 5, written canonically as -x ≥ -5.
	p := solver.Problem{
		Cost: []float64{-1},
		Rows: [][]float64{{-1}},
		RHS:  []float64{-5},
	}

	res, err := New().SolveLP(p)
	require.NoError(t, err)
	assert.InDelta(t, -5, res.Objective, delta)
	assert.InDeltaSlice(t, []float64{5}, res.Primal, delta)
	assert.InDeltaSlice(t, []float64{1}, res.Dual, delta)
}

func TestSolveLPInfeasible(t *testing.T) {
	// x ≥ 2 and x ≤ 1 at the same time.
	p := solver.Problem{
		Cost: []float64{1},
		Rows: [][]float64{{1}, {-1}},
		RHS:  []float64{2, -1},
	}

	res, err := New().SolveLP(p)
	assert.ErrorIs(t, err, solver.ErrInfeasible)
	assert.Equal(t, solver.StatusInfeasible, res.Status)
}

func TestSolveLPUnbounded(t *testing.T) {
	p := solver.Problem{
		Cost: []float64{-1},
		Rows: [][]float64{{1}},
		RHS:  []float64{1},
	}

	res, err := New().SolveLP(p)
	assert.ErrorIs(t, err, solver.ErrUnbounded)
	assert.Equal(t, solver.StatusUnbounded, res.Status)
}

func TestSolveLPMalformed(t *testing.T) {
	_, err := New().SolveLP(solver.Problem{
		Cost: []float64{1, 1},
		Rows: [][]float64{{1}},
		RHS:  []float64{1},
	})
	assert.Error(t, err)

	_, err = New().SolveLP(solver.Problem{})
	assert.Error(t, err)
}

func TestSolveMIPKnapsack(t *testing.T) {
	// Pricing-shaped knapsack: maximize a2 + 0.5·a3 under
	// 14a1 + 31a2 + 36a3 + 45a4 ≤ 100. Optimum is three pieces of the
	// second width, value 3.
	p := solver.Problem{
		Cost: []float64{0, -1, -0.5, 0},
		Rows: [][]float64{{-14, -31, -36, -45}},
		RHS:  []float64{-100},
	}

	res, err := New().SolveMIP(p)
	require.NoError(t, err)
	assert.Equal(t, solver.StatusOptimal, res.Status)
	assert.InDelta(t, -3, res.Objective, delta)
	assert.InDeltaSlice(t, []float64{0, 3, 0, 0}, res.Primal, delta)
	assert.Nil(t, res.Dual)
}

func TestSolveMIPBranches(t *testing.T) {
	// maximize 5x + 4y under 6x + 5y ≤ 10. The relaxation sits at the
	// fractional vertex (10/6, 0), so the optimum (0, 2) with value 8
	// needs actual branching.
	p := solver.Problem{
		Cost: []float64{-5, -4},
		Rows: [][]float64{{-6, -5}},
		RHS:  []float64{-10},
	}

	res, err := New().SolveMIP(p)
	require.NoError(t, err)
	assert.InDelta(t, -8, res.Objective, delta)
	assert.InDeltaSlice(t, []float64{0, 2}, res.Primal, delta)
}

func TestSolveMIPIntegralRelaxation(t *testing.T) {
	p := solver.Problem{
		Cost: []float64{1},
		Rows: [][]float64{{1}},
		RHS:  []float64{3},
	}

	res, err := New().SolveMIP(p)
	require.NoError(t, err)
	assert.InDelta(t, 3, res.Objective, delta)
	assert.InDeltaSlice(t, []float64{3}, res.Primal, delta)
}

func TestSolveMIPInfeasible(t *testing.T) {
	p := solver.Problem{
		Cost: []float64{1},
		Rows: [][]float64{{1}, {-1}},
		RHS:  []float64{2, -1},
	}

	res, err := New().SolveMIP(p)
	assert.ErrorIs(t, err, solver.ErrInfeasible)
	assert.Equal(t, solver.StatusInfeasible, res.Status)
}

func TestSolveMIPNodeLimit(t *testing.T) {
	s := New()
	s.MaxNodes = 1

	_, err := s.SolveMIP(solver.Problem{
		Cost: []float64{-5, -4},
		Rows: [][]float64{{-6, -5}},
		RHS:  []float64{-10},
	})
	assert.ErrorIs(t, err, solver.ErrNodeLimit)
}

func TestFeatures(t *testing.T) {
	assert.True(t, New().Features().Integer)
}
