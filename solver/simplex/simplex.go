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

// Package simplex is the pure-Go engine behind the solver contract. LPs are
// solved with gonum's dense simplex; the all-integer solve is a
// branch-and-bound over LP relaxations in branchbound.go.
package simplex

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/lheiss/cutstock/solver"
)

const (
	defaultTol      = 1e-10
	defaultMaxNodes = 100000

	// dualGapTol bounds the accepted mismatch between the primal objective
	// and the objective of the explicitly solved dual program.
	dualGapTol = 1e-6
)

// Solver implements solver.Interface without cgo. The zero value is not
// ready for use; call New.
type Solver struct {
	// Tol is the reduced-cost tolerance handed to the simplex iterations.
	Tol float64
	// MaxNodes caps the branch-and-bound search in SolveMIP.
	MaxNodes int
}

func New() *Solver {
	return &Solver{Tol: defaultTol, MaxNodes: defaultMaxNodes}
}

func (s *Solver) Features() solver.Features {
	return solver.Features{Integer: true}
}

// SolveLP solves the canonical-form program and recovers the constraint
// duals by solving the explicit dual program:
//
//	maximize    b·y
//	subject to  Aᵀ·y ≤ c
//	            y ≥ 0
//
// Strong duality is checked: a primal/dual objective mismatch beyond
// dualGapTol is reported as an error rather than returning bad prices.
func (s *Solver) SolveLP(p solver.Problem) (*solver.Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	z, x, err := s.solvePrimal(p)
	if err != nil {
		return &solver.Result{Status: statusOf(err)}, err
	}

	y, err := s.solveDual(p)
	if err != nil {
		return &solver.Result{Status: solver.StatusError}, fmt.Errorf("simplex: dual solve: %w", err)
	}
	var dualObj float64
	for i, b := range p.RHS {
		dualObj += b * y[i]
	}
	if math.Abs(z-dualObj) > dualGapTol*(1+math.Abs(z)) {
		return &solver.Result{Status: solver.StatusError},
			fmt.Errorf("simplex: duality gap %g between primal %g and dual %g", z-dualObj, z, dualObj)
	}

	return &solver.Result{
		Status:    solver.StatusOptimal,
		Primal:    x,
		Dual:      y,
		Objective: z,
	}, nil
}

// solvePrimal brings p to standard equality form by appending one surplus
// variable per row and runs the simplex. The returned x holds only the
// original variables.
func (s *Solver) solvePrimal(p solver.Problem) (float64, []float64, error) {
	n := len(p.Cost)
	m := len(p.Rows)

	c := make([]float64, n+m)
	copy(c, p.Cost)

	a := mat.NewDense(m, n+m, nil)
	for i, row := range p.Rows {
		for j, v := range row {
			a.Set(i, j, v)
		}
		a.Set(i, n+i, -1) // surplus: A·x - s = b
	}
	b := make([]float64, m)
	copy(b, p.RHS)

	z, x, err := lp.Simplex(c, a, b, s.Tol, nil)
	if err != nil {
		return 0, nil, mapLPError(err)
	}
	return z, x[:n], nil
}

// solveDual poses the dual of p in canonical ≥-form (minimize -b·y subject
// to -Aᵀ·y ≥ -c, y ≥ 0) and reuses solvePrimal on it.
func (s *Solver) solveDual(p solver.Problem) ([]float64, error) {
	n := len(p.Cost)
	m := len(p.Rows)

	dual := solver.Problem{
		Cost: make([]float64, m),
		Rows: make([][]float64, n),
		RHS:  make([]float64, n),
	}
	for i, b := range p.RHS {
		dual.Cost[i] = -b
	}
	for j := 0; j < n; j++ {
		row := make([]float64, m)
		for i := range p.Rows {
			row[i] = -p.Rows[i][j]
		}
		dual.Rows[j] = row
		dual.RHS[j] = -p.Cost[j]
	}

	_, y, err := s.solvePrimal(dual)
	if err != nil {
		// An unbounded dual would mean an infeasible primal, which the
		// primal solve already ruled out. Anything here is an engine defect.
		return nil, err
	}
	for i, v := range y {
		if v < 0 && v > -defaultClampTol {
			y[i] = 0
		}
	}
	return y, nil
}

// defaultClampTol zeroes the tiny negative duals the simplex can leave
// behind; constraint prices in the ≥-form are non-negative by theory.
const defaultClampTol = 1e-9

func statusOf(err error) solver.Status {
	switch {
	case errors.Is(err, solver.ErrInfeasible):
		return solver.StatusInfeasible
	case errors.Is(err, solver.ErrUnbounded):
		return solver.StatusUnbounded
	default:
		return solver.StatusError
	}
}

func mapLPError(err error) error {
	switch {
	case errors.Is(err, lp.ErrInfeasible):
		return solver.ErrInfeasible
	case errors.Is(err, lp.ErrUnbounded):
		return solver.ErrUnbounded
	default:
		return fmt.Errorf("simplex: %w", err)
	}
}
