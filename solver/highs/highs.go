//go:build highs

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

// Package highs adapts the HiGHS engine (github.com/lanl/highs, cgo) to the
// solver contract. It needs the HiGHS library installed and the "highs"
// build tag set; the pure-Go simplex backend remains the default.
package highs

import (
	"fmt"
	"math"

	hs "github.com/lanl/highs"

	"github.com/lheiss/cutstock/solver"
)

// Solver implements solver.Interface on top of HiGHS. HiGHS keeps no state
// between calls here; every solve passes a freshly built model, so the
// adapter does not advertise warm starts.
type Solver struct{}

func New() *Solver { return &Solver{} }

func (*Solver) Features() solver.Features {
	return solver.Features{Integer: true}
}

func (*Solver) SolveLP(p solver.Problem) (*solver.Result, error) {
	sol, err := run(p, false)
	if err != nil {
		return sol, err
	}
	if len(sol.Dual) != len(p.Rows) {
		return &solver.Result{Status: solver.StatusError},
			fmt.Errorf("highs: solver returned %d duals for %d rows", len(sol.Dual), len(p.Rows))
	}
	return sol, nil
}

func (*Solver) SolveMIP(p solver.Problem) (*solver.Result, error) {
	sol, err := run(p, true)
	if err != nil {
		return sol, err
	}
	sol.Dual = nil
	return sol, nil
}

func run(p solver.Problem, integer bool) (*solver.Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	n := len(p.Cost)
	m := new(hs.Model)
	m.ColCosts = append([]float64(nil), p.Cost...)
	m.ColLower = make([]float64, n)
	m.ColUpper = make([]float64, n)
	for j := range m.ColUpper {
		m.ColUpper[j] = math.Inf(1)
	}
	if integer {
		m.VarTypes = make([]hs.VariableType, n)
		for j := range m.VarTypes {
			m.VarTypes[j] = hs.IntegerType
		}
	}
	for i, row := range p.Rows {
		m.AddDenseRow(p.RHS[i], row, math.Inf(1))
	}

	sol, err := m.Solve()
	if err != nil {
		return &solver.Result{Status: solver.StatusError}, fmt.Errorf("highs: %w", err)
	}
	switch sol.Status {
	case hs.Optimal:
	case hs.Infeasible:
		return &solver.Result{Status: solver.StatusInfeasible}, solver.ErrInfeasible
	case hs.Unbounded:
		return &solver.Result{Status: solver.StatusUnbounded}, solver.ErrUnbounded
	default:
		return &solver.Result{Status: solver.StatusError},
			fmt.Errorf("highs: unexpected model status %v", sol.Status)
	}

	return &solver.Result{
		Status:    solver.StatusOptimal,
		Primal:    append([]float64(nil), sol.ColumnPrimal[:n]...),
		Dual:      append([]float64(nil), sol.RowDual...),
		Objective: sol.Objective,
	}, nil
}
