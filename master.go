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

package cutstock

import "github.com/lheiss/cutstock/solver"

// masterProblem materializes the restricted master from the pattern
// library: one unit-cost variable per pattern, one ≥-demand row per order
// width, constraint column j equal to pattern j. The representation is
// rebuilt from the append-only library at each solve, so there is no hidden
// model state to drift out of sync.
func (p *Problem) masterProblem() solver.Problem {
	n := len(p.patterns)
	cost := make([]float64, n)
	for j := range cost {
		cost[j] = 1
	}
	rows := make([][]float64, len(p.orders))
	rhs := make([]float64, len(p.orders))
	for i, o := range p.orders {
		row := make([]float64, n)
		for j, pat := range p.patterns {
			row[j] = float64(pat[i])
		}
		rows[i] = row
		rhs[i] = o.Demand
	}
	return solver.Problem{Cost: cost, Rows: rows, RHS: rhs}
}

// solveMaster solves the LP relaxation of the restricted master. Any
// non-optimal outcome is fatal: with covering seeds the master is feasible
// and bounded by construction, so the oracle reporting otherwise is a
// defect that must surface, not be retried.
func (p *Problem) solveMaster() (*solver.Result, error) {
	res, err := p.engine.SolveLP(p.masterProblem())
	if err != nil {
		return nil, &SolverError{Op: "master LP", Err: err}
	}
	return res, nil
}

// solveMasterMIP re-solves the identical constraint system with every
// pattern usage restricted to the non-negative integers. Used only by the
// recovery phase, never inside the column-generation loop.
func (p *Problem) solveMasterMIP() (*solver.Result, error) {
	res, err := p.engine.SolveMIP(p.masterProblem())
	if err != nil {
		return nil, &SolverError{Op: "restricted master MIP", Err: err}
	}
	return res, nil
}
