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

import (
	"fmt"
	"math"

	"github.com/lheiss/cutstock/solver"
)

// price solves the pricing subproblem for the given dual prices: a bounded
// integer knapsack maximizing the dual-weighted yield of one roll,
//
//	maximize    Σ dual_i · a_i
//	subject to  Σ width_i · a_i ≤ rollWidth,  a_i ∈ ℤ≥0
//
// posed to the oracle in canonical minimization form. It returns the best
// pattern and the subproblem optimum; the reduced cost of the implied
// master column is 1 − value. The subproblem is stateless across calls.
func (p *Problem) price(dual []float64) (Pattern, float64, error) {
	n := len(p.orders)
	knap := solver.Problem{
		Cost: make([]float64, n),
		Rows: [][]float64{make([]float64, n)},
		RHS:  []float64{-p.rollWidth},
	}
	for i, o := range p.orders {
		knap.Cost[i] = -dual[i]
		knap.Rows[0][i] = -o.Width
	}

	res, err := p.engine.SolveMIP(knap)
	if err != nil {
		// The all-zero pattern is always feasible here; an oracle failure
		// indicates a modeling or backend defect and is fatal.
		return nil, 0, &SolverError{Op: "pricing subproblem", Err: err}
	}

	pat := make(Pattern, n)
	for i, v := range res.Primal {
		pat[i] = int(math.Round(v))
	}
	if w := pat.TotalWidth(p.orders); w > p.rollWidth {
		return nil, 0, &SolverError{
			Op:  "pricing subproblem",
			Err: fmt.Errorf("returned pattern consumes %g of a %g roll", w, p.rollWidth),
		}
	}
	return pat, -res.Objective, nil
}
