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

import "math"

// RoundUp recovers an integral plan by rounding every fractional usage up
// to the next whole roll. Because all master rows are ≥-demand inequalities
// with non-negative pattern coefficients, rounding up can only increase the
// pieces cut per width, so feasibility is preserved unconditionally. The
// result is read-only with respect to the relaxation.
func (r *Relaxation) RoundUp() *IntegerSolution {
	sol := &IntegerSolution{
		Method:    "round-up",
		rollWidth: r.rollWidth,
		orders:    r.Orders(),
	}
	for _, u := range r.Usage {
		count := int(math.Ceil(u.Count - r.eps))
		if count == 0 {
			continue
		}
		sol.Usage = append(sol.Usage, IntegerUsage{
			Index:   u.Index,
			Pattern: u.Pattern.Clone(),
			Count:   count,
		})
		sol.TotalRolls += count
	}
	return sol
}

// BranchAndBound recovers an integral plan by re-solving the converged
// master over the generated pattern library with integer usages, through
// the external MIP oracle. No new columns are priced, so the result is an
// upper bound on the true integer optimum, but it explores combinations
// and therefore never does worse than RoundUp on the same library. The
// pattern library and master are left untouched.
func (p *Problem) BranchAndBound() (*IntegerSolution, error) {
	if !p.converged {
		return nil, ErrNotConverged
	}
	res, err := p.solveMasterMIP()
	if err != nil {
		return nil, err
	}

	sol := &IntegerSolution{
		Method:    "branch-and-bound",
		rollWidth: p.rollWidth,
		orders:    p.Orders(),
	}
	for j, v := range res.Primal {
		count := int(math.Round(v))
		if count == 0 {
			continue
		}
		sol.Usage = append(sol.Usage, IntegerUsage{
			Index:   j,
			Pattern: p.patterns[j].Clone(),
			Count:   count,
		})
		sol.TotalRolls += count
	}
	return sol, nil
}
