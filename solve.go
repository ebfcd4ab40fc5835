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
	"context"
	"fmt"
	"math"
)

// stallWindow is the number of consecutive accepted columns without master
// improvement before the loop reports a numerical stall diagnostic.
const stallWindow = 5

// Solve runs the column-generation loop to LP optimality.
func (p *Problem) Solve() (*Relaxation, error) {
	return p.SolveContext(context.Background())
}

// SolveContext drives the master/pricing loop:
//
//	INIT → MASTER_SOLVE → PRICE → ADD_COLUMN → MASTER_SOLVE → … → CONVERGED
//
// Each round solves the restricted master LP, prices a candidate pattern
// against the fresh duals, and either appends it as a new column (pricing
// optimum above 1+ε, i.e. reduced cost below −ε) or certifies the current
// primal solution as LP-optimal. The context is checked between oracle
// calls; a call already in flight runs to completion.
func (p *Problem) SolveContext(ctx context.Context) (*Relaxation, error) {
	var (
		trace    []Iteration
		lastObj  = math.Inf(1)
		stallRun int
		stalled  bool
	)

	for iter := 1; ; iter++ {
		if p.maxIters > 0 && iter > p.maxIters {
			return nil, fmt.Errorf("%w (cap %d)", ErrIterationLimit, p.maxIters)
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		master, err := p.solveMaster()
		if err != nil {
			return nil, err
		}

		if err := ctx.Err(); err != nil {
			return nil, err
		}
		pat, value, err := p.price(master.Dual)
		if err != nil {
			return nil, err
		}
		reduced := 1 - value
		accepted := value > 1+p.eps
		trace = append(trace, Iteration{
			Objective:   master.Objective,
			Dual:        append([]float64(nil), master.Dual...),
			Pattern:     pat,
			Value:       value,
			ReducedCost: reduced,
			Added:       accepted,
		})
		p.logger.Printf("iteration %d: master %.6g, pricing %.6g (reduced cost %.6g)",
			iter, master.Objective, value, reduced)

		if !accepted {
			p.converged = true
			return p.buildRelaxation(master.Primal, master.Dual, master.Objective, trace, stalled), nil
		}

		// A strictly improving column should drop the next master objective;
		// repeated accepted columns without improvement indicate degeneracy
		// rather than progress, which must not be mistaken for convergence.
		if iter > 1 && lastObj-master.Objective < p.eps {
			if stallRun++; stallRun >= stallWindow && !stalled {
				stalled = true
				p.logger.Printf("warning: %d consecutive columns without master improvement, possible degenerate stall", stallRun)
			}
		} else {
			stallRun = 0
		}
		lastObj = master.Objective

		p.converged = false
		if _, err := p.addPattern(pat); err != nil {
			return nil, err
		}
	}
}

func (p *Problem) buildRelaxation(primal, dual []float64, objective float64, trace []Iteration, stalled bool) *Relaxation {
	rel := &Relaxation{
		Objective:  objective,
		Dual:       append([]float64(nil), dual...),
		Iterations: trace,
		Stalled:    stalled,
		rollWidth:  p.rollWidth,
		orders:     p.Orders(),
		eps:        p.eps,
	}
	for j, v := range primal {
		if v > p.eps {
			rel.Usage = append(rel.Usage, PatternUsage{
				Index:   j,
				Pattern: p.patterns[j].Clone(),
				Count:   v,
			})
		}
	}
	return rel
}
