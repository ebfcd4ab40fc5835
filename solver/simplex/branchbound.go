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
	"errors"
	"math"

	"github.com/lheiss/cutstock/solver"
)

// intTol decides when an LP relaxation value counts as integral.
const intTol = 1e-7

// node is a subproblem of the branch-and-bound search: the base problem
// plus per-variable integer bounds accumulated by branching. upper entries
// of +Inf mean unbounded.
type node struct {
	lower []float64
	upper []float64
}

func rootNode(n int) node {
	nd := node{
		lower: make([]float64, n),
		upper: make([]float64, n),
	}
	for j := range nd.upper {
		nd.upper[j] = math.Inf(1)
	}
	return nd
}

// child copies the node with one bound tightened.
func (nd node) child(j int, lower, upper float64) node {
	c := node{
		lower: append([]float64(nil), nd.lower...),
		upper: append([]float64(nil), nd.upper...),
	}
	if lower > c.lower[j] {
		c.lower[j] = lower
	}
	if upper < c.upper[j] {
		c.upper[j] = upper
	}
	return c
}

// relax appends the node's bounds to the base problem as ≥-rows, so the
// subproblem stays in canonical form:  x_j ≥ L  and  -x_j ≥ -U.
func (nd node) relax(p solver.Problem) solver.Problem {
	n := len(p.Cost)
	rows := append([][]float64(nil), p.Rows...)
	rhs := append([]float64(nil), p.RHS...)
	for j := 0; j < n; j++ {
		if nd.lower[j] > 0 {
			row := make([]float64, n)
			row[j] = 1
			rows = append(rows, row)
			rhs = append(rhs, nd.lower[j])
		}
		if !math.IsInf(nd.upper[j], 1) {
			row := make([]float64, n)
			row[j] = -1
			rows = append(rows, row)
			rhs = append(rhs, -nd.upper[j])
		}
	}
	return solver.Problem{Cost: p.Cost, Rows: rows, RHS: rhs}
}

// SolveMIP solves the canonical-form program with every variable restricted
// to the non-negative integers, by branch-and-bound over LP relaxations.
// Subproblems are explored depth-first, the bound-tightening ("down") child
// first, which reaches integral incumbents quickly on knapsack-shaped
// problems. The search is capped at MaxNodes and reports ErrNodeLimit when
// the budget runs out before the tree is exhausted.
func (s *Solver) SolveMIP(p solver.Problem) (*solver.Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	var (
		incumbent  []float64
		incumbentZ = math.Inf(1)
		stack      = []node{rootNode(len(p.Cost))}
		nodes      = 0
	)

	for len(stack) > 0 {
		if nodes++; nodes > s.MaxNodes {
			return &solver.Result{Status: solver.StatusError}, solver.ErrNodeLimit
		}
		nd := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		z, x, err := s.solvePrimal(nd.relax(p))
		switch {
		case errors.Is(err, solver.ErrInfeasible):
			continue
		case errors.Is(err, solver.ErrUnbounded):
			// Only possible at the root: branching never relaxes.
			return &solver.Result{Status: solver.StatusUnbounded}, solver.ErrUnbounded
		case err != nil:
			return &solver.Result{Status: solver.StatusError}, err
		}

		if z >= incumbentZ-intTol {
			continue
		}

		branch := mostFractional(x)
		if branch < 0 {
			incumbent = roundAll(x)
			incumbentZ = dot(p.Cost, incumbent)
			continue
		}

		// Push "up" first so the "down" child is explored next.
		stack = append(stack,
			nd.child(branch, math.Ceil(x[branch]), math.Inf(1)),
			nd.child(branch, 0, math.Floor(x[branch])),
		)
	}

	if incumbent == nil {
		return &solver.Result{Status: solver.StatusInfeasible}, solver.ErrInfeasible
	}
	return &solver.Result{
		Status:    solver.StatusOptimal,
		Primal:    incumbent,
		Objective: incumbentZ,
	}, nil
}

// mostFractional returns the index of the variable furthest from an
// integer, or -1 when x is integral within intTol.
func mostFractional(x []float64) int {
	best, bestDist := -1, intTol
	for j, v := range x {
		if d := math.Abs(v - math.Round(v)); d > bestDist {
			best, bestDist = j, d
		}
	}
	return best
}

func roundAll(x []float64) []float64 {
	r := make([]float64, len(x))
	for j, v := range x {
		r[j] = math.Round(v)
	}
	return r
}

func dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
