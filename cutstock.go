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

/*
Package cutstock solves the one-dimensional cutting-stock problem with
Dantzig–Wolfe column generation: a restricted master LP chooses how many
rolls to cut per known pattern, an integer knapsack subproblem prices new
patterns against the master's dual values, and the loop repeats until no
pattern has negative reduced cost. Two heuristics then recover an integer
solution from the converged relaxation: rounding every usage up, and a
branch-and-bound restricted to the generated patterns.

As an example, cutting rolls of width 100 for four ordered widths:

	orders := []cutstock.Order{
		{Width: 14, Demand: 211},
		{Width: 31, Demand: 395},
		{Width: 36, Demand: 610},
		{Width: 45, Demand: 97},
	}

	prob, _ := cutstock.New(100, orders, cutstock.SingleWidthSeeds(100, orders))

	rel, _ := prob.Solve() // you should check for errors
	fmt.Printf("LP bound: %.2f rolls\n", rel.Objective)

	rounded := rel.RoundUp()
	best, _ := prob.BranchAndBound()
	fmt.Printf("rounded: %d rolls, branch-and-bound: %d rolls\n",
		rounded.TotalRolls, best.TotalRolls)

The LP/MIP engine is pluggable through the solver subpackage; the pure-Go
simplex backend is the default.
*/
package cutstock

import (
	"fmt"
	"math"

	"github.com/lheiss/cutstock/solver"
	"github.com/lheiss/cutstock/solver/simplex"
)

// DefaultEpsilon is the numerical tolerance governing both loop termination
// and the usage cutoff in reported solutions.
const DefaultEpsilon = 1e-6

// Order is one demanded width: cut at least Demand pieces of Width from the
// stock rolls. The order set is fixed for the lifetime of a Problem.
type Order struct {
	Width  float64
	Demand float64
}

// Problem holds one cutting-stock instance together with its growing
// pattern library and the converged master state. A Problem is not safe for
// concurrent use: the column-generation loop is strictly sequential.
type Problem struct {
	rollWidth float64
	orders    []Order
	patterns  []Pattern // append-only; index doubles as the master column index

	engine   solver.Interface
	logger   Logger
	eps      float64
	maxIters int

	converged bool
}

// New builds a Problem from the roll width, the order set and a seed
// pattern set. Seeds must jointly cover every order width with a strictly
// positive cut count — the master LP is otherwise infeasible — and each
// seed must respect the roll capacity. New does not derive seeds itself;
// SingleWidthSeeds produces a trivial covering set.
func New(rollWidth float64, orders []Order, seeds []Pattern, opts ...Option) (*Problem, error) {
	if rollWidth <= 0 {
		return nil, fmt.Errorf("cutstock: roll width must be positive, got %g", rollWidth)
	}
	if len(orders) == 0 {
		return nil, fmt.Errorf("cutstock: no order widths given")
	}
	for i, o := range orders {
		if o.Width <= 0 {
			return nil, fmt.Errorf("cutstock: order %d has non-positive width %g", i, o.Width)
		}
		if o.Width > rollWidth {
			return nil, fmt.Errorf("cutstock: order %d width %g exceeds roll width %g", i, o.Width, rollWidth)
		}
		if o.Demand < 0 {
			return nil, fmt.Errorf("cutstock: order %d has negative demand %g", i, o.Demand)
		}
	}

	p := &Problem{
		rollWidth: rollWidth,
		orders:    append([]Order(nil), orders...),
		engine:    simplex.New(),
		logger:    noopLogger{},
		eps:       DefaultEpsilon,
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, fmt.Errorf("cutstock: applying option: %w", err)
		}
	}
	if !p.engine.Features().Integer {
		return nil, fmt.Errorf("cutstock: solver backend lacks integer support needed for pricing")
	}

	for _, seed := range seeds {
		if _, err := p.addPattern(seed); err != nil {
			return nil, err
		}
	}
	if err := p.checkCoverage(); err != nil {
		return nil, err
	}

	return p, nil
}

// checkCoverage verifies that every order width appears in at least one
// seed pattern. Coverage is required regardless of demand so the master and
// its dual stay free of structurally empty rows.
func (p *Problem) checkCoverage() error {
	for i := range p.orders {
		covered := false
		for _, pat := range p.patterns {
			if pat[i] > 0 {
				covered = true
				break
			}
		}
		if !covered {
			return fmt.Errorf("%w: width %g has no seed pattern", ErrInfeasibleSeed, p.orders[i].Width)
		}
	}
	return nil
}

// RollWidth returns the stock roll width.
func (p *Problem) RollWidth() float64 {
	return p.rollWidth
}

// Orders returns a copy of the order set.
func (p *Problem) Orders() []Order {
	return append([]Order(nil), p.orders...)
}

// Patterns returns a copy of the pattern library in column order: the seeds
// first, then one pattern per accepted pricing round.
func (p *Problem) Patterns() []Pattern {
	pats := make([]Pattern, len(p.patterns))
	for i, pat := range p.patterns {
		pats[i] = pat.Clone()
	}
	return pats
}

// SingleWidthSeeds builds the trivial covering seed set: one pattern per
// order width, cutting as many pieces of that width as fit on a roll.
func SingleWidthSeeds(rollWidth float64, orders []Order) []Pattern {
	seeds := make([]Pattern, len(orders))
	for i, o := range orders {
		pat := make(Pattern, len(orders))
		pat[i] = int(math.Floor(rollWidth / o.Width))
		seeds[i] = pat
	}
	return seeds
}
