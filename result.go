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
	"strings"
)

// Iteration is one round of the column-generation trace: the master state
// that was solved, the candidate the pricing step produced against its dual
// prices, and whether the candidate entered the library.
type Iteration struct {
	Objective   float64
	Dual        []float64
	Pattern     Pattern
	Value       float64
	ReducedCost float64
	Added       bool
}

// PatternUsage pairs a pattern with its usage count in a solution. Count is
// fractional for the LP relaxation.
type PatternUsage struct {
	Index   int
	Pattern Pattern
	Count   float64
}

// Relaxation is the converged LP-optimal solution of the restricted master:
// an immutable snapshot that the reporting layer and the recovery
// heuristics consume. Usage lists only patterns used above the tolerance.
type Relaxation struct {
	Objective  float64
	Usage      []PatternUsage
	Dual       []float64
	Iterations []Iteration
	Stalled    bool

	rollWidth float64
	orders    []Order
	eps       float64
}

// Orders returns a copy of the order set the relaxation was solved for.
func (r *Relaxation) Orders() []Order {
	return append([]Order(nil), r.orders...)
}

func (r *Relaxation) String() string {
	b := new(strings.Builder)
	fmt.Fprintf(b, "LP relaxation: %.4f rolls in %d iterations\n", r.Objective, len(r.Iterations))
	for _, u := range r.Usage {
		fmt.Fprintf(b, "  %8.4f × [%s]\n", u.Count, u.Pattern.Format(r.orders))
	}
	return b.String()
}

// IntegerUsage pairs a pattern with its whole-roll usage count.
type IntegerUsage struct {
	Index   int
	Pattern Pattern
	Count   int
}

// IntegerSolution is an integral cutting plan produced by one of the
// recovery heuristics.
type IntegerSolution struct {
	Method     string
	TotalRolls int
	Usage      []IntegerUsage

	rollWidth float64
	orders    []Order
}

// CoversDemand reports whether the plan cuts at least the demanded number
// of pieces of every order width.
func (s *IntegerSolution) CoversDemand() bool {
	for i, o := range s.orders {
		var pieces float64
		for _, u := range s.Usage {
			pieces += float64(u.Count * u.Pattern[i])
		}
		if pieces < o.Demand {
			return false
		}
	}
	return true
}

// Waste is the total material cut but not assignable to any ordered piece:
// roll capacity bought minus the width of every piece actually cut.
func (s *IntegerSolution) Waste() float64 {
	waste := float64(s.TotalRolls) * s.rollWidth
	for _, u := range s.Usage {
		waste -= float64(u.Count) * u.Pattern.TotalWidth(s.orders)
	}
	return waste
}

func (s *IntegerSolution) String() string {
	b := new(strings.Builder)
	fmt.Fprintf(b, "%s: %d rolls (waste %.4g)\n", s.Method, s.TotalRolls, s.Waste())
	for _, u := range s.Usage {
		fmt.Fprintf(b, "  %6d × [%s]\n", u.Count, u.Pattern.Format(s.orders))
	}
	return b.String()
}
