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

// Pattern is one feasible way to cut a stock roll: entry i is the number of
// pieces of order width i cut from the roll. Patterns are treated as
// immutable once added to a Problem; the library stores private copies.
type Pattern []int

// Clone returns an independent copy of the pattern.
func (pat Pattern) Clone() Pattern {
	return append(Pattern(nil), pat...)
}

// TotalWidth is the width consumed by the pattern under the given orders.
func (pat Pattern) TotalWidth(orders []Order) float64 {
	var w float64
	for i, count := range pat {
		w += orders[i].Width * float64(count)
	}
	return w
}

// Waste is the roll width left over after cutting the pattern once.
func (pat Pattern) Waste(rollWidth float64, orders []Order) float64 {
	return rollWidth - pat.TotalWidth(orders)
}

// Format renders the pattern as a cut list, e.g. "3×31 + 1×36".
func (pat Pattern) Format(orders []Order) string {
	var b strings.Builder
	for i, count := range pat {
		if count == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteString(" + ")
		}
		fmt.Fprintf(&b, "%d×%g", count, orders[i].Width)
	}
	if b.Len() == 0 {
		return "empty"
	}
	return b.String()
}

// addPattern appends a pattern to the library after checking the capacity
// invariant and returns its column index. The stored copy is never mutated
// afterwards; rows are never added or removed.
func (p *Problem) addPattern(pat Pattern) (int, error) {
	if len(pat) != len(p.orders) {
		return 0, fmt.Errorf("%w: pattern has %d entries for %d order widths",
			ErrInvalidPattern, len(pat), len(p.orders))
	}
	for i, count := range pat {
		if count < 0 {
			return 0, fmt.Errorf("%w: negative count %d for width %g",
				ErrInvalidPattern, count, p.orders[i].Width)
		}
	}
	if w := pat.TotalWidth(p.orders); w > p.rollWidth {
		return 0, fmt.Errorf("%w: pattern consumes %g of a %g roll",
			ErrInvalidPattern, w, p.rollWidth)
	}
	p.patterns = append(p.patterns, pat.Clone())
	return len(p.patterns) - 1, nil
}
