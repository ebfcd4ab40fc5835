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

import "errors"

var (
	// ErrInvalidPattern marks a pattern that violates the roll capacity or
	// carries a negative cut count. Such patterns never enter the library.
	ErrInvalidPattern = errors.New("cutstock: invalid pattern")

	// ErrInfeasibleSeed marks a seed set that leaves some order width
	// without a covering pattern, making the initial master infeasible.
	ErrInfeasibleSeed = errors.New("cutstock: seed patterns do not cover all order widths")

	// ErrNotConverged is returned by the recovery heuristics when the
	// column-generation loop has not run to optimality yet.
	ErrNotConverged = errors.New("cutstock: relaxation not solved to optimality")

	// ErrIterationLimit reports that the safety-valve iteration cap fired
	// before the pricing subproblem certified optimality.
	ErrIterationLimit = errors.New("cutstock: iteration limit reached before convergence")
)

// SolverError wraps an oracle failure on a call that is expected to always
// be feasible: a failed master solve, an infeasible pricing subproblem, or
// a failed recovery MIP. It is fatal for the run and never retried.
type SolverError struct {
	Op  string
	Err error
}

func (e *SolverError) Error() string {
	return "cutstock: " + e.Op + ": " + e.Err.Error()
}

func (e *SolverError) Unwrap() error {
	return e.Err
}
