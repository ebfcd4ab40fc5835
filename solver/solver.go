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

// Package solver defines the contract between the cutting-stock core and
// the linear/integer programming engine that backs it.
//
// The core only ever poses problems of one canonical shape:
//
//	minimize    c·x
//	subject to  A·x ≥ b
//	            x ≥ 0            (all x integer for MIP solves)
//
// Engine choice is a deployment concern; see the simplex subpackage for the
// pure-Go default and the highs subpackage for the HiGHS-backed adapter.
package solver

import (
	"errors"
	"fmt"
)

// Problem is a linear program in the canonical ≥-form above. Rows holds the
// constraint matrix dense, one slice per constraint; every row must have
// len(Cost) coefficients.
type Problem struct {
	Cost []float64
	Rows [][]float64
	RHS  []float64
}

// Validate reports a malformed problem: mismatched dimensions or an empty
// objective. Engines call it before touching the data.
func (p Problem) Validate() error {
	if len(p.Cost) == 0 {
		return errors.New("solver: problem has no variables")
	}
	if len(p.Rows) != len(p.RHS) {
		return fmt.Errorf("solver: %d constraint rows but %d right-hand sides", len(p.Rows), len(p.RHS))
	}
	for i, row := range p.Rows {
		if len(row) != len(p.Cost) {
			return fmt.Errorf("solver: row %d has %d coefficients, want %d", i, len(row), len(p.Cost))
		}
	}
	return nil
}

// Status classifies the outcome of a solve.
type Status int

const (
	StatusOptimal Status = iota
	StatusInfeasible
	StatusUnbounded
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusInfeasible:
		return "infeasible"
	case StatusUnbounded:
		return "unbounded"
	default:
		return "error"
	}
}

// Result is the outcome of a single LP or MIP solve. Dual is populated only
// for LP solves, one price per constraint row.
type Result struct {
	Status    Status
	Primal    []float64
	Dual      []float64
	Objective float64
}

// Features describes what an engine can do. The cutting-stock controller
// refuses engines without Integer support, since both the pricing subproblem
// and the branch-and-bound recovery heuristic need it.
type Features struct {
	Integer   bool
	WarmStart bool
}

// Interface is implemented by LP/MIP engines. SolveLP must fill Result.Dual;
// SolveMIP restricts every variable to the non-negative integers and leaves
// Dual nil. Non-optimal outcomes are reported as errors wrapping
// ErrInfeasible or ErrUnbounded, with Result.Status set accordingly when a
// partial result is returned.
type Interface interface {
	SolveLP(p Problem) (*Result, error)
	SolveMIP(p Problem) (*Result, error)
	Features() Features
}

var (
	ErrInfeasible = errors.New("solver: problem is infeasible")
	ErrUnbounded  = errors.New("solver: problem is unbounded")

	// ErrNodeLimit is returned by branch-and-bound engines that exhaust their
	// node budget before proving optimality.
	ErrNodeLimit = errors.New("solver: branch-and-bound node limit reached")
)
