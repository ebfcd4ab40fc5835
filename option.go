package cutstock

import (
	"fmt"

	"github.com/lheiss/cutstock/solver"
)

type Option func(*Problem) error

func WithLogger(logger Logger) Option {
	return func(p *Problem) error {
		p.logger = logger

		return nil
	}
}

// WithSolver replaces the default pure-Go simplex backend. The backend must
// support integer solves.
func WithSolver(engine solver.Interface) Option {
	return func(p *Problem) error {
		if engine == nil {
			return fmt.Errorf("nil solver backend")
		}
		p.engine = engine

		return nil
	}
}

// WithEpsilon overrides the numerical tolerance used for the convergence
// test, the usage cutoff and the stall diagnostic. It must be positive; the
// same value governs every comparison so near-zero reduced costs cannot
// cycle the loop.
func WithEpsilon(eps float64) Option {
	return func(p *Problem) error {
		if eps <= 0 {
			return fmt.Errorf("epsilon must be positive, got %g", eps)
		}
		p.eps = eps

		return nil
	}
}

// WithMaxIterations caps the number of column-generation rounds as a safety
// valve against pathological tailing off. Zero means no cap.
func WithMaxIterations(n int) Option {
	return func(p *Problem) error {
		if n < 0 {
			return fmt.Errorf("iteration cap must be non-negative, got %d", n)
		}
		p.maxIters = n

		return nil
	}
}
