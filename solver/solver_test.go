package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	ok := Problem{
		Cost: []float64{1, 2},
		Rows: [][]float64{{1, 0}, {0, 1}},
		RHS:  []float64{1, 1},
	}
	assert.NoError(t, ok.Validate())

	assert.Error(t, Problem{}.Validate())
	assert.Error(t, Problem{
		Cost: []float64{1},
		Rows: [][]float64{{1}},
		RHS:  []float64{1, 2},
	}.Validate())
	assert.Error(t, Problem{
		Cost: []float64{1, 2},
		Rows: [][]float64{{1}},
		RHS:  []float64{1},
	}.Validate())
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "optimal", StatusOptimal.String())
	assert.Equal(t, "infeasible", StatusInfeasible.String())
	assert.Equal(t, "unbounded", StatusUnbounded.String())
	assert.Equal(t, "error", Status(42).String())
}
