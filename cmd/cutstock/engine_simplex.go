//go:build !highs

package main

import (
	"github.com/lheiss/cutstock/solver"
	"github.com/lheiss/cutstock/solver/simplex"
)

// The pure-Go simplex backend is the default; build with -tags highs to
// link the HiGHS bindings instead.
func newEngine() solver.Interface {
	return simplex.New()
}
