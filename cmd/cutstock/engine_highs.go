//go:build highs

package main

import (
	"github.com/lheiss/cutstock/solver"
	"github.com/lheiss/cutstock/solver/highs"
)

func newEngine() solver.Interface {
	return highs.New()
}
