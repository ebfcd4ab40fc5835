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

// Command cutstock solves a one-dimensional cutting-stock instance given on
// the command line or loaded from a CSV/XLSX order book, and prints the
// fractional relaxation together with two integer plans.
package main

import (
	"fmt"
	"log"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/lheiss/cutstock"
	"github.com/lheiss/cutstock/orderio"
)

func main() {
	var (
		rollWidth = flag.Float64("roll-width", 0, "width of the stock roll (required)")
		widths    = flag.Float64Slice("widths", nil, "order widths, e.g. --widths 14,31,36,45")
		demands   = flag.Float64Slice("demands", nil, "order demands, one per width")
		orderFile = flag.String("orders", "", "order book file (.csv or .xlsx) instead of --widths/--demands")
		epsilon   = flag.Float64("epsilon", cutstock.DefaultEpsilon, "convergence tolerance")
		maxIters  = flag.Int("max-iters", 0, "iteration cap for column generation (0 = unlimited)")
		chartPath = flag.String("chart", "", "write an HTML pattern-usage chart to this file")
		verbose   = flag.Bool("verbose", false, "log each column-generation iteration")
	)
	flag.Parse()

	if err := run(*rollWidth, *widths, *demands, *orderFile, *epsilon, *maxIters, *chartPath, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "cutstock: %v\n", err)
		os.Exit(1)
	}
}

func run(rollWidth float64, widths, demands []float64, orderFile string, epsilon float64, maxIters int, chartPath string, verbose bool) error {
	orders, err := gatherOrders(widths, demands, orderFile)
	if err != nil {
		return err
	}

	opts := []cutstock.Option{
		cutstock.WithSolver(newEngine()),
		cutstock.WithEpsilon(epsilon),
		cutstock.WithMaxIterations(maxIters),
	}
	if verbose {
		opts = append(opts, cutstock.WithLogger(log.New(os.Stderr, "cutstock: ", 0)))
	}

	prob, err := cutstock.New(rollWidth, orders, cutstock.SingleWidthSeeds(rollWidth, orders), opts...)
	if err != nil {
		return err
	}

	relax, err := prob.Solve()
	if err != nil {
		return err
	}
	fmt.Println(relax)

	rounded := relax.RoundUp()
	fmt.Println(rounded)

	exact, err := prob.BranchAndBound()
	if err != nil {
		return fmt.Errorf("branch and bound: %w", err)
	}
	fmt.Println(exact)

	if chartPath != "" {
		if err := writeChart(chartPath, relax, exact); err != nil {
			return fmt.Errorf("writing chart: %w", err)
		}
		fmt.Printf("chart written to %s\n", chartPath)
	}
	return nil
}

func gatherOrders(widths, demands []float64, orderFile string) ([]cutstock.Order, error) {
	if orderFile != "" {
		if len(widths) > 0 || len(demands) > 0 {
			return nil, fmt.Errorf("--orders conflicts with --widths/--demands")
		}
		return orderio.Load(orderFile)
	}
	if len(widths) == 0 {
		return nil, fmt.Errorf("no orders given, use --widths/--demands or --orders")
	}
	if len(widths) != len(demands) {
		return nil, fmt.Errorf("got %d widths but %d demands", len(widths), len(demands))
	}
	orders := make([]cutstock.Order, len(widths))
	for i := range widths {
		orders[i] = cutstock.Order{Width: widths[i], Demand: demands[i]}
	}
	return orders, nil
}
