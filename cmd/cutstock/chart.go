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

package main

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/lheiss/cutstock"
)

// writeChart renders the pattern usage of the fractional relaxation next to
// the integer plan as an HTML bar chart. Patterns used by either solution
// appear on the axis; the others carry no information.
func writeChart(path string, relax *cutstock.Relaxation, plan *cutstock.IntegerSolution) error {
	orders := relax.Orders()

	frac := map[int]float64{}
	for _, u := range relax.Usage {
		frac[u.Index] = u.Count
	}
	ints := map[int]int{}
	for _, u := range plan.Usage {
		ints[u.Index] = u.Count
	}

	var (
		labels   []string
		fracData []opts.BarData
		intData  []opts.BarData
	)
	for _, u := range relax.Usage {
		labels = append(labels, u.Pattern.Format(orders))
		fracData = append(fracData, opts.BarData{Value: frac[u.Index]})
		intData = append(intData, opts.BarData{Value: ints[u.Index]})
	}
	for _, u := range plan.Usage {
		if _, seen := frac[u.Index]; seen {
			continue
		}
		labels = append(labels, u.Pattern.Format(orders))
		fracData = append(fracData, opts.BarData{Value: 0.0})
		intData = append(intData, opts.BarData{Value: u.Count})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Cutting pattern usage",
			Subtitle: fmt.Sprintf("%.2f rolls fractional, %d rolls %s", relax.Objective, plan.TotalRolls, plan.Method),
		}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "cutstock"}),
	)
	bar.SetXAxis(labels).
		AddSeries("fractional", fracData).
		AddSeries(plan.Method, intData)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return bar.Render(f)
}
