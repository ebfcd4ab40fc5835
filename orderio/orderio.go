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

// Package orderio loads order books for the cutting-stock solver from the
// formats customers actually send: CSV files and Excel sheets. A loaded
// order book is just the (width, demand) pairs; validation against the
// roll width happens in the core.
package orderio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/lheiss/cutstock"
)

// Load reads an order book from path, dispatching on the file extension:
// ".xlsx" is read as an Excel sheet, everything else as CSV.
func Load(path string) ([]cutstock.Order, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return LoadXLSX(path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadCSV(f)
}

// LoadCSV reads (width, demand) rows. A header row naming a "width" and a
// "demand" column selects the columns to use; without one the first two
// columns are taken in that order.
func LoadCSV(r io.Reader) ([]cutstock.Order, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("orderio: reading csv: %w", err)
	}
	return parseRows(rows)
}

// LoadXLSX reads the first sheet of an Excel workbook the same way LoadCSV
// reads its rows.
func LoadXLSX(path string) ([]cutstock.Order, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("orderio: opening workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("orderio: reading sheet: %w", err)
	}
	return parseRows(rows)
}

func parseRows(rows [][]string) ([]cutstock.Order, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("orderio: order book is empty")
	}

	widthCol, demandCol := 0, 1
	start := 0
	if wc, dc, ok := findHeader(rows[0]); ok {
		widthCol, demandCol = wc, dc
		start = 1
	}

	var orders []cutstock.Order
	for n, row := range rows[start:] {
		if blank(row) {
			continue
		}
		if len(row) <= widthCol || len(row) <= demandCol {
			return nil, fmt.Errorf("orderio: row %d has %d columns, need width and demand", start+n+1, len(row))
		}
		width, err := strconv.ParseFloat(strings.TrimSpace(row[widthCol]), 64)
		if err != nil {
			return nil, fmt.Errorf("orderio: row %d: bad width %q", start+n+1, row[widthCol])
		}
		demand, err := strconv.ParseFloat(strings.TrimSpace(row[demandCol]), 64)
		if err != nil {
			return nil, fmt.Errorf("orderio: row %d: bad demand %q", start+n+1, row[demandCol])
		}
		orders = append(orders, cutstock.Order{Width: width, Demand: demand})
	}
	if len(orders) == 0 {
		return nil, fmt.Errorf("orderio: order book has no data rows")
	}
	return orders, nil
}

// findHeader looks for named "width"/"demand" columns in the first row.
func findHeader(row []string) (widthCol, demandCol int, ok bool) {
	widthCol, demandCol = -1, -1
	for i, cell := range row {
		switch strings.ToLower(strings.TrimSpace(cell)) {
		case "width":
			widthCol = i
		case "demand", "quantity", "qty":
			demandCol = i
		}
	}
	return widthCol, demandCol, widthCol >= 0 && demandCol >= 0
}

func blank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
