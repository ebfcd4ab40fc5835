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

package orderio

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/lheiss/cutstock"
)

func TestLoadCSVWithHeader(t *testing.T) {
	in := "width,demand\n14,211\n31,395\n36,610\n45,97\n"
	orders, err := LoadCSV(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []cutstock.Order{
		{Width: 14, Demand: 211},
		{Width: 31, Demand: 395},
		{Width: 36, Demand: 610},
		{Width: 45, Demand: 97},
	}, orders)
}

func TestLoadCSVHeaderless(t *testing.T) {
	orders, err := LoadCSV(strings.NewReader("14,211\n31,395\n"))
	require.NoError(t, err)
	assert.Equal(t, []cutstock.Order{
		{Width: 14, Demand: 211},
		{Width: 31, Demand: 395},
	}, orders)
}

func TestLoadCSVReorderedColumns(t *testing.T) {
	in := "item,qty,width\nA,211,14\nB,395,31\n"
	orders, err := LoadCSV(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []cutstock.Order{
		{Width: 14, Demand: 211},
		{Width: 31, Demand: 395},
	}, orders)
}

func TestLoadCSVSkipsBlankRows(t *testing.T) {
	orders, err := LoadCSV(strings.NewReader("width,demand\n14,211\n,\n31,395\n"))
	require.NoError(t, err)
	assert.Len(t, orders, 2)
}

func TestLoadCSVBadCell(t *testing.T) {
	_, err := LoadCSV(strings.NewReader("width,demand\n14,many\n"))
	assert.ErrorContains(t, err, "bad demand")
}

func TestLoadCSVEmpty(t *testing.T) {
	_, err := LoadCSV(strings.NewReader("width,demand\n"))
	assert.Error(t, err)
}

func TestLoadXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetCellValue(sheet, "A1", "width"))
	require.NoError(t, f.SetCellValue(sheet, "B1", "demand"))
	require.NoError(t, f.SetCellValue(sheet, "A2", 14))
	require.NoError(t, f.SetCellValue(sheet, "B2", 211))
	require.NoError(t, f.SetCellValue(sheet, "A3", 31))
	require.NoError(t, f.SetCellValue(sheet, "B3", 395))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	orders, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []cutstock.Order{
		{Width: 14, Demand: 211},
		{Width: 31, Demand: 395},
	}, orders)
}
