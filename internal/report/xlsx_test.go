package report

import (
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/goscol/internal/curve"
)

func testComparison() curve.Comparison {
	return curve.CompareTwoColumns(1000, 4000, 1000,
		curve.Section{Area: 1000, Ix: 200e6, Iy: 100e6, E: 200e3, Fy: 350},
		curve.Section{Area: 500, Ix: 100e6, Iy: 50e6, E: 200e3, Fy: 350},
	)
}

func TestWriteComparison(t *testing.T) {
	cmp := testComparison()
	path := filepath.Join(t.TempDir(), "comparison.xlsx")
	require.NoError(t, WriteComparison(cmp, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Comparison")
	require.NoError(t, err)

	// Header plus one row per sweep point.
	require.Len(t, rows, 1+len(cmp.A.Heights))
	assert.Equal(t, []string{"Height", "Column A Pr", "Column B Pr"}, rows[0])

	h, err := strconv.ParseFloat(rows[1][0], 64)
	require.NoError(t, err)
	assert.Equal(t, cmp.A.Heights[0], h)

	pr, err := strconv.ParseFloat(rows[1][1], 64)
	require.NoError(t, err)
	assert.InEpsilon(t, cmp.A.Resistances[0], pr, 1e-9)
}

func TestWriteCurve(t *testing.T) {
	cmp := testComparison()
	path := filepath.Join(t.TempDir(), "curve.xlsx")
	require.NoError(t, WriteCurve(cmp.B, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Curve")
	require.NoError(t, err)
	require.Len(t, rows, 1+len(cmp.B.Heights))
	assert.Equal(t, []string{"Height", "Column B Pr"}, rows[0])
}

func writeScheduleFixture(t *testing.T, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		for j, v := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue("Sheet1", cell, v))
		}
	}

	path := filepath.Join(t.TempDir(), "schedule.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestReadColumns(t *testing.T) {
	path := writeScheduleFixture(t, [][]interface{}{
		{"Tag", "Height", "Area", "Ix", "Iy", "kx", "ky", "E", "fy", "Dead", "Live", "Snow"},
		{"C-1", 3250, 16500, 308e6, 100e6, 1, 1, 200e3, 345, 820000, 1045100, 0},
		{"C-2", 4000, 47700, 1130e6, 344e6, 1, 1, 200e3, 345},
	})

	cols, err := ReadColumns(path)
	require.NoError(t, err)
	require.Len(t, cols, 2)

	assert.Equal(t, "C-1", cols[0].Tag)
	assert.Equal(t, 3250.0, cols[0].Height)
	assert.Equal(t, 820000.0, cols[0].Loads.D)
	assert.Equal(t, 1045100.0, cols[0].Loads.L)

	// Load columns are optional.
	assert.Equal(t, "C-2", cols[1].Tag)
	assert.Zero(t, cols[1].Loads.D)
}

func TestReadColumnsSkipsBadRows(t *testing.T) {
	path := writeScheduleFixture(t, [][]interface{}{
		{"Tag", "Height", "Area", "Ix", "Iy", "kx", "ky", "E", "fy"},
		{"C-1", 3250, 16500, 308e6, 100e6, 1, 1, 200e3, 345},
		{"bad", "not-a-number", 16500, 308e6, 100e6, 1, 1, 200e3, 345},
		{"short-row", 3250},
		{"zero-height", 0, 16500, 308e6, 100e6, 1, 1, 200e3, 345},
		{"C-5", 5000, 16500, 308e6, 100e6, 1, 1, 200e3, 345},
	})

	cols, err := ReadColumns(path)
	require.NoError(t, err)
	require.Len(t, cols, 2)
	assert.Equal(t, "C-1", cols[0].Tag)
	assert.Equal(t, "C-5", cols[1].Tag)
}

func TestReadColumnsEmptyWorkbook(t *testing.T) {
	path := writeScheduleFixture(t, [][]interface{}{
		{"Tag", "Height", "Area", "Ix", "Iy", "kx", "ky", "E", "fy"},
	})

	_, err := ReadColumns(path)
	assert.Error(t, err)
}

func TestReadColumnsMissingFile(t *testing.T) {
	_, err := ReadColumns(filepath.Join(t.TempDir(), "nope.xlsx"))
	assert.Error(t, err)
}

func TestWriteBatchResults(t *testing.T) {
	results := []BatchResult{
		{Tag: "C-1", Height: 3250, Cf: 2592650, Pr: 4.465e6, DCR: 0.581, Status: "OK"},
		{Tag: "C-2", Height: 6000, Cf: 9e6, Pr: 3.1e6, DCR: 2.9, Status: "OVERSTRESSED"},
	}

	path := filepath.Join(t.TempDir(), "results.xlsx")
	require.NoError(t, WriteBatchResults(results, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Results")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Tag", "Height", "Cf", "Pr", "DCR", "Status"}, rows[0])
	assert.Equal(t, "C-1", rows[1][0])
	assert.Equal(t, "OVERSTRESSED", rows[2][5])
}