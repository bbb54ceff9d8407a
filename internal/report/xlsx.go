package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/goscol/internal/column"
	"github.com/alexiusacademia/goscol/internal/curve"
	"github.com/alexiusacademia/goscol/internal/nbcc"
)

// WriteComparison writes a two-column sweep to an XLSX workbook: one
// height column and one resistance column per section.
func WriteComparison(cmp curve.Comparison, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Comparison"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	f.SetCellValue(sheet, "A1", "Height")
	f.SetCellValue(sheet, "B1", cmp.A.Label+" Pr")
	f.SetCellValue(sheet, "C1", cmp.B.Label+" Pr")

	for i, h := range cmp.A.Heights {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), h)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), cmp.A.Resistances[i])
		if i < len(cmp.B.Resistances) {
			f.SetCellValue(sheet, fmt.Sprintf("C%d", row), cmp.B.Resistances[i])
		}
	}

	return f.SaveAs(path)
}

// WriteCurve writes a single resistance sweep to an XLSX workbook.
func WriteCurve(c curve.Curve, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Curve"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	f.SetCellValue(sheet, "A1", "Height")
	f.SetCellValue(sheet, "B1", c.Label+" Pr")

	for i, h := range c.Heights {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), h)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), c.Resistances[i])
	}

	return f.SaveAs(path)
}

// ReadColumns reads steel column definitions from the first sheet of
// an XLSX workbook. The first row is a header; the expected columns
// are tag, height, area, Ix, Iy, kx, ky, E, fy, dead, live, snow.
// Load columns may be left empty. Rows that do not parse are skipped,
// matching how a hand-assembled schedule usually arrives.
func ReadColumns(path string) ([]column.SteelColumn, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("workbook has no data rows")
	}

	var columns []column.SteelColumn
	for i := 1; i < len(rows); i++ {
		col, err := parseColumnRow(rows[i])
		if err != nil {
			continue
		}
		columns = append(columns, *col)
	}

	return columns, nil
}

func parseColumnRow(row []string) (*column.SteelColumn, error) {
	// expected: tag, height, area, ix, iy, kx, ky, e, fy, dead, live, snow
	if len(row) < 9 {
		return nil, fmt.Errorf("bad row")
	}

	tag := row[0]
	height, err := toFloat(row[1])
	if err != nil {
		return nil, err
	}
	area, err := toFloat(row[2])
	if err != nil {
		return nil, err
	}
	ix, err := toFloat(row[3])
	if err != nil {
		return nil, err
	}
	iy, err := toFloat(row[4])
	if err != nil {
		return nil, err
	}
	kx, err := toFloat(row[5])
	if err != nil {
		return nil, err
	}
	ky, err := toFloat(row[6])
	if err != nil {
		return nil, err
	}
	e, err := toFloat(row[7])
	if err != nil {
		return nil, err
	}
	fy, err := toFloat(row[8])
	if err != nil {
		return nil, err
	}

	var loads nbcc.Load
	if len(row) > 9 && row[9] != "" {
		loads.D, _ = toFloat(row[9])
	}
	if len(row) > 10 && row[10] != "" {
		loads.L, _ = toFloat(row[10])
	}
	if len(row) > 11 && row[11] != "" {
		loads.S, _ = toFloat(row[11])
	}

	sc := column.NewSteelColumn(tag, column.Column{
		Height: height,
		Area:   area,
		Ix:     ix,
		Iy:     iy,
		Kx:     kx,
		Ky:     ky,
		E:      e,
	}, fy, loads)

	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return sc, nil
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}

// WriteBatchResults writes the checked schedule back out: one row per
// column with its governing demand, resistance, DCR and status.
func WriteBatchResults(results []BatchResult, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Results"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	headers := []string{"Tag", "Height", "Cf", "Pr", "DCR", "Status"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		f.SetCellValue(sheet, cell, h)
	}

	for i, r := range results {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), r.Tag)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), r.Height)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), r.Cf)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), r.Pr)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), r.DCR)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), r.Status)
	}

	return f.SaveAs(path)
}

// BatchResult is one row of a checked column schedule.
type BatchResult struct {
	Tag    string
	Height float64
	Cf     float64
	Pr     float64
	DCR    float64
	Status string
}
