package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/alexiusacademia/goscol/internal/calcsheet"
)

// CalcSheet bundles everything the PDF calculation sheet prints: the
// job identification, the step-by-step derivation and the closing
// result lines.
type CalcSheet struct {
	Project    string
	Column     string // column tag
	Derivation calcsheet.Derivation
	Summary    []string
}

// Core PDF fonts only cover cp1252, so the Greek math symbols used in
// the terminal rendering are spelled out. Characters cp1252 does have,
// like the middle dot and superscript two, pass through the encoder
// untouched.
var mathReplacer = strings.NewReplacer(
	"π", "pi",
	"λ", "lambda",
	"φ", "phi",
	"√", "sqrt",
	"≤", "<=",
	"≥", ">=",
	"─", "-",
)

// WriteCalcSheet writes the calculation sheet as an A4 PDF document.
func WriteCalcSheet(w io.Writer, sheet CalcSheet) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	text := func(s string) string { return tr(mathReplacer.Replace(s)) }

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Steel Column Compression Check")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	if sheet.Project != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Project: %s", sheet.Project))
		pdf.Ln(6)
	}
	if sheet.Column != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Column: %s", sheet.Column))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	for _, block := range sheet.Derivation {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, text(block.Title))
		pdf.Ln(9)

		pdf.SetFont("Courier", "", 10)
		for _, step := range block.Steps {
			pdf.Cell(0, 5, text(fmt.Sprintf("%s = %s", step.Symbol, step.Expression)))
			pdf.Ln(5)
			pdf.Cell(0, 5, text("     = "+step.Substitution))
			pdf.Ln(5)
			pdf.Cell(0, 5, text("     = "+calcsheet.FormatNumber(step.Value)))
			pdf.Ln(7)
		}
		pdf.Ln(3)
	}

	if len(sheet.Summary) > 0 {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, "Result")
		pdf.Ln(9)
		pdf.SetFont("Helvetica", "", 11)
		for _, line := range sheet.Summary {
			pdf.Cell(0, 6, text(line))
			pdf.Ln(6)
		}
	}

	return pdf.Output(w)
}

// SaveCalcSheet writes the calculation sheet PDF to a file, creating
// parent directories as needed.
func SaveCalcSheet(path string, sheet CalcSheet) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := WriteCalcSheet(f, sheet); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
