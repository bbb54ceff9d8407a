package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goscol/internal/diagram"
	"github.com/alexiusacademia/goscol/internal/report"
)

var (
	batchFile     string
	batchN        float64
	batchXLSXFile string
)

var columnBatchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Check a schedule of columns from an Excel workbook",
	Long: `Check every column of an XLSX schedule in one pass.

The first sheet is read with one header row and one column per field:
tag, height, area, ix, iy, kx, ky, e, fy, dead, live, snow. The three
load columns may be left empty. Rows that do not parse or fail
validation are skipped.

Examples:
  goscol column batch --file schedule.xlsx
  goscol column batch --file schedule.xlsx --n 2.24 --xlsx checked.xlsx`,
	Run: runColumnBatch,
}

func init() {
	columnCmd.AddCommand(columnBatchCmd)

	columnBatchCmd.Flags().StringVarP(&batchFile, "file", "f", "", "Column schedule workbook (required)")
	columnBatchCmd.Flags().Float64VarP(&batchN, "n", "n", cfg.Defaults.N, "Shape parameter for the fabrication method")
	columnBatchCmd.Flags().StringVar(&batchXLSXFile, "xlsx", "", "Write the checked schedule to an Excel workbook")

	columnBatchCmd.MarkFlagRequired("file")
}

func runColumnBatch(cmd *cobra.Command, args []string) {
	columns, err := report.ReadColumns(batchFile)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if len(columns) == 0 {
		fmt.Println("Error: the workbook has no valid column rows.")
		return
	}

	// Print results
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     BATCH COLUMN CHECK - CSA S16:19")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Printf("  Schedule: %s (%d columns, n = %.2f)\n", batchFile, len(columns), batchN)
	fmt.Println()

	var results []report.BatchResult
	adequate := 0
	worstDCR := 0.0
	worstTag := ""

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Tag\tHeight (mm)\tCf (N)\tPr (N)\tDCR\tStatus\n")
	fmt.Fprintf(w, "  ───\t───────────\t──────\t──────\t───\t──────\n")

	for _, sc := range columns {
		result, err := sc.Check(batchN)
		if err != nil {
			fmt.Fprintf(w, "  %s\t%.0f\t-\t-\t-\t%v\n", sc.Tag, sc.Height, err)
			continue
		}

		status := "OVERSTRESSED"
		if result.IsAdequate {
			status = "ADEQUATE"
			adequate++
		}
		if result.DCR > worstDCR {
			worstDCR = result.DCR
			worstTag = sc.Tag
		}

		fmt.Fprintf(w, "  %s\t%.0f\t%.0f\t%.0f\t%.3f\t%s\n",
			sc.Tag, sc.Height, result.Cf, result.Resistance.Pr, result.DCR, status)

		results = append(results, report.BatchResult{
			Tag:    sc.Tag,
			Height: sc.Height,
			Cf:     result.Cf,
			Pr:     result.Resistance.Pr,
			DCR:    result.DCR,
			Status: status,
		})
	}
	w.Flush()
	fmt.Println()

	lines := []string{
		fmt.Sprintf("Checked: %d", len(results)),
		fmt.Sprintf("Adequate: %d", adequate),
		fmt.Sprintf("Overstressed: %d", len(results)-adequate),
	}
	if worstTag != "" {
		lines = append(lines, fmt.Sprintf("Worst DCR: %.3f (%s)", worstDCR, worstTag))
	}
	fmt.Print(diagram.SummaryBox("SCHEDULE SUMMARY", lines))
	fmt.Println()

	if batchXLSXFile != "" {
		if err := report.WriteBatchResults(results, batchXLSXFile); err != nil {
			fmt.Printf("Error writing workbook: %v\n", err)
		} else {
			fmt.Printf("Checked schedule written to: %s\n", batchXLSXFile)
		}
	}
}
