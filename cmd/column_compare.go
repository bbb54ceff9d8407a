package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goscol/internal/calcsheet"
	"github.com/alexiusacademia/goscol/internal/curve"
	"github.com/alexiusacademia/goscol/internal/diagram"
	"github.com/alexiusacademia/goscol/internal/report"
	"github.com/alexiusacademia/goscol/internal/s16"
)

var (
	// Section A
	compareAreaA float64
	compareIxA   float64
	compareIyA   float64
	compareEA    float64
	compareFyA   float64

	// Section B
	compareAreaB float64
	compareIxB   float64
	compareIyB   float64
	compareEB    float64
	compareFyB   float64

	// Sweep range
	compareMin      float64
	compareMax      float64
	compareInterval float64

	// Output options
	compareMarkHeight float64
	compareShowPoints bool
	compareExportFile string
	compareXLSXFile   string
)

var columnCompareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare the resistance curves of two column sections",
	Long: `Sweep the factored axial compressive resistance of two sections over
the same height range and overlay the two curves.

Both sweeps assume pinned ends (kx = ky = 1), hot-rolled sections
(n = 1.34) and φ = 0.9. Without section flags the command compares a
built-in demo pair where section A has twice the area and inertia of
section B.

Examples:
  # The demo pair over the default range
  goscol column compare

  # Two candidate sections, marked at the storey height
  goscol column compare \
      --area-a 16500 --ix-a 308e6 --iy-a 100e6 \
      --area-b 12500 --ix-b 222e6 --iy-b 75.9e6 \
      --mark-height 3250 --output comparison.png`,
	Run: runColumnCompare,
}

func init() {
	columnCmd.AddCommand(columnCompareCmd)

	// Section A flags
	columnCompareCmd.Flags().Float64Var(&compareAreaA, "area-a", 1000, "Section A area (mm²)")
	columnCompareCmd.Flags().Float64Var(&compareIxA, "ix-a", 200e6, "Section A moment of inertia about x-x (mm⁴)")
	columnCompareCmd.Flags().Float64Var(&compareIyA, "iy-a", 100e6, "Section A moment of inertia about y-y (mm⁴)")
	columnCompareCmd.Flags().Float64Var(&compareEA, "e-a", cfg.Defaults.E, "Section A modulus of elasticity (MPa)")
	columnCompareCmd.Flags().Float64Var(&compareFyA, "fy-a", cfg.Defaults.Fy, "Section A yield stress (MPa)")

	// Section B flags
	columnCompareCmd.Flags().Float64Var(&compareAreaB, "area-b", 500, "Section B area (mm²)")
	columnCompareCmd.Flags().Float64Var(&compareIxB, "ix-b", 100e6, "Section B moment of inertia about x-x (mm⁴)")
	columnCompareCmd.Flags().Float64Var(&compareIyB, "iy-b", 50e6, "Section B moment of inertia about y-y (mm⁴)")
	columnCompareCmd.Flags().Float64Var(&compareEB, "e-b", cfg.Defaults.E, "Section B modulus of elasticity (MPa)")
	columnCompareCmd.Flags().Float64Var(&compareFyB, "fy-b", cfg.Defaults.Fy, "Section B yield stress (MPa)")

	// Range flags
	columnCompareCmd.Flags().Float64Var(&compareMin, "min-height", cfg.Sweep.MinHeight, "Minimum height of the sweep (mm)")
	columnCompareCmd.Flags().Float64Var(&compareMax, "max-height", cfg.Sweep.MaxHeight, "Maximum height of the sweep (mm, exclusive)")
	columnCompareCmd.Flags().Float64VarP(&compareInterval, "interval", "i", cfg.Sweep.Interval, "Height step of the sweep (mm)")

	// Output options
	columnCompareCmd.Flags().Float64Var(&compareMarkHeight, "mark-height", 0, "Derive and mark both resistances at this height (mm)")
	columnCompareCmd.Flags().BoolVar(&compareShowPoints, "points", false, "Tabulate every point of both curves")
	columnCompareCmd.Flags().StringVarP(&compareExportFile, "output", "o", "", "Export the overlay as a chart (png, svg, pdf)")
	columnCompareCmd.Flags().StringVar(&compareXLSXFile, "xlsx", "", "Write the curve points to an Excel workbook")
}

func runColumnCompare(cmd *cobra.Command, args []string) {
	if compareAreaA <= 0 || compareIxA <= 0 || compareIyA <= 0 ||
		compareAreaB <= 0 || compareIxB <= 0 || compareIyB <= 0 {
		fmt.Println("Error: section areas and moments of inertia must be positive.")
		return
	}
	if compareMin <= 0 || compareMax <= compareMin || compareInterval <= 0 {
		fmt.Println("Error: the sweep range must satisfy 0 < min-height < max-height and interval > 0.")
		return
	}

	sectionA := curve.Section{Area: compareAreaA, Ix: compareIxA, Iy: compareIyA, E: compareEA, Fy: compareFyA}
	sectionB := curve.Section{Area: compareAreaB, Ix: compareIxB, Iy: compareIyB, E: compareEB, Fy: compareFyB}

	cmp := curve.CompareTwoColumns(compareMin, compareMax, compareInterval, sectionA, sectionB)
	if len(cmp.A.Heights) == 0 {
		fmt.Println("Error: the sweep range produced no points.")
		return
	}

	// Print results
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     COLUMN COMPARISON - CSA S16:19 Clause 13.3.1")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  \tColumn A\tColumn B\n")
	fmt.Fprintf(w, "  Area (mm²):\t%.0f\t%.0f\n", compareAreaA, compareAreaB)
	fmt.Fprintf(w, "  Ix (mm⁴):\t%.4g\t%.4g\n", compareIxA, compareIxB)
	fmt.Fprintf(w, "  Iy (mm⁴):\t%.4g\t%.4g\n", compareIyA, compareIyB)
	fmt.Fprintf(w, "  E (MPa):\t%.0f\t%.0f\n", compareEA, compareEB)
	fmt.Fprintf(w, "  fy (MPa):\t%.1f\t%.1f\n", compareFyA, compareFyB)
	w.Flush()
	fmt.Println()
	fmt.Printf("  Heights: %.0f to %.0f mm, step %.0f mm\n", compareMin, compareMax, compareInterval)
	fmt.Println()

	fmt.Println(diagram.PlotComparison(cmp, 14))
	fmt.Println()

	lastIdx := len(cmp.A.Heights) - 1
	fmt.Print(diagram.SummaryBox("COMPARISON SUMMARY", []string{
		fmt.Sprintf("Points per curve: %d", len(cmp.A.Heights)),
		fmt.Sprintf("A: Pr %.4g N at %.0f mm, %.4g N at %.0f mm",
			cmp.A.Resistances[0], cmp.A.Heights[0], cmp.A.Resistances[lastIdx], cmp.A.Heights[lastIdx]),
		fmt.Sprintf("B: Pr %.4g N at %.0f mm, %.4g N at %.0f mm",
			cmp.B.Resistances[0], cmp.B.Heights[0], cmp.B.Resistances[lastIdx], cmp.B.Heights[lastIdx]),
	}))
	fmt.Println()

	var markers []diagram.Marker
	if compareMarkHeight > 0 {
		markers = printMarkedHeight(sectionA, sectionB, compareMarkHeight)
	}

	if compareShowPoints {
		fmt.Println("CURVE POINTS:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Height (mm)\tA Pr (N)\tB Pr (N)\n")
		fmt.Fprintf(w, "  ───────────\t────────\t────────\n")
		for i, h := range cmp.A.Heights {
			fmt.Fprintf(w, "  %.0f\t%.2f\t%.2f\n", h, cmp.A.Resistances[i], cmp.B.Resistances[i])
		}
		w.Flush()
		fmt.Println()
	}

	if compareExportFile != "" {
		if err := diagram.ExportComparison(cmp, markers, compareExportFile); err != nil {
			fmt.Printf("Error exporting chart: %v\n", err)
		} else {
			fmt.Printf("Chart exported to: %s\n", compareExportFile)
		}
	}

	if compareXLSXFile != "" {
		if err := report.WriteComparison(cmp, compareXLSXFile); err != nil {
			fmt.Printf("Error writing workbook: %v\n", err)
		} else {
			fmt.Printf("Curve points written to: %s\n", compareXLSXFile)
		}
	}
}

// printMarkedHeight derives both resistances at the marked height with
// the sweep assumptions and returns chart markers for them.
func printMarkedHeight(a, b curve.Section, height float64) []diagram.Marker {
	dA, prA := calcsheet.PrAtHeight(a.Area, a.Ix, a.Iy, 1, 1, height, a.E, a.Fy, s16.NHotRolled, s16.Phi)
	dB, prB := calcsheet.PrAtHeight(b.Area, b.Ix, b.Iy, 1, 1, height, b.E, b.Fy, s16.NHotRolled, s16.Phi)

	fmt.Printf("DERIVATION AT %.0f mm - COLUMN A:\n", height)
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Println(dA.Text())
	fmt.Printf("DERIVATION AT %.0f mm - COLUMN B:\n", height)
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Println(dB.Text())

	fmt.Print(diagram.SummaryBox(fmt.Sprintf("AT %.0f mm", height), []string{
		fmt.Sprintf("Column A: Pr = %s N", calcsheet.FormatNumber(prA)),
		fmt.Sprintf("Column B: Pr = %s N", calcsheet.FormatNumber(prB)),
	}))
	fmt.Println()

	return []diagram.Marker{
		{Height: height, Resistance: prA, Label: "A"},
		{Height: height, Resistance: prB, Label: "B"},
	}
}
