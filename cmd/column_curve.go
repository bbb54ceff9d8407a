package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goscol/internal/curve"
	"github.com/alexiusacademia/goscol/internal/diagram"
	"github.com/alexiusacademia/goscol/internal/report"
)

var (
	// Section definition
	curveTag  string
	curveArea float64
	curveIx   float64
	curveIy   float64
	curveE    float64
	curveFy   float64

	// Sweep range
	curveMin      float64
	curveMax      float64
	curveInterval float64

	// Output options
	curveShowPoints bool
	curveExportFile string
	curveXLSXFile   string
)

var columnCurveCmd = &cobra.Command{
	Use:   "curve",
	Short: "Sweep the factored axial resistance over a height range",
	Long: `Compute the factored axial compressive resistance of one section
at every height step over a range, and plot the resulting curve.

Heights start at the range minimum and advance by the interval; the
range maximum is exclusive. The sweep assumes pinned ends (kx = ky = 1),
a hot-rolled section (n = 1.34) and φ = 0.9.

Examples:
  # Curve for a W200x52-sized section over the default range
  goscol column curve --area 6650 --ix 52.7e6 --iy 17.8e6

  # Short storey-height range, tabulated and exported as a chart
  goscol column curve --area 6650 --ix 52.7e6 --iy 17.8e6 \
      --min-height 2400 --max-height 6000 --interval 100 \
      --points --output curve.png`,
	Run: runColumnCurve,
}

func init() {
	columnCmd.AddCommand(columnCurveCmd)

	// Section flags
	columnCurveCmd.Flags().StringVarP(&curveTag, "tag", "t", "Column A", "Curve label")
	columnCurveCmd.Flags().Float64VarP(&curveArea, "area", "a", 0, "Cross-sectional area (mm²) [required]")
	columnCurveCmd.Flags().Float64Var(&curveIx, "ix", 0, "Moment of inertia about x-x (mm⁴) [required]")
	columnCurveCmd.Flags().Float64Var(&curveIy, "iy", 0, "Moment of inertia about y-y (mm⁴) [required]")
	columnCurveCmd.Flags().Float64Var(&curveE, "e", cfg.Defaults.E, "Modulus of elasticity (MPa)")
	columnCurveCmd.Flags().Float64Var(&curveFy, "fy", cfg.Defaults.Fy, "Steel yield stress (MPa)")

	// Range flags
	columnCurveCmd.Flags().Float64Var(&curveMin, "min-height", cfg.Sweep.MinHeight, "Minimum height of the sweep (mm)")
	columnCurveCmd.Flags().Float64Var(&curveMax, "max-height", cfg.Sweep.MaxHeight, "Maximum height of the sweep (mm, exclusive)")
	columnCurveCmd.Flags().Float64VarP(&curveInterval, "interval", "i", cfg.Sweep.Interval, "Height step of the sweep (mm)")

	// Output options
	columnCurveCmd.Flags().BoolVar(&curveShowPoints, "points", false, "Tabulate every point of the curve")
	columnCurveCmd.Flags().StringVarP(&curveExportFile, "output", "o", "", "Export the curve as a chart (png, svg, pdf)")
	columnCurveCmd.Flags().StringVar(&curveXLSXFile, "xlsx", "", "Write the curve points to an Excel workbook")
}

func runColumnCurve(cmd *cobra.Command, args []string) {
	if curveArea <= 0 || curveIx <= 0 || curveIy <= 0 {
		fmt.Println("Error: area, ix and iy are required.")
		fmt.Println("Use 'goscol column curve --help' for usage information.")
		return
	}
	if curveMin <= 0 || curveMax <= curveMin || curveInterval <= 0 {
		fmt.Println("Error: the sweep range must satisfy 0 < min-height < max-height and interval > 0.")
		return
	}

	section := curve.Section{
		Area: curveArea,
		Ix:   curveIx,
		Iy:   curveIy,
		E:    curveE,
		Fy:   curveFy,
	}
	c := curve.Sweep(curveMin, curveMax, curveInterval, curveTag, section)
	if len(c.Heights) == 0 {
		fmt.Println("Error: the sweep range produced no points.")
		return
	}

	// Print results
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     AXIAL RESISTANCE CURVE - CSA S16:19 Clause 13.3.1")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Label:\t%s\n", curveTag)
	fmt.Fprintf(w, "  Area (A):\t%.0f mm²\n", curveArea)
	fmt.Fprintf(w, "  Ix:\t%.4g mm⁴\n", curveIx)
	fmt.Fprintf(w, "  Iy:\t%.4g mm⁴\n", curveIy)
	fmt.Fprintf(w, "  E:\t%.0f MPa\n", curveE)
	fmt.Fprintf(w, "  fy:\t%.1f MPa\n", curveFy)
	fmt.Fprintf(w, "  Heights:\t%.0f to %.0f mm, step %.0f mm\n", curveMin, curveMax, curveInterval)
	w.Flush()
	fmt.Println()

	fmt.Println(diagram.PlotCurve(c, 14))
	fmt.Println()

	first := c.Resistances[0]
	last := c.Resistances[len(c.Resistances)-1]
	fmt.Print(diagram.SummaryBox("CURVE SUMMARY", []string{
		fmt.Sprintf("Points: %d", len(c.Heights)),
		fmt.Sprintf("Pr at %.0f mm = %.4g N", c.Heights[0], first),
		fmt.Sprintf("Pr at %.0f mm = %.4g N", c.Heights[len(c.Heights)-1], last),
	}))
	fmt.Println()

	if curveShowPoints {
		fmt.Println("CURVE POINTS:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Height (mm)\tPr (N)\n")
		fmt.Fprintf(w, "  ───────────\t──────\n")
		for i, h := range c.Heights {
			fmt.Fprintf(w, "  %.0f\t%.2f\n", h, c.Resistances[i])
		}
		w.Flush()
		fmt.Println()
	}

	if curveExportFile != "" {
		if err := diagram.ExportCurve(c, nil, curveExportFile); err != nil {
			fmt.Printf("Error exporting chart: %v\n", err)
		} else {
			fmt.Printf("Chart exported to: %s\n", curveExportFile)
		}
	}

	if curveXLSXFile != "" {
		if err := report.WriteCurve(c, curveXLSXFile); err != nil {
			fmt.Printf("Error writing workbook: %v\n", err)
		} else {
			fmt.Printf("Curve points written to: %s\n", curveXLSXFile)
		}
	}
}
